package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"resto-api/dtos"
	"resto-api/models"
	"resto-api/utils"
)

// Notifier delivers a text message to a customer phone.
type Notifier interface {
	Enabled() bool
	Send(ctx context.Context, phone, message string) error
}

type ReservationService interface {
	List(ctx context.Context, filter dtos.ReservationFilter) ([]models.Reservation, error)
	Get(ctx context.Context, id uint) (*models.Reservation, error)
	Book(ctx context.Context, form dtos.BookingForm) (*BookingResult, error)
	UpdateStatus(ctx context.Context, id uint, status models.ReservationStatus) (*models.Reservation, error)
	Delete(ctx context.Context, id uint) error
}

type BookingResult struct {
	Reservation models.Reservation `json:"reservation"`
	Table       models.Table       `json:"table"`
	Warnings    []string           `json:"warnings,omitempty"`
}

type reservationService struct {
	db         *gorm.DB
	notifier   Notifier
	restaurant string
}

func NewReservationService(db *gorm.DB, notifier Notifier, restaurant string) ReservationService {
	return &reservationService{db: db, notifier: notifier, restaurant: restaurant}
}

func (s *reservationService) List(ctx context.Context, filter dtos.ReservationFilter) ([]models.Reservation, error) {
	query := s.db.WithContext(ctx).Preload("Table")
	if filter.Status != "" {
		if !models.ReservationStatus(filter.Status).Valid() {
			return nil, invalid("unknown reservation status %q", filter.Status)
		}
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Date != "" {
		query = query.Where("reservation_date = ?", filter.Date)
	}

	var reservations []models.Reservation
	if err := query.Order("reservation_date, reservation_time").Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (s *reservationService) Get(ctx context.Context, id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.db.WithContext(ctx).Preload("Table").First(&reservation, id).Error; err != nil {
		return nil, notFound(err, "reservation", id)
	}
	return &reservation, nil
}

// Book creates a pending reservation for the selected table and marks the table reserved.
// Both writes share one transaction. Existing active bookings for the same slot do not
// block the booking; they come back as warnings.
func (s *reservationService) Book(ctx context.Context, form dtos.BookingForm) (*BookingResult, error) {
	if err := validateBooking(form); err != nil {
		return nil, err
	}

	result := &BookingResult{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var table models.Table
		if err := tx.First(&table, form.TableID).Error; err != nil {
			return notFound(err, "table", form.TableID)
		}

		var clashes []models.Reservation
		if err := tx.Where("table_id = ? AND reservation_date = ? AND reservation_time = ? AND status IN ?",
			table.ID, form.ReservationDate, form.ReservationTime,
			[]models.ReservationStatus{models.ReservationPending, models.ReservationConfirmed}).
			Find(&clashes).Error; err != nil {
			return err
		}
		for _, r := range clashes {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"Warning: table %d already has reservation #%d (%s) at %s %s",
				table.TableNumber, r.ID, r.Status, r.ReservationDate, r.ReservationTime))
		}

		reservation := models.Reservation{
			TableID:         table.ID,
			CustomerName:    strings.TrimSpace(form.CustomerName),
			CustomerPhone:   strings.TrimSpace(form.CustomerPhone),
			CustomerEmail:   utils.NilIfBlank(form.CustomerEmail),
			NumberOfGuests:  form.NumberOfGuests,
			ReservationDate: form.ReservationDate,
			ReservationTime: form.ReservationTime,
			AdvancePayment:  form.AdvancePayment,
			PaymentStatus:   models.PaymentStatusFor(form.AdvancePayment),
			SpecialRequests: utils.NilIfBlank(form.SpecialRequests),
			Status:          models.ReservationPending,
		}
		if err := tx.Create(&reservation).Error; err != nil {
			return err
		}

		if err := tx.Model(&table).Update("status", models.TableReserved).Error; err != nil {
			return err
		}
		table.Status = models.TableReserved

		result.Reservation = reservation
		result.Table = table
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(result.Warnings) > 0 {
		log.WithFields(log.Fields{
			"table_id": result.Table.ID,
			"date":     form.ReservationDate,
			"time":     form.ReservationTime,
		}).Warn("table double booked")
	}

	s.notifyGuest(result)
	return result, nil
}

func (s *reservationService) notifyGuest(result *BookingResult) {
	if s.notifier == nil || !s.notifier.Enabled() {
		return
	}
	r := result.Reservation
	message := utils.FormatReservationMessage(s.restaurant, r.CustomerName, result.Table.TableNumber,
		r.NumberOfGuests, r.ReservationDate, r.ReservationTime, r.AdvancePayment)

	go func(phone, message string, id uint) {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := s.notifier.Send(ctx, phone, message); err != nil {
			log.WithError(err).WithField("reservation_id", id).Warn("booking confirmation not sent")
		}
	}(r.CustomerPhone, message, r.ID)
}

// UpdateStatus writes the new status unconditionally; the table is left as it is.
func (s *reservationService) UpdateStatus(ctx context.Context, id uint, status models.ReservationStatus) (*models.Reservation, error) {
	if !status.Valid() {
		return nil, invalid("unknown reservation status %q", status)
	}
	reservation, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(reservation).Update("status", status).Error; err != nil {
		return nil, err
	}
	reservation.Status = status
	return reservation, nil
}

// Delete removes the reservation permanently. The table keeps whatever status it has.
func (s *reservationService) Delete(ctx context.Context, id uint) error {
	var reservation models.Reservation
	if err := s.db.WithContext(ctx).First(&reservation, id).Error; err != nil {
		return notFound(err, "reservation", id)
	}
	return s.db.WithContext(ctx).Delete(&reservation).Error
}

func validateBooking(form dtos.BookingForm) error {
	switch {
	case form.TableID == 0:
		return invalid("a table must be selected")
	case strings.TrimSpace(form.CustomerName) == "":
		return invalid("customer_name is required")
	case strings.TrimSpace(form.CustomerPhone) == "":
		return invalid("customer_phone is required")
	case form.NumberOfGuests <= 0:
		return invalid("number_of_guests must be positive")
	case !dtos.IsDate(form.ReservationDate):
		return invalid("reservation_date must be YYYY-MM-DD")
	case !dtos.IsClock(form.ReservationTime):
		return invalid("reservation_time must be HH:MM")
	case form.AdvancePayment < 0:
		return invalid("advance_payment cannot be negative")
	}
	return nil
}
