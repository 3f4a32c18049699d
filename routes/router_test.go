package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"resto-api/config"
	"resto-api/controllers"
	"resto-api/dtos"
	"resto-api/models"
	"resto-api/services"
)

// chanNotifier hands every confirmation to a channel.
type chanNotifier struct {
	sent chan string
}

func (n *chanNotifier) Enabled() bool { return true }

func (n *chanNotifier) Send(_ context.Context, _, message string) error {
	n.sent <- message
	return nil
}

type testServer struct {
	t      *testing.T
	router *gin.Engine
	auth   services.AuthService
	token  string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dtos.RegisterValidators()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	config.DB = db

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	auth := services.NewAuthService(config.AuthConfig{
		Username: "admin", PasswordHash: string(hash), JWTSecret: "secret", TokenTTL: time.Hour,
	})
	controllers.Setup(controllers.Dependencies{
		Auth:    auth,
		Billing: config.BillingDefaults{RestaurantName: "Resto", Currency: "INR", GSTRate: 5, ServiceChargeRate: 10},
	})

	r := gin.New()
	RegisterRoutes(r, auth)
	s := &testServer{t: t, router: r, auth: auth}

	var login dtos.AuthResponse
	s.do(http.MethodPost, "/login", map[string]string{"username": "admin", "password": "admin123"}, http.StatusOK, &login)
	s.token = login.Token
	return s
}

// do sends a JSON request and decodes the response into out when non-nil.
func (s *testServer) do(method, path string, body any, wantStatus int, out any) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			s.t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	if w.Code != wantStatus {
		s.t.Fatalf("%s %s: status = %d, want %d, body %s", method, path, w.Code, wantStatus, w.Body.String())
	}
	if out != nil {
		if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
			s.t.Fatalf("%s %s: decode: %v", method, path, err)
		}
	}
	return w
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	s := newTestServer(t)
	s.token = ""
	var body map[string]string
	s.do(http.MethodPost, "/login", map[string]string{"username": "admin", "password": "wrong"}, http.StatusUnauthorized, &body)
	if body["error"] == "" {
		t.Error("missing error message")
	}
	s.do(http.MethodGet, "/tables", nil, http.StatusUnauthorized, nil)
}

func TestBookingFlow(t *testing.T) {
	s := newTestServer(t)

	var table models.Table
	s.do(http.MethodPost, "/tables", map[string]any{"table_number": 1, "capacity": 4}, http.StatusCreated, &table)
	if table.Status != models.TableAvailable {
		t.Fatalf("new table status = %q", table.Status)
	}

	form := map[string]any{
		"table_id": table.ID, "customer_name": "A", "customer_phone": "123",
		"number_of_guests": 2, "reservation_date": "2024-01-01", "reservation_time": "19:00", "advance_payment": 0,
	}
	var booked services.BookingResult
	s.do(http.MethodPost, "/reservations", form, http.StatusCreated, &booked)
	if booked.Reservation.Status != models.ReservationPending || booked.Reservation.PaymentStatus != models.PaymentPending {
		t.Errorf("reservation = %+v", booked.Reservation)
	}
	if booked.Table.Status != models.TableReserved {
		t.Errorf("table status = %q, want reserved", booked.Table.Status)
	}

	var again services.BookingResult
	s.do(http.MethodPost, "/reservations", form, http.StatusCreated, &again)
	if len(again.Warnings) != 1 {
		t.Errorf("warnings = %v, want one", again.Warnings)
	}

	bad := map[string]any{"table_id": table.ID, "customer_name": "A", "customer_phone": "1", "number_of_guests": 2,
		"reservation_date": "2024-13-45", "reservation_time": "19:00"}
	s.do(http.MethodPost, "/reservations", bad, http.StatusBadRequest, nil)
	form["table_id"] = 999
	s.do(http.MethodPost, "/reservations", form, http.StatusNotFound, nil)

	s.do(http.MethodPatch, "/reservations/1/status", map[string]string{"status": "confirmed"}, http.StatusOK, nil)
	s.do(http.MethodPatch, "/reservations/1/status", map[string]string{"status": "seated"}, http.StatusBadRequest, nil)
	s.do(http.MethodDelete, "/reservations/1", nil, http.StatusOK, nil)

	var after models.Table
	s.do(http.MethodGet, "/tables/1", nil, http.StatusOK, &after)
	if after.Status != models.TableReserved {
		t.Errorf("table status after delete = %q, want reserved", after.Status)
	}
	s.do(http.MethodGet, "/tables/abc", nil, http.StatusBadRequest, nil)
}

func TestOrderFlow(t *testing.T) {
	s := newTestServer(t)

	var item models.MenuItem
	s.do(http.MethodPost, "/menu", map[string]any{"name": "Thali", "category": "mains", "price": 200}, http.StatusCreated, &item)
	s.do(http.MethodPost, "/menu", map[string]any{"name": "Thali", "category": "mains", "price": 210}, http.StatusConflict, nil)
	var table models.Table
	s.do(http.MethodPost, "/tables", map[string]any{"table_number": 7, "capacity": 2}, http.StatusCreated, &table)

	lines := []map[string]any{{"menu_item_id": item.ID, "quantity": 2}}
	var quote services.Quote
	s.do(http.MethodPost, "/orders/quote", map[string]any{"items": lines}, http.StatusOK, &quote)
	if quote.Totals.Subtotal != 400 || math.Abs(quote.Totals.Total-460) > 1e-9 {
		t.Errorf("totals = %+v", quote.Totals)
	}

	var placed services.PlaceOrderResult
	s.do(http.MethodPost, "/orders", map[string]any{"table_id": table.ID, "items": lines, "payment_method": "card"}, http.StatusCreated, &placed)
	if placed.Table == nil || placed.Table.Status != models.TableOccupied {
		t.Errorf("table = %+v", placed.Table)
	}
	s.do(http.MethodPost, "/orders", map[string]any{"items": []any{}}, http.StatusBadRequest, nil)
	s.do(http.MethodPost, "/orders", map[string]any{"items": lines}, http.StatusBadRequest, nil)

	var sales services.SalesPage
	s.do(http.MethodGet, "/sales", nil, http.StatusOK, &sales)
	if sales.Meta.Total != 1 || sales.Data[0].Items[0].Name != "Thali" {
		t.Errorf("sales = %+v", sales)
	}

	w := s.do(http.MethodGet, "/sales/export", nil, http.StatusOK, nil)
	if ct := w.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("content type = %q", ct)
	}

	var dash services.Dashboard
	s.do(http.MethodGet, "/dashboard", nil, http.StatusOK, &dash)
	if dash.TodayOrders != 1 || dash.Tables[models.TableOccupied] != 1 {
		t.Errorf("dashboard = %+v", dash)
	}
	s.do(http.MethodGet, "/dashboard/forecast?days=0", nil, http.StatusBadRequest, nil)
}

func TestInventoryStockEndpoint(t *testing.T) {
	s := newTestServer(t)

	var item models.InventoryItem
	s.do(http.MethodPost, "/inventory", map[string]any{
		"name": "Rice", "category": "grains", "current_stock": 40, "minimum_stock": 10, "unit": "kg",
	}, http.StatusCreated, &item)

	tests := []struct {
		stock int
		want  models.InventoryStatus
	}{
		{0, models.OutOfStock}, {10, models.LowStock}, {11, models.InStock},
	}
	for _, tt := range tests {
		var got models.InventoryItem
		s.do(http.MethodPatch, "/inventory/1/stock", map[string]int{"current_stock": tt.stock}, http.StatusOK, &got)
		if got.Status != tt.want {
			t.Errorf("stock %d: status = %q, want %q", tt.stock, got.Status, tt.want)
		}
	}
	s.do(http.MethodPatch, "/inventory/1/stock", map[string]int{"current_stock": -5}, http.StatusBadRequest, nil)
	s.do(http.MethodPatch, "/inventory/1/stock", map[string]any{}, http.StatusBadRequest, nil)
}

func TestPublicEndpoints(t *testing.T) {
	s := newTestServer(t)
	s.do(http.MethodPost, "/menu", map[string]any{"name": "Kulfi", "category": "desserts", "price": 90}, http.StatusCreated, nil)
	s.do(http.MethodPost, "/menu", map[string]any{"name": "Rabri", "category": "desserts", "price": 110, "is_available": false}, http.StatusCreated, nil)
	s.token = ""

	var menu struct {
		Data []models.MenuItem `json:"data"`
	}
	s.do(http.MethodGet, "/public/menu", nil, http.StatusOK, &menu)
	if len(menu.Data) != 1 || menu.Data[0].Name != "Kulfi" {
		t.Errorf("public menu = %+v", menu.Data)
	}

	s.do(http.MethodPost, "/public/feedback", map[string]any{"customer_name": "Meera", "rating": 5}, http.StatusCreated, nil)
	s.do(http.MethodPost, "/public/feedback", map[string]any{"customer_name": "Meera", "rating": 9}, http.StatusBadRequest, nil)
	s.do(http.MethodGet, "/feedback", nil, http.StatusUnauthorized, nil)
}

func TestBillingSettings(t *testing.T) {
	s := newTestServer(t)

	var settings models.BillingSettings
	s.do(http.MethodGet, "/billing", nil, http.StatusOK, &settings)
	if settings.GSTRate != 5 || settings.RestaurantName != "Resto" {
		t.Errorf("defaults = %+v", settings)
	}
	s.do(http.MethodPut, "/billing", map[string]any{"restaurant_name": "Resto", "currency": "INR", "gst_rate": 12, "service_charge_rate": 0}, http.StatusOK, &settings)
	if settings.GSTRate != 12 {
		t.Errorf("gst_rate = %v, want 12", settings.GSTRate)
	}
}

func TestBookingConfirmationUsesEditedRestaurantName(t *testing.T) {
	s := newTestServer(t)
	notifier := &chanNotifier{sent: make(chan string, 1)}
	controllers.Setup(controllers.Dependencies{
		Auth:     s.auth,
		Notifier: notifier,
		Billing:  config.BillingDefaults{RestaurantName: "Resto", Currency: "INR", GSTRate: 5, ServiceChargeRate: 10},
	})

	s.do(http.MethodPut, "/billing", map[string]any{"restaurant_name": "Spice Route", "currency": "INR", "gst_rate": 5, "service_charge_rate": 10}, http.StatusOK, nil)
	var table models.Table
	s.do(http.MethodPost, "/tables", map[string]any{"table_number": 3, "capacity": 4}, http.StatusCreated, &table)
	s.do(http.MethodPost, "/reservations", map[string]any{
		"table_id": table.ID, "customer_name": "A", "customer_phone": "123",
		"number_of_guests": 2, "reservation_date": "2024-01-01", "reservation_time": "19:00",
	}, http.StatusCreated, nil)

	select {
	case msg := <-notifier.sent:
		if !strings.Contains(msg, "Spice Route") {
			t.Errorf("message = %q, want the edited restaurant name", msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("confirmation was not sent")
	}
}
