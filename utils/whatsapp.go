package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const fonnteURL = "https://api.fonnte.com/send"

// WhatsAppNotifier sends WhatsApp messages through the fonnte.com API.
type WhatsAppNotifier struct {
	APIURL string
	Token  string
	Client *http.Client
}

func NewWhatsAppNotifier(token string) *WhatsAppNotifier {
	return &WhatsAppNotifier{
		APIURL: fonnteURL,
		Token:  token,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (n *WhatsAppNotifier) Enabled() bool {
	return n != nil && n.Token != ""
}

func (n *WhatsAppNotifier) Send(ctx context.Context, phone, message string) error {
	if !n.Enabled() {
		return fmt.Errorf("whatsapp notifier has no token")
	}

	payload := map[string]string{
		"target":  phone,
		"message": message,
	}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.APIURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", n.Token)

	resp, err := n.Client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("whatsapp api returned status %d", resp.StatusCode)
	}
	return nil
}

// FormatReservationMessage renders the booking confirmation sent to the guest.
func FormatReservationMessage(restaurant, customer string, tableNumber, guests int, date, clock string, advance float64) string {
	message := fmt.Sprintf("Hi %s,\n\n", customer)
	message += fmt.Sprintf("Your table at %s is booked.\n", restaurant)
	message += fmt.Sprintf("Table: %d\n", tableNumber)
	message += fmt.Sprintf("Guests: %d\n", guests)
	message += fmt.Sprintf("When: %s %s\n", date, clock)
	if advance > 0 {
		message += fmt.Sprintf("Advance paid: %.2f\n", advance)
	}
	message += "\nStatus: pending confirmation"
	return message
}
