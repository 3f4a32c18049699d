package services

import (
	"context"
	"errors"
	"testing"

	"resto-api/dtos"
)

func TestFeedbackRatingBounds(t *testing.T) {
	db := newTestDB(t)
	svc := NewFeedbackService(db)

	tests := []struct {
		rating  int
		wantErr bool
	}{
		{0, true}, {1, false}, {5, false}, {6, true},
	}
	for _, tt := range tests {
		_, err := svc.Create(context.Background(), dtos.FeedbackInput{CustomerName: "Asha", Rating: tt.rating})
		if (err != nil) != tt.wantErr {
			t.Errorf("Create(rating %d) error = %v, wantErr %v", tt.rating, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Create(rating %d) error = %v, want ErrInvalidInput", tt.rating, err)
		}
	}

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("List() = %d, want 2", len(list))
	}

	if err := svc.Delete(context.Background(), list[0].ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := svc.Delete(context.Background(), list[0].ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}
