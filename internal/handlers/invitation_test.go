package handlers

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/cpalomino/wedding-api/internal/models"
)

func TestHandleGetInvitation(t *testing.T) {
	db := setupTestDB(t)
	weddingDate := time.Now().Add(30 * 24 * time.Hour)
	handler := NewInvitationHandler(db, zap.NewNop(), weddingDate)

	phone := "+51999888777"
	guest := models.Guest{ID: "g1", Name: "Ana", Code: "ABCD2345", NumberOfGuests: 3, Phone: &phone}
	if err := db.Create(&guest).Error; err != nil {
		t.Fatalf("failed to seed guest: %v", err)
	}

	t.Run("UnknownCode", func(t *testing.T) {
		_, err := handler.HandleGet(context.Background(), &GetInvitationInput{Code: "UNKNOWNC"})
		assertStatus(t, err, 404)
	})

	t.Run("ResolvesCode", func(t *testing.T) {
		resp, err := handler.HandleGet(context.Background(), &GetInvitationInput{Code: "ABCD2345"})
		if err != nil {
			t.Fatalf("HandleGet returned error: %v", err)
		}
		if resp.Body.Guest.Name != "Ana" || resp.Body.Guest.NumberOfGuests != 3 {
			t.Errorf("unexpected guest %+v", resp.Body.Guest)
		}
		if resp.Body.Guest.Confirmed {
			t.Error("expected pending guest")
		}
		if !resp.Body.WeddingDate.Equal(weddingDate) {
			t.Errorf("unexpected wedding date %v", resp.Body.WeddingDate)
		}
		if resp.Body.Countdown.Days == 0 && resp.Body.Countdown.Hours == 0 {
			t.Error("expected a non-zero countdown for a future wedding")
		}
	})
}
