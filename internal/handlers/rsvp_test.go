package handlers

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/cpalomino/wedding-api/internal/models"
)

type recordingNotifier struct {
	notified []models.Guest
}

func (n *recordingNotifier) NotifyRSVP(guest models.Guest) error {
	n.notified = append(n.notified, guest)
	return nil
}

func TestHandleSubmit(t *testing.T) {
	db := setupTestDB(t)
	rec := &recordingNotifier{}
	handler := NewRSVPHandler(db, zap.NewNop(), rec)

	guest := models.Guest{ID: "g1", Name: "Ana", Code: "ABCD2345", NumberOfGuests: 3}
	if err := db.Create(&guest).Error; err != nil {
		t.Fatalf("failed to seed guest: %v", err)
	}

	attend := true
	decline := false

	t.Run("MissingCode", func(t *testing.T) {
		input := &SubmitRSVPInput{}
		input.Body.WillAttend = &attend
		_, err := handler.HandleSubmit(context.Background(), input)
		assertStatus(t, err, 400)
	})

	t.Run("MissingDecision", func(t *testing.T) {
		input := &SubmitRSVPInput{}
		input.Body.Code = "ABCD2345"
		_, err := handler.HandleSubmit(context.Background(), input)
		assertStatus(t, err, 400)
	})

	t.Run("UnknownCode", func(t *testing.T) {
		input := &SubmitRSVPInput{}
		input.Body.Code = "UNKNOWNC"
		input.Body.WillAttend = &attend
		_, err := handler.HandleSubmit(context.Background(), input)
		assertStatus(t, err, 404)

		// The store must be untouched.
		var stored models.Guest
		db.First(&stored, "id = ?", "g1")
		if stored.Confirmed || stored.WillAttend != nil {
			t.Error("failed lookup must not mutate any record")
		}
	})

	t.Run("ConfirmsAttendance", func(t *testing.T) {
		input := &SubmitRSVPInput{}
		input.Body.Code = "ABCD2345"
		input.Body.WillAttend = &attend
		input.Body.Message = "hi"

		resp, err := handler.HandleSubmit(context.Background(), input)
		if err != nil {
			t.Fatalf("HandleSubmit returned error: %v", err)
		}
		if !resp.Body.Success {
			t.Error("expected success response")
		}
		if resp.Body.Guest.Name != "Ana" || !resp.Body.Guest.WillAttend {
			t.Errorf("unexpected response guest %+v", resp.Body.Guest)
		}
		if resp.Body.Guest.ConfirmedAt.IsZero() {
			t.Error("expected confirmation timestamp")
		}

		var stored models.Guest
		db.First(&stored, "id = ?", "g1")
		if !stored.Confirmed || stored.WillAttend == nil || !*stored.WillAttend {
			t.Errorf("expected responded+attending, got %+v", stored)
		}
		if stored.Message == nil || *stored.Message != "hi" {
			t.Error("expected message 'hi' to be stored")
		}
		if len(rec.notified) != 1 {
			t.Errorf("expected 1 notification, got %d", len(rec.notified))
		}
	})

	t.Run("ResubmissionOverwrites", func(t *testing.T) {
		input := &SubmitRSVPInput{}
		input.Body.Code = "ABCD2345"
		input.Body.WillAttend = &decline

		if _, err := handler.HandleSubmit(context.Background(), input); err != nil {
			t.Fatalf("HandleSubmit returned error: %v", err)
		}

		var stored models.Guest
		db.First(&stored, "id = ?", "g1")
		if !stored.Confirmed || stored.WillAttend == nil || *stored.WillAttend {
			t.Errorf("expected responded+declined after resubmission, got %+v", stored)
		}
		if stored.Message != nil {
			t.Errorf("resubmission without message must clear the old one, got %q", *stored.Message)
		}
		if stored.Name != "Ana" || stored.NumberOfGuests != 3 {
			t.Error("RSVP must not touch name or party size")
		}
	})

	t.Run("IdenticalResubmissionIsStable", func(t *testing.T) {
		input := &SubmitRSVPInput{}
		input.Body.Code = "ABCD2345"
		input.Body.WillAttend = &attend
		input.Body.Message = "hi"

		for i := 0; i < 2; i++ {
			if _, err := handler.HandleSubmit(context.Background(), input); err != nil {
				t.Fatalf("HandleSubmit returned error: %v", err)
			}
		}

		var stored models.Guest
		db.First(&stored, "id = ?", "g1")
		if !stored.Confirmed || stored.WillAttend == nil || !*stored.WillAttend {
			t.Errorf("expected responded+attending, got %+v", stored)
		}
		if stored.Message == nil || *stored.Message != "hi" {
			t.Error("expected message 'hi' after identical resubmissions")
		}
	})
}
