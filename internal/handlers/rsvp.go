package handlers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cpalomino/wedding-api/internal/models"
	"github.com/cpalomino/wedding-api/internal/notifier"
)

// RSVPHandler records attendance decisions. It is the only writer of the
// confirmation fields; admin edits never touch them.
type RSVPHandler struct {
	db       *gorm.DB
	logger   *zap.Logger
	notifier notifier.Notifier
}

func NewRSVPHandler(db *gorm.DB, logger *zap.Logger, n notifier.Notifier) *RSVPHandler {
	return &RSVPHandler{db: db, logger: logger, notifier: n}
}

type SubmitRSVPInput struct {
	Body struct {
		Code       string `json:"code,omitempty" doc:"Guest code from the invitation link"`
		WillAttend *bool  `json:"willAttend,omitempty" doc:"Whether the party will attend"`
		Message    string `json:"message,omitempty" doc:"Optional message for the couple"`
	}
}

type SubmitRSVPOutput struct {
	Body struct {
		Success bool `json:"success"`
		Guest   struct {
			Name        string    `json:"name"`
			WillAttend  bool      `json:"willAttend"`
			ConfirmedAt time.Time `json:"confirmedAt"`
		} `json:"guest"`
	}
}

// HandleSubmit moves a guest from pending to responded, or overwrites an
// earlier response. Last submission wins; nothing is merged or retained.
func (h *RSVPHandler) HandleSubmit(ctx context.Context, input *SubmitRSVPInput) (*SubmitRSVPOutput, error) {
	if input.Body.Code == "" {
		return nil, huma.Error400BadRequest("Guest code is required")
	}
	if input.Body.WillAttend == nil {
		return nil, huma.Error400BadRequest("You must indicate whether you will attend")
	}

	var guest models.Guest
	if err := h.db.First(&guest, "code = ?", input.Body.Code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, huma.Error404NotFound("Guest not found")
		}
		h.logger.Error("Failed to look up guest", zap.Error(err))
		return nil, huma.Error500InternalServerError("Failed to process RSVP")
	}

	now := time.Now()
	guest.Confirmed = true
	guest.WillAttend = input.Body.WillAttend
	guest.ConfirmedAt = &now
	guest.Message = nil
	if msg := strings.TrimSpace(input.Body.Message); msg != "" {
		guest.Message = &msg
	}

	if err := h.db.Save(&guest).Error; err != nil {
		h.logger.Error("Failed to save RSVP", zap.Error(err), zap.String("code", guest.Code))
		return nil, huma.Error500InternalServerError("Failed to process RSVP")
	}

	if h.notifier != nil {
		if err := h.notifier.NotifyRSVP(guest); err != nil {
			h.logger.Warn("Failed to send RSVP notification", zap.Error(err))
		}
	}

	out := &SubmitRSVPOutput{}
	out.Body.Success = true
	out.Body.Guest.Name = guest.Name
	out.Body.Guest.WillAttend = *guest.WillAttend
	out.Body.Guest.ConfirmedAt = *guest.ConfirmedAt
	return out, nil
}
