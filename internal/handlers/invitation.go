package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cpalomino/wedding-api/internal/invite"
	"github.com/cpalomino/wedding-api/internal/models"
)

// InvitationHandler serves the public invitation page lookup.
type InvitationHandler struct {
	db          *gorm.DB
	logger      *zap.Logger
	weddingDate time.Time
}

func NewInvitationHandler(db *gorm.DB, logger *zap.Logger, weddingDate time.Time) *InvitationHandler {
	return &InvitationHandler{db: db, logger: logger, weddingDate: weddingDate}
}

type GetInvitationInput struct {
	Code string `path:"code" doc:"Guest code from the invitation link"`
}

// InvitationGuest is the subset of the record the invitation page needs.
// Admin-only fields like phone stay out of the public response.
type InvitationGuest struct {
	Name           string `json:"name"`
	NumberOfGuests int    `json:"numberOfGuests"`
	Confirmed      bool   `json:"confirmed"`
	WillAttend     *bool  `json:"willAttend"`
}

type GetInvitationOutput struct {
	Body struct {
		Guest       InvitationGuest  `json:"guest"`
		WeddingDate time.Time        `json:"weddingDate"`
		Countdown   invite.Countdown `json:"countdown"`
	}
}

func (h *InvitationHandler) HandleGet(ctx context.Context, input *GetInvitationInput) (*GetInvitationOutput, error) {
	var guest models.Guest
	if err := h.db.First(&guest, "code = ?", input.Code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, huma.Error404NotFound("Invitation not found")
		}
		h.logger.Error("Failed to look up invitation", zap.Error(err))
		return nil, huma.Error500InternalServerError("Failed to fetch invitation")
	}

	out := &GetInvitationOutput{}
	out.Body.Guest = InvitationGuest{
		Name:           guest.Name,
		NumberOfGuests: guest.NumberOfGuests,
		Confirmed:      guest.Confirmed,
		WillAttend:     guest.WillAttend,
	}
	out.Body.WeddingDate = h.weddingDate
	out.Body.Countdown = invite.TimeRemaining(h.weddingDate, time.Now())
	return out, nil
}
