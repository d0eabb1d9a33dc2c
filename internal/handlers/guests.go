package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cpalomino/wedding-api/internal/auth"
	"github.com/cpalomino/wedding-api/internal/guestcode"
	"github.com/cpalomino/wedding-api/internal/invite"
	"github.com/cpalomino/wedding-api/internal/models"
)

// GuestHandler implements the admin CRUD surface over guest records.
type GuestHandler struct {
	db          *gorm.DB
	logger      *zap.Logger
	authHandler *auth.AuthHandler
	baseURL     string
}

func NewGuestHandler(db *gorm.DB, logger *zap.Logger, authHandler *auth.AuthHandler, baseURL string) *GuestHandler {
	return &GuestHandler{db: db, logger: logger, authHandler: authHandler, baseURL: baseURL}
}

type ListGuestsInput struct {
	auth.AuthInput
}

type ListGuestsOutput struct {
	Body struct {
		Guests []models.Guest `json:"guests"`
	}
}

func (h *GuestHandler) HandleList(ctx context.Context, input *ListGuestsInput) (*ListGuestsOutput, error) {
	if err := h.authHandler.Authorize(ctx, input.Cookie); err != nil {
		return nil, err
	}

	var guests []models.Guest
	if err := h.db.Order("created_at DESC").Find(&guests).Error; err != nil {
		h.logger.Error("Failed to list guests", zap.Error(err))
		return nil, huma.Error500InternalServerError("Failed to fetch guests")
	}

	out := &ListGuestsOutput{}
	out.Body.Guests = guests
	return out, nil
}

type CreateGuestInput struct {
	auth.AuthInput
	Body struct {
		Name           string `json:"name,omitempty" doc:"Name printed on the invitation"`
		NumberOfGuests int    `json:"numberOfGuests,omitempty" doc:"Party size including the named guest, defaults to 1"`
		Phone          string `json:"phone,omitempty" doc:"Phone number for the WhatsApp share link"`
	}
}

type GuestOutput struct {
	Body struct {
		Guest models.Guest `json:"guest"`
	}
}

func (h *GuestHandler) HandleCreate(ctx context.Context, input *CreateGuestInput) (*GuestOutput, error) {
	if err := h.authHandler.Authorize(ctx, input.Cookie); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Body.Name)
	if name == "" {
		return nil, huma.Error400BadRequest("Name is required")
	}

	numberOfGuests := input.Body.NumberOfGuests
	if numberOfGuests == 0 {
		numberOfGuests = 1
	}
	if numberOfGuests < 1 {
		return nil, huma.Error400BadRequest("Number of guests must be at least 1")
	}

	code, err := guestcode.GenerateUnique(func(code string) (bool, error) {
		var count int64
		if err := h.db.Model(&models.Guest{}).Where("code = ?", code).Count(&count).Error; err != nil {
			return false, err
		}
		return count > 0, nil
	})
	if err != nil {
		h.logger.Error("Failed to generate guest code", zap.Error(err))
		return nil, huma.Error500InternalServerError("Failed to create guest")
	}

	guest := models.Guest{
		ID:             uuid.New().String(),
		Name:           name,
		Code:           code,
		NumberOfGuests: numberOfGuests,
	}
	if phone := strings.TrimSpace(input.Body.Phone); phone != "" {
		guest.Phone = &phone
	}

	// The unique index on code is the authoritative guard; a collision
	// slipping past the pre-check above surfaces here.
	if err := h.db.Create(&guest).Error; err != nil {
		h.logger.Error("Failed to create guest", zap.Error(err))
		return nil, huma.Error500InternalServerError("Failed to create guest")
	}

	out := &GuestOutput{}
	out.Body.Guest = guest
	return out, nil
}

type UpdateGuestInput struct {
	auth.AuthInput
	Body struct {
		ID             string  `json:"id,omitempty"`
		Name           *string `json:"name,omitempty"`
		NumberOfGuests *int    `json:"numberOfGuests,omitempty"`
		Phone          *string `json:"phone,omitempty"`
	}
}

// HandleUpdate applies a partial update to the admin-owned fields. The
// confirmation fields and the code are not reachable through this path.
func (h *GuestHandler) HandleUpdate(ctx context.Context, input *UpdateGuestInput) (*GuestOutput, error) {
	if err := h.authHandler.Authorize(ctx, input.Cookie); err != nil {
		return nil, err
	}

	if input.Body.ID == "" {
		return nil, huma.Error400BadRequest("ID is required")
	}

	var guest models.Guest
	if err := h.db.First(&guest, "id = ?", input.Body.ID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			h.logger.Error("Failed to load guest", zap.Error(err), zap.String("id", input.Body.ID))
		}
		return nil, huma.Error500InternalServerError("Failed to update guest")
	}

	updates := map[string]interface{}{}
	if input.Body.Name != nil {
		if name := strings.TrimSpace(*input.Body.Name); name != "" {
			updates["name"] = name
		}
	}
	if input.Body.NumberOfGuests != nil {
		if *input.Body.NumberOfGuests < 1 {
			return nil, huma.Error400BadRequest("Number of guests must be at least 1")
		}
		updates["number_of_guests"] = *input.Body.NumberOfGuests
	}
	if input.Body.Phone != nil {
		if phone := strings.TrimSpace(*input.Body.Phone); phone != "" {
			updates["phone"] = phone
		} else {
			updates["phone"] = nil
		}
	}

	if len(updates) > 0 {
		if err := h.db.Model(&guest).Updates(updates).Error; err != nil {
			h.logger.Error("Failed to update guest", zap.Error(err), zap.String("id", guest.ID))
			return nil, huma.Error500InternalServerError("Failed to update guest")
		}
		if err := h.db.First(&guest, "id = ?", guest.ID).Error; err != nil {
			h.logger.Error("Failed to reload guest", zap.Error(err), zap.String("id", guest.ID))
			return nil, huma.Error500InternalServerError("Failed to update guest")
		}
	}

	out := &GuestOutput{}
	out.Body.Guest = guest
	return out, nil
}

type ShareGuestInput struct {
	auth.AuthInput
	ID string `path:"id"`
}

type ShareGuestOutput struct {
	Body struct {
		InvitationURL string `json:"invitationUrl"`
		WhatsAppLink  string `json:"whatsappLink,omitempty"`
	}
}

// HandleShare returns the links the admin panel uses to distribute an
// invitation. The WhatsApp link is only built when a phone is on file.
func (h *GuestHandler) HandleShare(ctx context.Context, input *ShareGuestInput) (*ShareGuestOutput, error) {
	if err := h.authHandler.Authorize(ctx, input.Cookie); err != nil {
		return nil, err
	}

	var guest models.Guest
	if err := h.db.First(&guest, "id = ?", input.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, huma.Error404NotFound("Guest not found")
		}
		h.logger.Error("Failed to load guest", zap.Error(err), zap.String("id", input.ID))
		return nil, huma.Error500InternalServerError("Failed to fetch guest")
	}

	invitationURL := invite.InvitationURL(h.baseURL, guest.Code)

	out := &ShareGuestOutput{}
	out.Body.InvitationURL = invitationURL
	if guest.Phone != nil {
		message := fmt.Sprintf("¡Hola %s! Tienes una invitación para nuestra boda: %s", guest.Name, invitationURL)
		out.Body.WhatsAppLink = invite.WhatsAppLink(*guest.Phone, message)
	}
	return out, nil
}

type DeleteGuestInput struct {
	auth.AuthInput
	ID string `query:"id"`
}

type SuccessOutput struct {
	Body struct {
		Success bool `json:"success"`
	}
}

func (h *GuestHandler) HandleDelete(ctx context.Context, input *DeleteGuestInput) (*SuccessOutput, error) {
	if err := h.authHandler.Authorize(ctx, input.Cookie); err != nil {
		return nil, err
	}

	if input.ID == "" {
		return nil, huma.Error400BadRequest("ID is required")
	}

	result := h.db.Delete(&models.Guest{}, "id = ?", input.ID)
	if result.Error != nil {
		h.logger.Error("Failed to delete guest", zap.Error(result.Error), zap.String("id", input.ID))
		return nil, huma.Error500InternalServerError("Failed to delete guest")
	}
	if result.RowsAffected == 0 {
		return nil, huma.Error500InternalServerError("Failed to delete guest")
	}

	out := &SuccessOutput{}
	out.Body.Success = true
	return out, nil
}
