package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cpalomino/wedding-api/internal/auth"
	"github.com/cpalomino/wedding-api/internal/models"
)

// StatsHandler serves the admin dashboard aggregates.
type StatsHandler struct {
	db          *gorm.DB
	logger      *zap.Logger
	authHandler *auth.AuthHandler
}

func NewStatsHandler(db *gorm.DB, logger *zap.Logger, authHandler *auth.AuthHandler) *StatsHandler {
	return &StatsHandler{db: db, logger: logger, authHandler: authHandler}
}

type GetStatsInput struct {
	auth.AuthInput
}

type GetStatsOutput struct {
	Body models.DashboardStats
}

func (h *StatsHandler) HandleStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error) {
	if err := h.authHandler.Authorize(ctx, input.Cookie); err != nil {
		return nil, err
	}

	var guests []models.Guest
	if err := h.db.Find(&guests).Error; err != nil {
		h.logger.Error("Failed to load guests for stats", zap.Error(err))
		return nil, huma.Error500InternalServerError("Failed to compute stats")
	}

	return &GetStatsOutput{Body: models.ComputeStats(guests)}, nil
}
