package responsibilities

import (
	"context"

	"github.com/dalemusser/folio/internal/app/resources"
	"github.com/dalemusser/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Store is the responsibility persistence the handlers need.
type Store interface {
	List(ctx context.Context) ([]models.Responsibility, error)
	Create(ctx context.Context, r models.Responsibility) (models.Responsibility, error)
	Update(ctx context.Context, id primitive.ObjectID, patch models.ResponsibilityPatch) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// Handler serves /api/responsibilities.
type Handler struct {
	Store    Store
	Fallback func() []models.Responsibility
	Log      *zap.Logger
}

func NewHandler(store Store, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Fallback: resources.Responsibilities, Log: logger}
}
