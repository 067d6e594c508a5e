package experience

import (
	"context"

	"github.com/dalemusser/folio/internal/app/resources"
	"github.com/dalemusser/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Store is the experience persistence the handlers need.
type Store interface {
	List(ctx context.Context) ([]models.Experience, error)
	Create(ctx context.Context, e models.Experience) (models.Experience, error)
	Update(ctx context.Context, id primitive.ObjectID, patch models.ExperiencePatch) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// Handler serves /api/experience.
type Handler struct {
	Store    Store
	Fallback func() []models.Experience
	Log      *zap.Logger
}

func NewHandler(store Store, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Fallback: resources.Experience, Log: logger}
}
