package skills

import (
	"context"

	"github.com/dalemusser/folio/internal/app/features/shared"
	"github.com/dalemusser/folio/internal/app/resources"
	"github.com/dalemusser/folio/internal/domain/models"
	"go.uber.org/zap"
)

// Store is the skills document plus its per-item operations.
type Store interface {
	shared.SingletonStore[models.SkillsDoc]
	AddItem(ctx context.Context, skillType string, item models.SkillItem) error
	ReplaceItem(ctx context.Context, skillType, name string, item models.SkillItem) error
	RemoveItem(ctx context.Context, skillType, name string) error
}

// Handler serves /api/skills.
type Handler struct {
	Store    Store
	Fallback func() models.SkillsDoc
	Log      *zap.Logger
}

func NewHandler(store Store, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Fallback: resources.Skills, Log: logger}
}
