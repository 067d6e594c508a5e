package projects

import (
	"context"

	"github.com/dalemusser/folio/internal/app/resources"
	"github.com/dalemusser/folio/internal/app/system/classifier"
	"github.com/dalemusser/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Store is the project persistence the handlers need.
type Store interface {
	List(ctx context.Context) ([]models.Project, error)
	Create(ctx context.Context, p models.Project) (models.Project, error)
	Update(ctx context.Context, id primitive.ObjectID, patch models.ProjectPatch) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Reorder(ctx context.Context, ids []primitive.ObjectID) (int64, error)
}

// Classifier runs one repository classification batch.
type Classifier interface {
	Run(ctx context.Context, username string, limit int) classifier.Result
}

// Handler serves /api/projects.
type Handler struct {
	Store      Store
	Classifier Classifier
	Fallback   func() []models.Project
	Log        *zap.Logger
}

// NewHandler constructs a projects Handler. job may be nil, which disables
// auto-add.
func NewHandler(store Store, job Classifier, logger *zap.Logger) *Handler {
	return &Handler{
		Store:      store,
		Classifier: job,
		Fallback:   resources.Projects,
		Log:        logger,
	}
}
