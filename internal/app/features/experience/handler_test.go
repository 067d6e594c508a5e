package experience_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/dalemusser/folio/internal/app/features/experience"
	"github.com/dalemusser/folio/internal/app/system/apperror"
	"github.com/dalemusser/folio/internal/domain/models"
	"github.com/dalemusser/folio/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type memStore struct {
	items   map[primitive.ObjectID]models.Experience
	patches []models.ExperiencePatch
	listErr error
}

func (m *memStore) List(context.Context) ([]models.Experience, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := []models.Experience{}
	for _, e := range m.items {
		out = append(out, e)
	}
	return out, nil
}

func (m *memStore) Create(_ context.Context, e models.Experience) (models.Experience, error) {
	e.ID = primitive.NewObjectID()
	m.items[e.ID] = e
	return e, nil
}

func (m *memStore) Update(_ context.Context, id primitive.ObjectID, patch models.ExperiencePatch) error {
	if _, ok := m.items[id]; !ok {
		return apperror.NotFound("Experience")
	}
	m.patches = append(m.patches, patch)
	return nil
}

func (m *memStore) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := m.items[id]; !ok {
		return apperror.NotFound("Experience")
	}
	delete(m.items, id)
	return nil
}

func newServer(t *testing.T) (*memStore, http.Handler, string) {
	t.Helper()
	gate := testutil.NewGate(t)
	store := &memStore{items: map[primitive.ObjectID]models.Experience{}}
	h := experience.NewHandler(store, zap.NewNop())
	h.Fallback = func() []models.Experience { return []models.Experience{{Company: "Fallback Inc"}} }
	return store, experience.Routes(h, gate), testutil.AdminToken(t, gate)
}

func TestCreate(t *testing.T) {
	store, h, token := newServer(t)

	body := map[string]any{"title": "Intern", "company": "Acme", "startDate": "2024-06", "current": true}
	rec := testutil.NewRecorder()
	h.ServeHTTP(rec, testutil.WithBearer(testutil.NewJSONRequest(t, http.MethodPost, "/", body), token))
	rec.AssertStatus(t, http.StatusCreated)

	if len(store.items) != 1 {
		t.Fatalf("items: got %d, want 1", len(store.items))
	}
}

func TestCreate_MissingFields(t *testing.T) {
	store, h, token := newServer(t)

	rec := testutil.NewRecorder()
	h.ServeHTTP(rec, testutil.WithBearer(testutil.NewJSONRequest(t, http.MethodPost, "/",
		map[string]any{"title": "Intern"}), token))
	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "company is required")

	if len(store.items) != 0 {
		t.Errorf("items: got %d, want 0", len(store.items))
	}
}

func TestUpdate(t *testing.T) {
	store, h, token := newServer(t)
	e, _ := store.Create(context.Background(), models.Experience{Title: "Intern", Company: "Acme", StartDate: "2024-06"})

	tests := []struct {
		name string
		body map[string]any
		want int
	}{
		{"ok", map[string]any{"_id": e.ID.Hex(), "current": true}, http.StatusOK},
		{"blank company", map[string]any{"_id": e.ID.Hex(), "company": " "}, http.StatusBadRequest},
		{"bad url", map[string]any{"_id": e.ID.Hex(), "companyUrl": "acme"}, http.StatusBadRequest},
		{"missing id", map[string]any{"title": "x"}, http.StatusBadRequest},
		{"unknown id", map[string]any{"_id": primitive.NewObjectID().Hex()}, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := testutil.NewRecorder()
			h.ServeHTTP(rec, testutil.WithBearer(testutil.NewJSONRequest(t, http.MethodPut, "/", tt.body), token))
			rec.AssertStatus(t, tt.want)
		})
	}

	if len(store.patches) != 1 || store.patches[0].Current == nil || !*store.patches[0].Current {
		t.Errorf("patches: got %+v", store.patches)
	}
}

func TestDelete_RequiresToken(t *testing.T) {
	store, h, _ := newServer(t)
	e, _ := store.Create(context.Background(), models.Experience{Title: "Intern", Company: "Acme", StartDate: "2024-06"})

	rec := testutil.NewRecorder()
	h.ServeHTTP(rec, testutil.NewJSONRequest(t, http.MethodDelete, "/", map[string]any{"_id": e.ID.Hex()}))
	rec.AssertStatus(t, http.StatusUnauthorized)

	if len(store.items) != 1 {
		t.Error("entry deleted without a token")
	}
}

func TestList_Fallback(t *testing.T) {
	store, h, _ := newServer(t)
	store.listErr = errors.New("no reachable servers")

	rec := testutil.NewRecorder()
	h.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/"))
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Fallback Inc")
}
