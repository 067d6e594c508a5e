package responsibilities_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/dalemusser/folio/internal/app/features/responsibilities"
	"github.com/dalemusser/folio/internal/app/system/apperror"
	"github.com/dalemusser/folio/internal/domain/models"
	"github.com/dalemusser/folio/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type memStore struct {
	items   map[primitive.ObjectID]models.Responsibility
	patches []models.ResponsibilityPatch
	listErr error
}

func (m *memStore) List(context.Context) ([]models.Responsibility, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := []models.Responsibility{}
	for _, r := range m.items {
		out = append(out, r)
	}
	return out, nil
}

func (m *memStore) Create(_ context.Context, r models.Responsibility) (models.Responsibility, error) {
	r.ID = primitive.NewObjectID()
	m.items[r.ID] = r
	return r, nil
}

func (m *memStore) Update(_ context.Context, id primitive.ObjectID, patch models.ResponsibilityPatch) error {
	if _, ok := m.items[id]; !ok {
		return apperror.NotFound("Responsibility")
	}
	m.patches = append(m.patches, patch)
	return nil
}

func (m *memStore) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := m.items[id]; !ok {
		return apperror.NotFound("Responsibility")
	}
	delete(m.items, id)
	return nil
}

func newServer(t *testing.T) (*memStore, http.Handler, string) {
	t.Helper()
	gate := testutil.NewGate(t)
	store := &memStore{items: map[primitive.ObjectID]models.Responsibility{}}
	h := responsibilities.NewHandler(store, zap.NewNop())
	h.Fallback = func() []models.Responsibility { return []models.Responsibility{{Title: "Fallback Mentor"}} }
	return store, responsibilities.Routes(h, gate), testutil.AdminToken(t, gate)
}

func TestList(t *testing.T) {
	store, h, _ := newServer(t)
	store.Create(context.Background(), models.Responsibility{Title: "Treasurer", Organization: "Optica", Type: models.ResponsibilityTreasurer})

	rec := testutil.NewRecorder()
	h.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/"))
	rec.AssertStatus(t, http.StatusOK)

	var got []models.Responsibility
	rec.DecodeJSON(t, &got)
	if len(got) != 1 || got[0].Title != "Treasurer" {
		t.Errorf("list: got %+v", got)
	}
}

func TestList_Fallback(t *testing.T) {
	store, h, _ := newServer(t)
	store.listErr = errors.New("no reachable servers")

	rec := testutil.NewRecorder()
	h.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/"))
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Fallback Mentor")
}

func TestCreate(t *testing.T) {
	store, h, token := newServer(t)

	body := map[string]any{"title": "Mentor", "organization": "Debating Society", "duration": "2023 - 2025", "type": "mentor"}
	rec := testutil.NewRecorder()
	h.ServeHTTP(rec, testutil.WithBearer(testutil.NewJSONRequest(t, http.MethodPost, "/", body), token))
	rec.AssertStatus(t, http.StatusCreated)

	var created models.Responsibility
	rec.DecodeJSON(t, &created)
	if created.ID.IsZero() || created.Organization != "Debating Society" {
		t.Errorf("created: got %+v", created)
	}
	if len(store.items) != 1 {
		t.Fatalf("items: got %d, want 1", len(store.items))
	}
}

func TestCreate_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
		want string
	}{
		{"missing duration", map[string]any{"title": "Lead", "organization": "Club", "type": "mentor"}, "duration is required"},
		{"unknown type", map[string]any{"title": "Lead", "organization": "Club", "duration": "2024", "type": "captain"}, "type must be one of"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, h, token := newServer(t)
			rec := testutil.NewRecorder()
			h.ServeHTTP(rec, testutil.WithBearer(testutil.NewJSONRequest(t, http.MethodPost, "/", tt.body), token))
			rec.AssertStatus(t, http.StatusBadRequest)
			rec.AssertContains(t, tt.want)
			if len(store.items) != 0 {
				t.Errorf("items: got %d, want 0", len(store.items))
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	store, h, token := newServer(t)
	r, _ := store.Create(context.Background(), models.Responsibility{Title: "Mentor", Organization: "Club", Type: models.ResponsibilityMentor})

	tests := []struct {
		name string
		body map[string]any
		want int
	}{
		{"ok with id", map[string]any{"id": r.ID.Hex(), "type": "executive"}, http.StatusOK},
		{"blank title", map[string]any{"_id": r.ID.Hex(), "title": " "}, http.StatusBadRequest},
		{"unknown type", map[string]any{"_id": r.ID.Hex(), "type": "captain"}, http.StatusBadRequest},
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

	if len(store.patches) != 1 || store.patches[0].Type == nil || *store.patches[0].Type != models.ResponsibilityExecutive {
		t.Errorf("patches: got %+v", store.patches)
	}
}

func TestDelete(t *testing.T) {
	store, h, token := newServer(t)
	r, _ := store.Create(context.Background(), models.Responsibility{Title: "Mentor", Organization: "Club"})

	rec := testutil.NewRecorder()
	h.ServeHTTP(rec, testutil.NewJSONRequest(t, http.MethodDelete, "/", map[string]any{"_id": r.ID.Hex()}))
	rec.AssertStatus(t, http.StatusUnauthorized)
	if len(store.items) != 1 {
		t.Fatal("entry deleted without a token")
	}

	rec = testutil.NewRecorder()
	h.ServeHTTP(rec, testutil.WithBearer(testutil.NewJSONRequest(t, http.MethodDelete, "/", map[string]any{"_id": r.ID.Hex()}), token))
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `"success":true`)
	if len(store.items) != 0 {
		t.Error("entry not deleted")
	}
}
