package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/folio/internal/app/system/apperror"
	"github.com/dalemusser/folio/internal/app/system/inputval"
	"github.com/dalemusser/folio/internal/domain/models"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// ProjectCreator is the part of the project store a StoreSink needs.
type ProjectCreator interface {
	Create(ctx context.Context, p models.Project) (models.Project, error)
}

// StoreSink writes projects straight to the store, applying the same
// validation as the create endpoint.
type StoreSink struct {
	Store ProjectCreator
}

// CreateProject implements Sink.
func (s StoreSink) CreateProject(ctx context.Context, p models.Project) (models.Project, error) {
	if res := inputval.Project(p); res.HasErrors() {
		return models.Project{}, apperror.ValidationFailed(res.FirstField(), res.First())
	}
	return s.Store.Create(ctx, p)
}

// APISink posts projects to a running folio server's create endpoint with a
// bearer token. Used by folioctl.
type APISink struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

// NewAPISink returns an APISink for the server at baseURL.
func NewAPISink(baseURL, token string, timeout time.Duration) *APISink {
	return &APISink{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// CreateProject implements Sink.
func (s *APISink) CreateProject(ctx context.Context, p models.Project) (models.Project, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return models.Project{}, errors.Wrap(err, "encode project")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+"/api/projects", bytes.NewReader(body))
	if err != nil {
		return models.Project{}, errors.Wrap(err, "build create request")
	}
	req.Header.Set("Content-Type", "application/json")
	if s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}

	resp, err := s.HTTP.Do(req)
	if err != nil {
		return models.Project{}, errors.Wrapf(err, "create project %q", p.Title)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Project{}, errors.Wrap(err, "read create response")
	}
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		msg := gjson.GetBytes(raw, "error").String()
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return models.Project{}, errors.Errorf("create project %q: %d %s", p.Title, resp.StatusCode, msg)
	}

	var created models.Project
	if err := json.Unmarshal(raw, &created); err != nil {
		return models.Project{}, errors.Wrap(err, "decode created project")
	}
	return created, nil
}
