package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dalemusser/folio/internal/domain/models"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DefaultStatsServiceURL is the companion service that lists a user's
// repositories with README, languages and commit counts.
const DefaultStatsServiceURL = "https://github-stats.tashif.codes"

// DefaultCount is the number of repositories classified when none is given.
const DefaultCount = 5

// MaxCount bounds one run.
const MaxCount = 20

// Sink receives every classified project. Implementations must be safe for
// concurrent use.
type Sink interface {
	CreateProject(ctx context.Context, p models.Project) (models.Project, error)
}

// Failure is a project that could not be created.
type Failure struct {
	Title string `json:"title"`
	Error string `json:"error"`
}

// Result reports one run. Created and Failed are never nil. Error is set when
// the repository list itself could not be fetched.
type Result struct {
	RunID     string           `json:"runId"`
	Username  string           `json:"username"`
	Requested int              `json:"requested"`
	Created   []models.Project `json:"created"`
	Failed    []Failure        `json:"failed"`
	Error     string           `json:"error,omitempty"`
}

// Job fetches, classifies and creates projects.
type Job struct {
	statsURL string
	http     *http.Client
	sink     Sink
	log      *zap.Logger
}

// NewJob builds a job reading from statsURL (DefaultStatsServiceURL when
// empty) and writing to sink.
func NewJob(statsURL string, sink Sink, timeout time.Duration, logger *zap.Logger) *Job {
	if statsURL == "" {
		statsURL = DefaultStatsServiceURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Job{
		statsURL: strings.TrimRight(statsURL, "/"),
		http:     &http.Client{Timeout: timeout},
		sink:     sink,
		log:      logger,
	}
}

// Fetch lists the raw repository records for username.
func (j *Job) Fetch(ctx context.Context, username string) ([]Record, error) {
	endpoint := fmt.Sprintf("%s/%s/repos", j.statsURL, url.PathEscape(username))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build repos request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := j.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch projects for %s", username)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("failed to fetch projects for %s: status code %d", username, resp.StatusCode)
	}

	var records []Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, errors.Wrap(err, "decode repos")
	}
	return records, nil
}

// Run classifies up to limit repositories of username and creates each
// project through the sink concurrently. Failures are collected, never
// rolled back: projects already created stay.
func (j *Job) Run(ctx context.Context, username string, limit int) Result {
	res := Result{
		RunID:     uuid.NewString(),
		Username:  username,
		Requested: limit,
		Created:   []models.Project{},
		Failed:    []Failure{},
	}
	log := j.log.With(zap.String("run_id", res.RunID), zap.String("username", username))

	if strings.TrimSpace(username) == "" {
		res.Error = "username is required"
		return res
	}

	records, err := j.Fetch(ctx, username)
	if err != nil {
		log.Warn("classifier fetch failed", zap.Error(err))
		res.Error = err.Error()
		return res
	}

	projects := Classify(records, username, limit)
	log.Info("classifier run started", zap.Int("records", len(records)), zap.Int("projects", len(projects)))

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, p := range projects {
		wg.Add(1)
		go func(p models.Project) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					mu.Lock()
					res.Failed = append(res.Failed, Failure{Title: p.Title, Error: fmt.Sprint(r)})
					mu.Unlock()
				}
			}()

			created, err := j.sink.CreateProject(ctx, p)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				res.Failed = append(res.Failed, Failure{Title: p.Title, Error: err.Error()})
				return
			}
			res.Created = append(res.Created, created)
		}(p)
	}
	wg.Wait()

	if len(res.Failed) > 0 {
		log.Warn("some projects failed to add",
			zap.Int("created", len(res.Created)),
			zap.Int("failed", len(res.Failed)),
		)
	} else {
		log.Info("classifier run finished", zap.Int("created", len(res.Created)))
	}
	return res
}

// ClampCount applies the default and the upper bound to a requested count.
func ClampCount(n int) int {
	switch {
	case n <= 0:
		return DefaultCount
	case n > MaxCount:
		return MaxCount
	}
	return n
}
