package cli

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/dalemusser/folio/internal/app/system/classifier"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newClassifyCmd(logger func() *zap.Logger) *cobra.Command {
	var (
		username string
		count    int
		apiURL   string
		token    string
		statsURL string
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a user's GitHub repositories and add them as projects",
		Long: `Fetch a user's repositories from the stats service, classify each one
(description, status and technologies) and create it on a running server
through the authenticated projects endpoint.

Example:
  folioctl classify --username octocat --count 5 --api https://folio.example.com --token $TOKEN`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(username) == "" {
				return errors.New("--username is required")
			}
			if count < 0 || count > classifier.MaxCount {
				return errors.Errorf("--count must be between 1 and %d", classifier.MaxCount)
			}
			if token == "" {
				return errors.New("--token (or FOLIO_TOKEN) is required")
			}

			sink := classifier.NewAPISink(apiURL, token, timeout)
			job := classifier.NewJob(statsURL, sink, timeout, logger())
			res := job.Run(cmd.Context(), username, classifier.ClampCount(count))

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(res); err != nil {
				return errors.Wrap(err, "write result")
			}
			if res.Error != "" {
				return errors.New(res.Error)
			}
			if len(res.Failed) > 0 {
				return errors.Errorf("%d of %d projects failed", len(res.Failed), len(res.Failed)+len(res.Created))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "GitHub username whose repositories are classified")
	cmd.Flags().IntVar(&count, "count", classifier.DefaultCount, "Number of repositories to add")
	cmd.Flags().StringVar(&apiURL, "api", envOr("API_URL", "http://localhost:8080"), "Base URL of the folio server")
	cmd.Flags().StringVar(&token, "token", envOr("TOKEN", ""), "Admin bearer token")
	cmd.Flags().StringVar(&statsURL, "stats-url", envOr("STATS_SERVICE_URL", classifier.DefaultStatsServiceURL), "Repository stats service")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Per-request timeout")
	return cmd
}
