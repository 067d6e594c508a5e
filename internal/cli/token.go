package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/folio/internal/app/system/auth"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	var (
		email  string
		secret string
		issuer string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an admin token from the configured secret",
		Long: `Mint an admin bearer token signed with FOLIO_JWT_SECRET. The server accepts
it in the Authorization header until it expires.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			email = strings.TrimSpace(email)
			if email == "" {
				return errors.New("--email is required")
			}
			svc, err := auth.NewTokenService(secret, issuer, ttl)
			if err != nil {
				return errors.Wrap(err, "token service")
			}
			tok, err := svc.Generate(email)
			if err != nil {
				return errors.Wrap(err, "sign token")
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tok)
			return err
		},
	}

	defTTL, err := time.ParseDuration(envOr("TOKEN_TTL", "720h"))
	if err != nil {
		defTTL = auth.DefaultTokenTTL
	}
	cmd.Flags().StringVar(&email, "email", envOr("ADMIN_EMAIL", ""), "Admin email the token is issued for")
	cmd.Flags().StringVar(&secret, "secret", envOr("JWT_SECRET", ""), "Signing secret (defaults to FOLIO_JWT_SECRET)")
	cmd.Flags().StringVar(&issuer, "issuer", envOr("JWT_ISSUER", "folio"), "Issuer claim")
	cmd.Flags().DurationVar(&ttl, "ttl", defTTL, "Token lifetime")
	return cmd
}
