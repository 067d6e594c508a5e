package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/dalemusser/folio/internal/app/system/auth"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newHashPasswordCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "hash-password",
		Short: "Print a bcrypt hash for FOLIO_ADMIN_PASSWORD_HASH",
		Long: `Hash an admin password with bcrypt. The password comes from --password or,
when the flag is omitted, from the first line of standard input. Store the
output in FOLIO_ADMIN_PASSWORD_HASH so the plain password never sits in the
server's environment.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("password") {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return errors.New("password required on --password or stdin")
				}
				password = strings.TrimRight(line, "\r\n")
			}
			if password == "" {
				return errors.New("password must not be empty")
			}
			hash, err := auth.HashPassword(password)
			if err != nil {
				return errors.Wrap(err, "hash password")
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
			return err
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "Password to hash (read from stdin when omitted)")
	return cmd
}
