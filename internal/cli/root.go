// Package cli implements folioctl, the operator command line for a folio
// deployment.
package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// EnvPrefix matches the server's configuration prefix so both read the same
// variables.
const EnvPrefix = "FOLIO_"

// NewRootCmd builds the folioctl command tree writing to out.
func NewRootCmd(out io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "folioctl",
		Short: "Operate a folio portfolio server",
		Long: `folioctl runs maintenance tasks against a folio deployment:
classifying GitHub repositories into projects, rendering markdown the way
the server does, minting admin tokens and hashing the admin password.`,
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging to stderr")

	logger := func() *zap.Logger {
		if !verbose {
			return zap.NewNop()
		}
		l, err := zap.NewDevelopment()
		if err != nil {
			return zap.NewNop()
		}
		return l
	}

	root.AddCommand(
		newClassifyCmd(logger),
		newRenderCmd(),
		newTokenCmd(),
		newHashPasswordCmd(),
	)
	return root
}

// Execute runs folioctl and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

// envOr returns the value of FOLIO_<name> when set, else def.
func envOr(name, def string) string {
	if v := os.Getenv(EnvPrefix + name); v != "" {
		return v
	}
	return def
}
