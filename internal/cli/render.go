package cli

import (
	"io"
	"os"

	"github.com/dalemusser/folio/internal/app/system/markdown"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	var (
		baseURL string
		engine  string
		css     bool
	)

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a markdown file to HTML",
		Long: `Render a markdown file with the server's renderer and print the HTML.
Leading front matter is stripped. Use "-" to read standard input.

Example:
  folioctl render README.md --base-url https://raw.githubusercontent.com/octocat/hello/main/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				raw []byte
				err error
			)
			if args[0] == "-" {
				raw, err = io.ReadAll(cmd.InOrStdin())
			} else {
				raw, err = os.ReadFile(args[0])
			}
			if err != nil {
				return errors.Wrapf(err, "read %s", args[0])
			}

			var eng markdown.Engine
			folio := markdown.New()
			switch engine {
			case "", "folio":
				eng = folio
			case "gfm":
				eng = markdown.NewGFM()
			default:
				return errors.Errorf("unknown engine %q (want folio or gfm)", engine)
			}

			out := cmd.OutOrStdout()
			if css {
				if c, ok := folio.Highlighter.(interface{ WriteCSS(io.Writer) error }); ok {
					if err := c.WriteCSS(out); err != nil {
						return errors.Wrap(err, "write css")
					}
				}
				return nil
			}

			_, body := markdown.StripFrontMatter(string(raw))
			_, err = io.WriteString(out, eng.Render(body, baseURL)+"\n")
			return err
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "Base URL that relative links and images resolve against")
	cmd.Flags().StringVar(&engine, "engine", "folio", "Renderer: folio or gfm")
	cmd.Flags().BoolVar(&css, "css", false, "Print the syntax highlighting stylesheet instead")
	return cmd
}
