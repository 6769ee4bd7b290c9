package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/auroranest/markbridge/internal/fetch"
	"github.com/auroranest/markbridge/internal/input"
	"github.com/auroranest/markbridge/internal/present/tui"
	"github.com/auroranest/markbridge/internal/sampledata"
	"github.com/auroranest/markbridge/pkg/api"
)

func newPreviewCmd() *cobra.Command {
	var fromKind, direction, url string
	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Open the live conversion preview",
		Long: `Preview opens a split terminal view: the input on the left, the
converted result on the right, re-rendered on every keystroke. ctrl+s
saves the result, ctrl+e prints it to stdout on quit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)

			if url != "" && len(args) > 0 {
				return fmt.Errorf("--url and a file argument are mutually exclusive")
			}

			k := api.KindUnknown
			if fromKind != "" {
				var err error
				k, err = api.ParseKind(fromKind)
				if err != nil {
					return err
				}
			}
			var dir api.Direction
			if direction != "" {
				var err error
				dir, err = api.ParseDirection(direction)
				if err != nil {
					return err
				}
			}

			initial, source := "", ""
			switch {
			case url != "":
				text, err := fetch.Text(cmd.Context(), url, app.Fetch)
				if err != nil {
					return err
				}
				initial, source = text, url
			case len(args) == 1:
				text, err := input.ReadFile(args[0])
				if err != nil {
					return err
				}
				initial, source = text, args[0]
			}

			samples, err := sampledata.All()
			if err != nil {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: samples unavailable: %v\n", err)
				samples = nil
			}

			return tui.Run(cmd.Context(), tui.Options{
				Conv:      app.Conv,
				Detector:  app.Detector,
				Samples:   samples,
				Style:     app.Cfg.GetString("preview.style"),
				Wrap:      app.Cfg.GetInt("preview.wrap"),
				OutputDir: app.Cfg.GetString("output_dir"),
				Source:    source,
				Initial:   initial,
				Kind:      k,
				Direction: dir,
			})
		},
	}
	cmd.Flags().StringVar(&fromKind, "from", "", "lock the input kind: word|excel|ppt|markdown|text")
	cmd.Flags().StringVar(&direction, "direction", "", "initial direction: to-markdown|from-markdown")
	cmd.Flags().StringVar(&url, "url", "", "fetch the initial input from a URL")
	registerKindCompletion(cmd, "from")
	return cmd
}
