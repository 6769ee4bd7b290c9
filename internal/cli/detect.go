package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/auroranest/markbridge/internal/input"
	"github.com/auroranest/markbridge/internal/present"
	"github.com/auroranest/markbridge/internal/present/format"
)

func newDetectCmd() *cobra.Command {
	var outputMode string
	var noHeaders bool
	cmd := &cobra.Command{
		Use:   "detect [file...]",
		Short: "Detect the document kind of each input",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)

			mode, ok := present.ParseMode(strings.ToLower(outputMode))
			if !ok {
				return fmt.Errorf("invalid --output: %s", outputMode)
			}
			opts := present.Options{Mode: mode}

			var ds []format.Detection
			if len(args) == 0 {
				text, err := input.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				ds = append(ds, format.Detection{Name: "-", Kind: app.Detector.Detect("", text)})
			}
			for _, path := range args {
				text, err := input.ReadFile(path)
				if err != nil {
					return err
				}
				ds = append(ds, format.Detection{Name: path, Kind: app.Detector.Detect(path, text)})
			}

			return withPager(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), func(w io.Writer) error {
				return present.RenderDetections(cmd.Context(), w, ds, opts, !noHeaders)
			})
		},
	}
	cmd.Flags().StringVar(&outputMode, "output", "plain", "output mode: plain|json|ndjson")
	cmd.Flags().BoolVar(&noHeaders, "noheaders", false, "hide column headers (plain)")
	registerOutputCompletion(cmd)
	return cmd
}
