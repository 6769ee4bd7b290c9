package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/auroranest/markbridge/internal/download"
	"github.com/auroranest/markbridge/internal/editor"
	"github.com/auroranest/markbridge/internal/fetch"
	"github.com/auroranest/markbridge/internal/input"
	"github.com/auroranest/markbridge/internal/present"
	"github.com/auroranest/markbridge/internal/render"
	"github.com/auroranest/markbridge/internal/ui"
	"github.com/auroranest/markbridge/internal/wire"
	"github.com/auroranest/markbridge/pkg/api"
)

type convertFlags struct {
	from      string
	to        string
	direction string
	url       string
	out       string
	save      bool
	edit      bool
	output    string
	show      bool
}

// docInput is one unit of convert work: where the text came from and
// the text itself.
type docInput struct {
	name string
	text string
}

func newConvertCmd() *cobra.Command {
	var f convertFlags
	cmd := &cobra.Command{
		Use:   "convert [file...]",
		Short: "Convert documents to or from Markdown",
		Long: `Convert reads files, stdin, a remote URL, or an editor buffer, detects
or accepts the document kind, and converts to or from Markdown.

Without --out or --save the result prints to stdout in the selected
output mode. --save writes into the configured output_dir under a name
derived from the source; --out writes to an explicit path, or into a
directory when the path names one.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, f)
		},
	}
	cmd.Flags().StringVar(&f.from, "from", "", "input kind: word|excel|ppt|markdown|text (default: detect)")
	cmd.Flags().StringVar(&f.to, "to", "", "convert Markdown input to this kind (implies from-markdown)")
	cmd.Flags().StringVar(&f.direction, "direction", "", "conversion direction: to-markdown|from-markdown")
	cmd.Flags().StringVar(&f.url, "url", "", "fetch input from a URL")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "write the result to this path (or into this directory)")
	cmd.Flags().BoolVar(&f.save, "save", false, "write the result into output_dir under a derived name")
	cmd.Flags().BoolVar(&f.edit, "edit", false, "compose the input in $EDITOR")
	cmd.Flags().StringVar(&f.output, "output", "", "output mode: plain|pretty|json|ndjson (default from config)")
	cmd.Flags().BoolVar(&f.show, "show", false, "print a detail view instead of the raw result")
	registerOutputCompletion(cmd)
	registerKindCompletion(cmd, "from", "to")
	return cmd
}

func runConvert(cmd *cobra.Command, args []string, f convertFlags) error {
	app := getApp(cmd)

	dir, k, err := resolveConversion(f.from, f.to, f.direction)
	if err != nil {
		return err
	}
	if f.out != "" && f.save {
		return fmt.Errorf("--out and --save are mutually exclusive")
	}

	docs, err := collectInputs(cmd, app, args, f, k, dir)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return nil // edit flow ended with nothing to convert
	}
	if f.show && len(docs) > 1 {
		return fmt.Errorf("--show works with a single input")
	}

	opts, err := outputOptions(app, f.output)
	if err != nil {
		return err
	}

	kindOf := func(d docInput) api.Kind {
		if k != api.KindUnknown {
			return k
		}
		return app.Detector.Detect(d.name, d.text)
	}

	if f.out != "" || f.save {
		return saveAll(cmd, app, docs, kindOf, dir, f)
	}

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	if len(docs) == 1 {
		d := docs[0]
		res := app.Conv.Convert(kindOf(d), dir, d.text)
		if ep, ok := res.Preview.(api.EmptyPreview); ok {
			return fmt.Errorf("nothing to convert: %s", ep.Reason)
		}
		return withPager(cmd.Context(), out, errOut, func(w io.Writer) error {
			if f.show {
				var rend *render.Renderer
				if opts.Mode == present.ModePretty {
					rend = render.New(opts.Style, opts.Wrap)
				}
				_, err := io.WriteString(w, ui.FormatResult(res, d.name, rend))
				return err
			}
			return present.RenderResult(cmd.Context(), w, res, opts)
		})
	}

	// Batch: stream results, warn and continue on empty conversions.
	return withPager(cmd.Context(), out, errOut, func(w io.Writer) error {
		stream := present.NewStream(w, opts)
		for _, d := range docs {
			res := app.Conv.Convert(kindOf(d), dir, d.text)
			if ep, ok := res.Preview.(api.EmptyPreview); ok {
				_, _ = fmt.Fprintf(errOut, "skip %s: %s\n", d.name, ep.Reason)
				continue
			}
			if err := stream.WriteResults([]api.Result{res}); err != nil {
				return err
			}
		}
		return stream.Close()
	})
}

// resolveConversion turns the --from/--to/--direction flag combination
// into a direction and an optional fixed kind. KindUnknown means detect
// per input.
func resolveConversion(from, to, direction string) (api.Direction, api.Kind, error) {
	if from != "" && to != "" {
		return "", api.KindUnknown, fmt.Errorf("--from and --to are mutually exclusive")
	}

	dir := api.ToMarkdown
	if to != "" {
		dir = api.FromMarkdown
	}
	if direction != "" {
		d, err := api.ParseDirection(direction)
		if err != nil {
			return "", api.KindUnknown, err
		}
		if to != "" && d == api.ToMarkdown {
			return "", api.KindUnknown, fmt.Errorf("--to implies --direction from-markdown")
		}
		dir = d
	}

	kindName := from
	if to != "" {
		kindName = to
	}
	k := api.KindUnknown
	if kindName != "" {
		var err error
		k, err = api.ParseKind(kindName)
		if err != nil {
			return "", api.KindUnknown, err
		}
	}
	if dir == api.FromMarkdown && k == api.KindUnknown {
		return "", api.KindUnknown, fmt.Errorf("from-markdown conversion needs --to <kind>")
	}
	return dir, k, nil
}

func collectInputs(cmd *cobra.Command, app *wire.App, args []string, f convertFlags, k api.Kind, dir api.Direction) ([]docInput, error) {
	switch {
	case f.url != "" && len(args) > 0:
		return nil, fmt.Errorf("--url and file arguments are mutually exclusive")
	case f.edit && f.url != "":
		return nil, fmt.Errorf("--edit and --url are mutually exclusive")
	case f.edit && len(args) > 1:
		return nil, fmt.Errorf("--edit takes at most one file to seed from")
	}

	if f.url != "" {
		text, err := fetch.Text(cmd.Context(), f.url, app.Fetch)
		if err != nil {
			return nil, err
		}
		return []docInput{{name: f.url, text: text}}, nil
	}

	if f.edit {
		initial, name := "", ""
		if len(args) == 1 {
			var err error
			initial, err = input.ReadFile(args[0])
			if err != nil {
				return nil, err
			}
			name = args[0]
		}
		text, changed, err := editor.Edit(initial, scratchExt(k, dir), app.Cfg.GetBool("editor.keep_temp"))
		if err != nil {
			return nil, err
		}
		if !changed && strings.TrimSpace(text) == "" {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No edits; nothing to convert.")
			return nil, nil
		}
		return []docInput{{name: name, text: text}}, nil
	}

	if len(args) == 0 {
		text, err := input.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, err
		}
		return []docInput{{text: text}}, nil
	}

	docs := make([]docInput, 0, len(args))
	for _, path := range args {
		text, err := input.ReadFile(path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, docInput{name: path, text: text})
	}
	return docs, nil
}

// scratchExt picks the editor scratch extension so syntax highlighting
// matches what the user is typing.
func scratchExt(k api.Kind, dir api.Direction) string {
	if dir == api.FromMarkdown {
		return ".md"
	}
	if k == api.KindExcel {
		return ".csv"
	}
	return ".txt"
}

func outputOptions(app *wire.App, flagMode string) (present.Options, error) {
	modeStr := flagMode
	if modeStr == "" {
		modeStr = app.Cfg.GetString("default_output")
	}
	mode, ok := present.ParseMode(strings.ToLower(modeStr))
	if !ok {
		return present.Options{}, fmt.Errorf("invalid --output: %s", modeStr)
	}
	return present.Options{
		Mode:  mode,
		Style: app.Cfg.GetString("preview.style"),
		Wrap:  app.Cfg.GetInt("preview.wrap"),
	}, nil
}

func saveAll(cmd *cobra.Command, app *wire.App, docs []docInput, kindOf func(docInput) api.Kind, dir api.Direction, f convertFlags) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	// --out names the exact file for a single input, unless it is an
	// existing directory; with several inputs it must be a directory.
	explicit := f.out != "" && len(docs) == 1 && !isDir(f.out)
	if f.out != "" && len(docs) > 1 && !isDir(f.out) {
		return fmt.Errorf("--out must name a directory when converting multiple files")
	}
	outDir := app.Cfg.GetString("output_dir")
	if f.out != "" {
		outDir = f.out
	}

	for _, d := range docs {
		res := app.Conv.Convert(kindOf(d), dir, d.text)
		if ep, ok := res.Preview.(api.EmptyPreview); ok {
			if len(docs) == 1 {
				return fmt.Errorf("nothing to convert: %s", ep.Reason)
			}
			_, _ = fmt.Fprintf(errOut, "skip %s: %s\n", d.name, ep.Reason)
			continue
		}
		var (
			path    string
			skipped bool
			err     error
		)
		if explicit {
			path, skipped, err = download.SaveAs(res, f.out)
		} else {
			path, skipped, err = download.Save(res, dir, d.name, outDir)
		}
		if err != nil {
			return err
		}
		if skipped {
			_, _ = fmt.Fprintf(out, "Unchanged %s\n", path)
		} else {
			_, _ = fmt.Fprintf(out, "Wrote %s\n", path)
		}
	}
	return nil
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
