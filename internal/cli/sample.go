package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/auroranest/markbridge/internal/present"
	"github.com/auroranest/markbridge/internal/sampledata"
	"github.com/auroranest/markbridge/internal/ui"
	"github.com/auroranest/markbridge/internal/util"
	"github.com/auroranest/markbridge/pkg/api"
)

func newSampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Work with the embedded sample documents",
	}
	cmd.AddCommand(newSampleListCmd())
	cmd.AddCommand(newSampleShowCmd())
	cmd.AddCommand(newSampleConvertCmd())
	return cmd
}

func completeSampleNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return util.Rank(toComplete, sampledata.Names(), 10), cobra.ShellCompDirectiveNoFileComp
}

func newSampleListCmd() *cobra.Command {
	var outputMode string
	var browse bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the embedded samples",
		RunE: func(cmd *cobra.Command, args []string) error {
			samples, err := sampledata.All()
			if err != nil {
				return err
			}

			if browse {
				name, err := ui.BrowseSamples(cmd.Context(), samples)
				if err != nil || name == "" {
					return err
				}
				_, text, err := sampledata.Load(name)
				if err != nil {
					return err
				}
				_, err = io.WriteString(cmd.OutOrStdout(), text)
				return err
			}

			mode, ok := present.ParseMode(strings.ToLower(outputMode))
			if !ok {
				return fmt.Errorf("invalid --output: %s", outputMode)
			}

			return withPager(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), func(w io.Writer) error {
				switch mode {
				case present.ModeJSON:
					enc := json.NewEncoder(w)
					enc.SetIndent("", "  ")
					return enc.Encode(samples)
				case present.ModeNDJSON:
					enc := json.NewEncoder(w)
					for _, s := range samples {
						if err := enc.Encode(s); err != nil {
							return err
						}
					}
					return nil
				default:
					tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
					if _, err := fmt.Fprintln(tw, "name\tkind\tfile\tsummary"); err != nil {
						return err
					}
					for _, s := range samples {
						if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.Name, s.Kind, s.File, s.Summary); err != nil {
							return err
						}
					}
					return tw.Flush()
				}
			})
		},
	}
	cmd.Flags().StringVar(&outputMode, "output", "plain", "output mode: plain|json|ndjson")
	cmd.Flags().BoolVar(&browse, "browse", false, "pick a sample interactively and print it")
	registerOutputCompletion(cmd)
	return cmd
}

func newSampleShowCmd() *cobra.Command {
	var info bool
	cmd := &cobra.Command{
		Use:               "show <name>",
		Short:             "Print a sample document",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSampleNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, text, err := sampledata.Load(args[0])
			if err != nil {
				return err
			}
			return withPager(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), func(w io.Writer) error {
				if info {
					_, err := fmt.Fprintf(w, "name: %s\nkind: %s\nfile: %s\nsummary: %s\n---\n%s", s.Name, s.Kind, s.File, s.Summary, text)
					return err
				}
				_, err := io.WriteString(w, text)
				return err
			})
		},
	}
	cmd.Flags().BoolVar(&info, "info", false, "include the manifest metadata")
	return cmd
}

func newSampleConvertCmd() *cobra.Command {
	var to, direction, outputMode string
	cmd := &cobra.Command{
		Use:               "convert <name>",
		Short:             "Convert a sample document",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSampleNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)

			s, text, err := sampledata.Load(args[0])
			if err != nil {
				return err
			}

			// The manifest already names the sample's kind, so --to only
			// overrides the target of a from-markdown conversion.
			dir := api.ToMarkdown
			k := s.APIKind()
			if to != "" {
				dir = api.FromMarkdown
				if k, err = api.ParseKind(to); err != nil {
					return err
				}
			}
			if direction != "" {
				d, err := api.ParseDirection(direction)
				if err != nil {
					return err
				}
				if to != "" && d == api.ToMarkdown {
					return fmt.Errorf("--to implies --direction from-markdown")
				}
				dir = d
			}

			opts, err := outputOptions(app, outputMode)
			if err != nil {
				return err
			}

			res := app.Conv.Convert(k, dir, text)
			if ep, ok := res.Preview.(api.EmptyPreview); ok {
				return fmt.Errorf("nothing to convert: %s", ep.Reason)
			}
			return withPager(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), func(w io.Writer) error {
				return present.RenderResult(cmd.Context(), w, res, opts)
			})
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "convert the sample's Markdown to this kind")
	cmd.Flags().StringVar(&direction, "direction", "", "conversion direction: to-markdown|from-markdown")
	cmd.Flags().StringVar(&outputMode, "output", "", "output mode: plain|pretty|json|ndjson (default from config)")
	registerOutputCompletion(cmd)
	registerKindCompletion(cmd, "to")
	return cmd
}
