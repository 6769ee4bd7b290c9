package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/auroranest/markbridge/internal/config"
	"github.com/auroranest/markbridge/internal/wire"
)

type ctxKey string

const appKey ctxKey = "app"

// Execute builds the root command and runs it.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the Cobra root command and wires dependencies.
func NewRootCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:           "markbridge",
		Short:         "Convert Office-style plain text to and from Markdown",
		SilenceUsage:  true, // don't show usage on runtime errors
		SilenceErrors: true, // let main print errors once
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load config with Viper.
			v := viper.New()
			if cfgPath != "" {
				v.SetConfigFile(cfgPath)
			}
			if err := config.Load(cmd.Context(), v); err != nil {
				return err
			}
			applyConfigFlagOverrides(cmd, v, rootOverrides)
			// Wire up the app and stash it in context for subcommands.
			app, err := wire.BuildApp(cmd.Context(), v)
			if err != nil {
				return err
			}
			ctx := context.WithValue(cmd.Context(), appKey, app)
			cmd.SetContext(ctx)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (toml)")
	cmd.PersistentFlags().String("output-dir", "", "directory for saved results (overrides output_dir)")
	cmd.PersistentFlags().String("style", "", "glamour style for pretty output (overrides preview.style)")
	cmd.PersistentFlags().Int("wrap", 0, "wrap width for pretty output (overrides preview.wrap)")

	cmd.AddCommand(newConvertCmd())
	cmd.AddCommand(newDetectCmd())
	cmd.AddCommand(newPreviewCmd())
	cmd.AddCommand(newSampleCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newCompletionCmd())

	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }

	return cmd
}

func getApp(cmd *cobra.Command) *wire.App {
	v := cmd.Context().Value(appKey)
	if v == nil {
		fmt.Fprintln(os.Stderr, "internal error: app not initialized")
		os.Exit(1)
	}
	return v.(*wire.App)
}
