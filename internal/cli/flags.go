package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

var (
	outputModes = []string{"plain", "pretty", "json", "ndjson"}
	kindNames   = []string{"word", "excel", "ppt", "markdown", "text"}
)

func registerOutputCompletion(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return outputModes, cobra.ShellCompDirectiveNoFileComp
	})
}

func registerKindCompletion(cmd *cobra.Command, flags ...string) {
	for _, flag := range flags {
		_ = cmd.RegisterFlagCompletionFunc(flag, func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return kindNames, cobra.ShellCompDirectiveNoFileComp
		})
	}
}

// splitCSV splits a comma-separated list into trimmed non-empty strings.
func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
