package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/auroranest/markbridge/pkg/api"
)

// applyDefaults seeds Viper with defaults defined in GetConfigOptions.
// This centralizes default values and descriptions in one place.
func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration with precedence: defaults < file < env.
// The provided Viper instance is mutated with defaults, file contents, and env.
func Load(ctx context.Context, v *viper.Viper) error {
	// Configure Viper search paths. If SetConfigFile was provided upstream,
	// it takes precedence; these paths are harmless fallbacks.
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "markbridge"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "markbridge"))
		}
		v.AddConfigPath(".")
	}

	// Apply centralized defaults (lowest precedence)
	applyDefaults(v)

	// Read config file if present (overrides defaults). A missing file
	// is fine; a malformed one is not.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return err
		}
	}

	// Environment variables: MARKBRIDGE_* (highest among these sources)
	v.SetEnvPrefix("markbridge")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Normalize a few dependent values post-merge
	if strings.TrimSpace(v.GetString("output_dir")) == "" {
		v.Set("output_dir", ".")
	}
	if strings.TrimSpace(v.GetString("default_output")) == "" {
		v.Set("default_output", "plain")
	}
	if v.GetInt("preview.wrap") <= 0 {
		v.Set("preview.wrap", 80)
	}
	if strings.TrimSpace(v.GetString("slides.title_fallback")) == "" {
		v.Set("slides.title_fallback", "Slide %d")
	}
	if strings.TrimSpace(v.GetString("slides.default_title")) == "" {
		v.Set("slides.default_title", "Overview")
	}
	if v.GetInt("fetch.timeout_seconds") <= 0 {
		v.Set("fetch.timeout_seconds", 15)
	}
	if v.GetInt64("fetch.max_bytes") <= 0 {
		v.Set("fetch.max_bytes", int64(4194304))
	}
	return nil
}

// outputModes lists the names default_output accepts; the present
// package parses the same set.
var outputModes = map[string]bool{"plain": true, "pretty": true, "json": true, "ndjson": true}

// CheckConfigValidity reports every problem with the supplied config at
// once rather than stopping at the first. Keys that are not set are not
// checked, so it can run against a bare config file without defaults.
func CheckConfigValidity(v *viper.Viper) error {
	var problems []string

	if v.IsSet("output_dir") && strings.TrimSpace(v.GetString("output_dir")) == "" {
		problems = append(problems, "output_dir is required")
	}
	if v.IsSet("default_output") {
		if mode := v.GetString("default_output"); !outputModes[mode] {
			problems = append(problems, fmt.Sprintf("default_output %q is not one of plain|pretty|json|ndjson", mode))
		}
	}
	if v.IsSet("preview.wrap") && v.GetInt("preview.wrap") <= 0 {
		problems = append(problems, "preview.wrap must be greater than 0")
	}
	if v.IsSet("fetch.timeout_seconds") && v.GetInt("fetch.timeout_seconds") <= 0 {
		problems = append(problems, "fetch.timeout_seconds must be greater than 0")
	}
	if v.IsSet("fetch.max_bytes") && v.GetInt64("fetch.max_bytes") <= 0 {
		problems = append(problems, "fetch.max_bytes must be greater than 0")
	}
	if v.IsSet("slides.title_fallback") && strings.TrimSpace(v.GetString("slides.title_fallback")) == "" {
		problems = append(problems, "slides.title_fallback is required")
	}
	for name, val := range v.GetStringMap("channels") {
		k, err := api.ParseKind(name)
		if err != nil {
			problems = append(problems, fmt.Sprintf("channel %s is not a known kind", name))
			continue
		}
		switch k {
		case api.KindWord, api.KindExcel, api.KindPPT:
		default:
			problems = append(problems, fmt.Sprintf("channel %s does not take extension overrides", name))
			continue
		}
		m, ok := val.(map[string]any)
		if !ok {
			problems = append(problems, fmt.Sprintf("channel %s must be a table with an extensions list", name))
			continue
		}
		if len(extensionList(m["extensions"])) == 0 {
			problems = append(problems, fmt.Sprintf("channel %s has no usable extensions", name))
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("invalid configuration:\n  - %s", strings.Join(problems, "\n  - "))
}

// DefaultConfigPath resolves the standard config.toml location.
func DefaultConfigPath() string {
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		home, _ := os.UserHomeDir()
		xdg = filepath.Join(home, ".config")
	}
	return filepath.Join(xdg, "markbridge", "config.toml")
}

type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the default configuration options and their meanings.
// This is the single source of truth for default values and generator output.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		// Core output conventions
		{Key: "output_dir", Default: ".", Comment: "Directory where converted output is saved"},
		{Key: "default_output", Default: "plain", Comment: "Output mode when --output is not given (plain|pretty|json|ndjson)"},

		{Key: "preview.style", Default: "dracula", Comment: "Glamour style used for rendered markdown previews"},
		{Key: "preview.wrap", Default: 80, Comment: "Word-wrap column for rendered previews; values <= 0 reset to 80"},

		{Key: "slides.title_fallback", Default: "Slide %d", Comment: "Title for slides that start without one; %d expands to the slide number"},
		{Key: "slides.default_title", Default: "Overview", Comment: "Title of the opening slide when markdown begins without a heading"},

		{Key: "fetch.timeout_seconds", Default: 15, Comment: "HTTP timeout for --url fetches, in seconds"},
		{Key: "fetch.max_bytes", Default: 4194304, Comment: "Largest --url response body accepted, in bytes"},

		{Key: "channels", Default: map[string]any{}, Comment: "Per-kind extension overrides: [channels.<kind>] extensions = [\"doc\", \"docx\"]"},

		{Key: "editor.keep_temp", Default: false, Comment: "Keep the temp file after convert --edit instead of deleting it"},
	}
}

// ChannelExtensions reads per-kind extension overrides from the channels
// map. Entries with unknown kind names or empty extension lists are
// skipped; extensions are lowercased with any leading dot stripped.
func ChannelExtensions(v *viper.Viper) map[api.Kind][]string {
	raw := v.GetStringMap("channels")
	if len(raw) == 0 {
		return nil
	}
	out := make(map[api.Kind][]string, len(raw))
	for name, val := range raw {
		k, err := api.ParseKind(name)
		if err != nil {
			continue
		}
		m, ok := val.(map[string]any)
		if !ok {
			continue
		}
		exts := extensionList(m["extensions"])
		if len(exts) == 0 {
			continue
		}
		out[k] = exts
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func extensionList(val any) []string {
	var items []string
	switch vs := val.(type) {
	case []string:
		items = vs
	case []any:
		for _, it := range vs {
			if s, ok := it.(string); ok {
				items = append(items, s)
			}
		}
	default:
		return nil
	}
	out := make([]string, 0, len(items))
	for _, s := range items {
		s = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
