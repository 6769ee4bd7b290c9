package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/auroranest/markbridge/internal/config"
	"github.com/auroranest/markbridge/pkg/api"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigCheckCmd())
	cmd.AddCommand(newConfigChannelCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			out := cmd.OutOrStdout()
			for _, o := range config.GetConfigOptions() {
				if o.Key == "channels" {
					continue
				}
				_, _ = fmt.Fprintf(out, "%s = %v\n", o.Key, app.Cfg.Get(o.Key))
			}
			chans := config.ChannelExtensions(app.Cfg)
			kinds := make([]string, 0, len(chans))
			for k := range chans {
				kinds = append(kinds, k.String())
			}
			sort.Strings(kinds)
			for _, k := range kinds {
				_, _ = fmt.Fprintf(out, "channels.%s.extensions = %v\n", k, chans[api.Kind(k)])
			}
			return nil
		},
	}
}

func newConfigInitCmd() *cobra.Command {
	var out string
	var overwrite bool
	var update bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config.toml",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = config.DefaultConfigPath()
			}
			if overwrite && update {
				return fmt.Errorf("choose either --overwrite or --update")
			}
			return writeConfigFile(cmd, out, overwrite, update)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output path for config.toml")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "overwrite existing config (creates a backup)")
	cmd.Flags().BoolVar(&update, "update", false, "merge defaults into existing config (creates a backup)")
	return cmd
}

func newConfigCheckCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := file
			if path == "" {
				path = config.DefaultConfigPath()
			}
			v := viper.New()
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return err
			}
			if err := config.CheckConfigValidity(v); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: OK\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "config file to check (defaults to the standard path)")
	return cmd
}

func newConfigChannelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "channel",
		Short: "Manage per-channel extension overrides",
	}
	cmd.AddCommand(newConfigChannelSetCmd())
	cmd.AddCommand(newConfigChannelUnsetCmd())
	return cmd
}

func officeKind(name string) (api.Kind, error) {
	k, err := api.ParseKind(name)
	if err != nil {
		return api.KindUnknown, err
	}
	for _, ch := range api.Channels() {
		if ch == k {
			return k, nil
		}
	}
	return api.KindUnknown, fmt.Errorf("channel %s does not take extension overrides (want word|excel|ppt)", k)
}

func newConfigChannelSetCmd() *cobra.Command {
	var file, extensions string
	cmd := &cobra.Command{
		Use:   "set <kind>",
		Short: "Set the extension list for a channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := officeKind(args[0])
			if err != nil {
				return err
			}
			exts := splitCSV(extensions)
			if len(exts) == 0 {
				return fmt.Errorf("--extensions needs at least one entry")
			}

			path := file
			if path == "" {
				path = config.DefaultConfigPath()
			}
			content, exists, err := readConfigContent(path)
			if err != nil {
				return err
			}
			updated, changed := config.UpsertChannelConfig(content, k.String(), map[string]any{"extensions": exts})
			if !changed {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Config already up to date: %s\n", path)
				return nil
			}
			return commitConfigFile(cmd, path, updated, exists)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "config file to edit (defaults to the standard path)")
	cmd.Flags().StringVar(&extensions, "extensions", "", "comma-separated extension list, e.g. rtf,docm")
	return cmd
}

func newConfigChannelUnsetCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "unset <kind>",
		Short: "Remove a channel's extension override",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := officeKind(args[0])
			if err != nil {
				return err
			}
			path := file
			if path == "" {
				path = config.DefaultConfigPath()
			}
			content, exists, err := readConfigContent(path)
			if err != nil {
				return err
			}
			if !exists {
				return fmt.Errorf("no config file at %s", path)
			}
			updated, changed := config.DeleteChannelConfig(content, k.String())
			if !changed {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No override for channel %s in %s\n", k, path)
				return nil
			}
			return commitConfigFile(cmd, path, updated, exists)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "config file to edit (defaults to the standard path)")
	return cmd
}

// readConfigContent loads the config file, seeding channel edits on a
// fresh default rendering when no file exists yet.
func readConfigContent(path string) (content string, exists bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config.RenderDefaultTOML(), false, nil
		}
		return "", false, err
	}
	return string(data), true, nil
}

func commitConfigFile(cmd *cobra.Command, path, content string, backup bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	var backupPath string
	if backup {
		var err error
		backupPath, err = backupConfig(path)
		if err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	if backupPath != "" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Backup: %s\n", backupPath)
	}
	return nil
}

func writeConfigFile(cmd *cobra.Command, out string, overwrite, update bool) error {
	exists := fileExists(out)
	if exists && !overwrite && !update {
		return fmt.Errorf("config already exists at %s; use --overwrite to replace (this will delete your current config) or --update to merge defaults", out)
	}

	content := ""
	if update && exists {
		data, err := os.ReadFile(out)
		if err != nil {
			return err
		}
		updated, changed := config.UpdateTOML(string(data))
		if !changed {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Config already up to date: %s\n", out)
			return nil
		}
		content = updated
	} else {
		content = config.RenderDefaultTOML()
	}

	return commitConfigFile(cmd, out, content, exists)
}

func backupConfig(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	backup := path + ".bak"
	if fileExists(backup) {
		backup = fmt.Sprintf("%s.bak-%s", path, time.Now().Format("20060102-150405"))
	}
	if err := os.WriteFile(backup, data, 0o600); err != nil {
		return "", err
	}
	return backup, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
