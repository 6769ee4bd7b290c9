package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootOverrides maps root-level flags to the config keys they mirror.
var rootOverrides = map[string]string{
	"output-dir": "output_dir",
	"style":      "preview.style",
	"wrap":       "preview.wrap",
}

// applyConfigFlagOverrides lets explicitly set root flags win over file
// and environment values for the config keys they mirror.
func applyConfigFlagOverrides(cmd *cobra.Command, v *viper.Viper, mapping map[string]string) {
	flags := cmd.Root().PersistentFlags()
	for flagName, key := range mapping {
		flag := flags.Lookup(flagName)
		if flag == nil || !flag.Changed {
			continue
		}
		switch flag.Value.Type() {
		case "bool":
			if val, err := flags.GetBool(flagName); err == nil {
				v.Set(key, val)
			}
		case "int":
			if val, err := flags.GetInt(flagName); err == nil {
				v.Set(key, val)
			}
		default:
			if val, err := flags.GetString(flagName); err == nil {
				v.Set(key, val)
			}
		}
	}
}
