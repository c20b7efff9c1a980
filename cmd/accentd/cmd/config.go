package cmd

import (
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/accentd/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management commands",
}

var configDumpDefaults bool

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Dump the effective configuration as YAML",
	Long: `Dump the configuration in YAML format.

By default this is the effective configuration after merging defaults, the
config file and ACCENTD_* environment variables. With --defaults only the
built-in values are shown, which makes a starting template:

  accentd config dump --defaults > config.yaml

Environment variables use the ACCENTD_ prefix and underscores for nesting.
Example: accent.native_accent -> ACCENTD_ACCENT_NATIVE_ACCENT`,
	RunE: runConfigDump,
}

func init() {
	configDumpCmd.Flags().BoolVar(&configDumpDefaults, "defaults", false, "show built-in defaults only")
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configDumpCmd)
}

// toMap converts a config struct to a map keyed by mapstructure tags, with
// durations in their human form.
func toMap(v any) map[string]any {
	result := make(map[string]any)
	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		key := typ.Field(i).Tag.Get("mapstructure")
		if key == "" {
			key = typ.Field(i).Name
		}

		switch fv := field.Interface().(type) {
		case time.Duration:
			result[key] = fv.String()
		default:
			if field.Kind() == reflect.Struct {
				result[key] = toMap(fv)
			} else {
				result[key] = fv
			}
		}
	}
	return result
}

func runConfigDump(cmd *cobra.Command, _ []string) error {
	v := viper.GetViper()
	if configDumpDefaults {
		v = viper.New()
		config.SetDefaults(v)
	}

	cfg, err := config.FromViper(v)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	data, err := yaml.Marshal(toMap(cfg))
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "# accentd configuration")
	fmt.Fprintln(out, "#")
	fmt.Fprintln(out, "# Duration format: 30s, 5m, 1h")
	fmt.Fprintln(out, "# Environment overrides: ACCENTD_SERVER_PORT, ACCENTD_DATABASE_DSN,")
	fmt.Fprintln(out, "#   ACCENTD_ACCENT_NATIVE_ACCENT, ACCENTD_LOGGING_LEVEL, ...")
	fmt.Fprintln(out)
	_, err = out.Write(data)
	return err
}
