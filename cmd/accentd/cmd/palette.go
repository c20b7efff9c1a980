package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/accentd/internal/models"
	"github.com/jmylchreest/accentd/internal/service"
	"github.com/jmylchreest/accentd/pkg/accent"
)

var (
	paletteFormat   string
	paletteNight    bool
	paletteSelector string
)

var paletteCmd = &cobra.Command{
	Use:   "palette <color>",
	Short: "Derive the palette for an accent color",
	Long: `Derive the full palette for a #rgb or #rrggbb accent and print it.

  accentd palette '#2271b1'
  accentd palette e11d48 --night --format yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPalette,
}

func init() {
	paletteCmd.Flags().StringVarP(&paletteFormat, "format", "f", "css", "output format (css, json, yaml)")
	paletteCmd.Flags().BoolVar(&paletteNight, "night", false, "include the night palette")
	paletteCmd.Flags().StringVar(&paletteSelector, "selector", ":root", "CSS selector for css output")
	rootCmd.AddCommand(paletteCmd)
}

// paletteOutput is the structured form of the palette command.
type paletteOutput struct {
	models.PaletteReport `yaml:",inline"`
	Night                *models.NightReport `json:"night,omitempty" yaml:"night,omitempty"`
}

func runPalette(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	accents, err := service.NewAccentService(nil, cfg.Accent)
	if err != nil {
		return err
	}

	report, err := accents.Palette(args[0])
	if err != nil {
		return fmt.Errorf("deriving palette for %q: %w", args[0], err)
	}

	out := paletteOutput{PaletteReport: *report}
	if paletteNight {
		out.Night = accents.Night()
	}
	return writePalette(cmd.OutOrStdout(), paletteFormat, out)
}

func writePalette(w io.Writer, format string, out paletteOutput) error {
	switch format {
	case "css":
		vs := append(accent.VariableSet{}, out.Variables...)
		if out.Night != nil {
			vs = append(vs, out.Night.Variables...)
		}
		_, err := io.WriteString(w, vs.CSS(paletteSelector))
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (expected css, json or yaml)", format)
	}
}
