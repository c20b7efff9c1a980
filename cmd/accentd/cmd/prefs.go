package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/accentd/internal/database"
	"github.com/jmylchreest/accentd/internal/models"
	"github.com/jmylchreest/accentd/internal/repository"
	"github.com/jmylchreest/accentd/internal/service"
)

const tablePadding = 2

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Inspect and maintain stored preferences",
}

var (
	prefsListOffset int
	prefsListLimit  int
	prefsListFormat string
)

var prefsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored preferences",
	RunE:  runPrefsList,
}

var prefsPurgeYes bool

var prefsPurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete every stored preference",
	Long: `Delete every stored preference. Users fall back to the default preset
until they save again. Requires --yes.`,
	RunE: runPrefsPurge,
}

func init() {
	prefsListCmd.Flags().IntVar(&prefsListOffset, "offset", 0, "rows to skip")
	prefsListCmd.Flags().IntVar(&prefsListLimit, "limit", 50, "maximum rows (0 for all)")
	prefsListCmd.Flags().StringVarP(&prefsListFormat, "format", "f", "table", "output format (table, json)")
	prefsPurgeCmd.Flags().BoolVar(&prefsPurgeYes, "yes", false, "confirm deletion")

	prefsCmd.AddCommand(prefsListCmd, prefsPurgeCmd)
	rootCmd.AddCommand(prefsCmd)
}

// openPreferences connects to the configured store and brings the schema up
// to date.
func openPreferences(ctx context.Context) (*database.DB, *service.PreferenceService, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	db, err := database.New(cfg.Database, slog.Default(), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing database: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	prefs := service.NewPreferenceService(repository.NewPreferenceRepository(db.DB)).
		WithLogger(slog.Default()).
		WithDefaultPreset(cfg.Accent.DefaultPreset)
	return db, prefs, nil
}

func runPrefsList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	db, prefs, err := openPreferences(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	rows, total, err := prefs.List(ctx, prefsListOffset, prefsListLimit)
	if err != nil {
		return err
	}

	switch prefsListFormat {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Preferences []*models.UserPreference `json:"preferences"`
			Total       int64                    `json:"total"`
		}{rows, total})
	case "table":
		return writePrefsTable(cmd.OutOrStdout(), rows, total)
	default:
		return fmt.Errorf("unknown format %q (expected table or json)", prefsListFormat)
	}
}

func writePrefsTable(out io.Writer, rows []*models.UserPreference, total int64) error {
	w := tabwriter.NewWriter(out, 0, 0, tablePadding, ' ', 0)
	fmt.Fprintln(w, strings.Join([]string{"USER", "PRESET", "CUSTOM", "RESOLVED", "NIGHT", "UPDATED"}, "\t"))
	for _, p := range rows {
		resolved := "(host)"
		if c, ok := p.Snapshot().ResolveAccent(); ok {
			resolved = string(c)
		}
		custom := p.CustomAccent
		if custom == "" {
			custom = "-"
		}
		fmt.Fprintln(w, strings.Join([]string{
			p.UserID,
			p.PresetKey,
			custom,
			resolved,
			strconv.FormatBool(p.NightMode),
			p.UpdatedAt.UTC().Format(time.RFC3339),
		}, "\t"))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "\n%d of %d preferences\n", len(rows), total)
	return err
}

func runPrefsPurge(cmd *cobra.Command, _ []string) error {
	if !prefsPurgeYes {
		return fmt.Errorf("refusing to delete every preference without --yes")
	}

	ctx := cmd.Context()
	db, prefs, err := openPreferences(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	removed, err := prefs.Purge(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "removed %d preferences\n", removed)
	return nil
}
