package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/san-kum/dynsets/internal/catalog"
	"github.com/san-kum/dynsets/internal/config"
	"github.com/san-kum/dynsets/internal/logging"
	"github.com/san-kum/dynsets/internal/noise"
	"github.com/san-kum/dynsets/internal/viz"
	"github.com/spf13/cobra"
)

var (
	mode       string
	seed       int64
	horizon    int
	params     []float64
	configFile string
	preset     string
)

func main() {
	logging.Init("dynsets")

	rootCmd := &cobra.Command{
		Use:           "dynsets",
		Short:         "uncertainty-annotated system fixtures for reachability",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list catalog systems",
		RunE:  listSystems,
	}

	showCmd := &cobra.Command{
		Use:   "show [system]",
		Short: "build a fixture and print its model and sets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showSystem,
	}
	addFixtureFlags(showCmd)

	liftCmd := &cobra.Command{
		Use:   "lift [system]",
		Short: "lift the noise set of a fixture over a trajectory",
		Args:  cobra.MaximumNArgs(1),
		RunE:  liftSystem,
	}
	addFixtureFlags(liftCmd)
	liftCmd.Flags().IntVar(&horizon, "horizon", config.DefaultHorizon, "trajectory length")

	presetsCmd := &cobra.Command{
		Use:   "presets [system]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	rootCmd.AddCommand(listCmd, showCmd, liftCmd, presetsCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func addFixtureFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&mode, "mode", config.DefaultMode, "uncertainty mode (standard, diag, rand)")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed for diag and rand")
	cmd.Flags().Float64SliceVar(&params, "params", nil, "ground-truth parameter override")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig merges preset, config file and flags, in increasing
// precedence.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if len(args) > 0 {
		cfg.System = args[0]
	}

	if preset != "" {
		p := config.GetPreset(cfg.System, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(cfg.System))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		if len(args) > 0 {
			cfg.System = args[0]
		}
	}

	flags := cmd.Flags()
	fromFile := preset != "" || configFile != ""
	if flags.Changed("mode") || !fromFile {
		cfg.Mode = mode
	}
	// a preset or config file seed, zero included, wins over the clock default
	if flags.Changed("seed") || !fromFile {
		cfg.Seed = seed
	}
	if flags.Changed("params") {
		cfg.Params = params
	}
	if flags.Lookup("horizon") != nil && (flags.Changed("horizon") || !fromFile) {
		cfg.Horizon = horizon
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFixture(cmd *cobra.Command, args []string) (*config.Config, *catalog.Fixture, error) {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return nil, nil, err
	}
	log.Debug().Str("system", cfg.System).Str("mode", cfg.Mode).Int64("seed", cfg.Seed).Msg("loading fixture")
	f, err := catalog.Load(catalog.ID(cfg.System), cfg.LoadOptions()...)
	if err != nil {
		return nil, nil, err
	}
	return cfg, f, nil
}

func listSystems(cmd *cobra.Command, args []string) error {
	registry := catalog.Default()
	ids := registry.IDs()

	fixtures, err := registry.LoadAll(cmd.Context(), ids, 0)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tDT\tSTATE\tINPUT\tNOISE\tMODES")
	for _, f := range fixtures {
		modes, _ := registry.Modes(f.ID)
		names := make([]string, len(modes))
		for i, m := range modes {
			names[i] = string(m)
		}
		noiseKind := "U"
		if f.Spec.Decomposed() {
			noiseKind = "W×V"
		}
		fmt.Fprintf(w, "%s\t%s\t%g\t%d\t%d\t%s\t%s\n",
			f.ID,
			f.Model.Kind(),
			f.Model.Dt(),
			f.Model.StateDim(),
			f.Model.InputDim(),
			noiseKind,
			strings.Join(names, ","),
		)
	}
	return w.Flush()
}

func showSystem(cmd *cobra.Command, args []string) error {
	_, f, err := loadFixture(cmd, args)
	if err != nil {
		return err
	}
	fmt.Println(viz.Fixture(f))
	return nil
}

func liftSystem(cmd *cobra.Command, args []string) error {
	cfg, f, err := loadFixture(cmd, args)
	if err != nil {
		return err
	}

	name, w := "U", f.Spec.U
	if f.Spec.Decomposed() {
		name, w = "W", f.Spec.W
	}
	lifted, err := noise.Lift(w, cfg.Horizon)
	if err != nil {
		return err
	}

	fmt.Println(viz.Zonotope(name, w))
	fmt.Println(viz.Lifted(fmt.Sprintf("%s over %d steps", name, cfg.Horizon), lifted))
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	systems := config.Systems()
	if len(args) > 0 {
		systems = []string{args[0]}
	}
	for _, s := range systems {
		presets := config.ListPresets(s)
		if len(presets) == 0 {
			fmt.Printf("no presets for system: %s\n", s)
			continue
		}
		fmt.Println(viz.Title.Render(s))
		for _, p := range presets {
			cfg := config.GetPreset(s, p)
			fmt.Printf("  %-10s %s\n", p, viz.Subtle.Render(fmt.Sprintf("mode=%s horizon=%d", cfg.Mode, cfg.Horizon)))
		}
	}
	return nil
}
