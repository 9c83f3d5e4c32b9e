package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/spf13/cobra"

	"github.com/san-kum/gvolsim/internal/config"
	"github.com/san-kum/gvolsim/internal/engine"
	"github.com/san-kum/gvolsim/internal/gvol"
	"github.com/san-kum/gvolsim/internal/storage"
	"github.com/san-kum/gvolsim/internal/tui"
	"github.com/san-kum/gvolsim/internal/viz"
)

const presetPrefix = "preset:"

var (
	dataDir   string
	verbosity int
	field     string
	height    int
	index     int
	radius    float64
	gamma     float64
	name      string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "gvolsim",
		Short:        "GVol implicit solvent force configuration",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".gvolsim", "snapshot directory")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "log verbosity (repeat for more)")

	showCmd := &cobra.Command{
		Use:   "show [config]",
		Short: "print particle parameters and nonbonded settings",
		Args:  cobra.ExactArgs(1),
		RunE:  showForce,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [config]",
		Short: "plot a per-particle parameter",
		Args:  cobra.ExactArgs(1),
		RunE:  plotForce,
	}
	plotCmd.Flags().StringVar(&field, "field", "radius", "parameter to plot (radius|gamma)")
	plotCmd.Flags().IntVar(&height, "height", 10, "plot height in rows")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in systems",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s%s\n", presetPrefix, p)
			}
			return nil
		},
	}

	saveCmd := &cobra.Command{
		Use:   "save [config]",
		Short: "store a snapshot of a force",
		Args:  cobra.ExactArgs(1),
		RunE:  saveForce,
	}
	saveCmd.Flags().StringVar(&name, "name", "", "snapshot name (defaults to config name)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored snapshots",
		RunE:  listSnapshots,
	}

	loadCmd := &cobra.Command{
		Use:   "load [id]",
		Short: "print a stored snapshot",
		Args:  cobra.ExactArgs(1),
		RunE:  loadSnapshot,
	}

	updateCmd := &cobra.Command{
		Use:   "update [config]",
		Short: "build an instance, change one particle and push the change",
		Args:  cobra.ExactArgs(1),
		RunE:  updateParticle,
	}
	updateCmd.Flags().IntVar(&index, "index", 0, "particle index")
	updateCmd.Flags().Float64Var(&radius, "radius", 0, "new radius in nm (defaults to current)")
	updateCmd.Flags().Float64Var(&gamma, "gamma", 0, "new gamma in kJ/mol/nm^2 (defaults to current)")

	editCmd := &cobra.Command{
		Use:   "edit [config]",
		Short: "interactive parameter editor",
		Args:  cobra.ExactArgs(1),
		RunE:  editForce,
	}

	rootCmd.AddCommand(showCmd, plotCmd, presetsCmd, saveCmd, listCmd, loadCmd, updateCmd, editCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintf(os.Stderr, "%s: %s\n", prefix, args)
			return
		}
		fmt.Fprintln(os.Stderr, args)
	}, funcr.Options{Verbosity: verbosity})
}

// loadConfig resolves a file path or "preset:<name>".
func loadConfig(arg string) (*config.Config, error) {
	if strings.HasPrefix(arg, presetPrefix) {
		p := strings.TrimPrefix(arg, presetPrefix)
		cfg := config.GetPreset(p)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", p, config.ListPresets())
		}
		return cfg, nil
	}
	cfg, err := config.Load(arg)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func loadForce(arg string) (*config.Config, *gvol.Force, error) {
	cfg, err := loadConfig(arg)
	if err != nil {
		return nil, nil, err
	}
	f, err := cfg.Force()
	if err != nil {
		return nil, nil, err
	}
	return cfg, f, nil
}

func buildInstance(cfg *config.Config, f *gvol.Force) (*engine.Instance, error) {
	ctx, err := cfg.Context(engine.WithLogger(newLogger().WithName("engine")))
	if err != nil {
		return nil, err
	}
	built, err := f.CreateImpl(ctx)
	if err != nil {
		return nil, err
	}
	inst, ok := built.(*engine.Instance)
	if !ok {
		return nil, fmt.Errorf("unexpected instance type %T", built)
	}
	return inst, nil
}

func showForce(cmd *cobra.Command, args []string) error {
	cfg, f, err := loadForce(args[0])
	if err != nil {
		return err
	}
	fmt.Println(viz.Summary(cfg.Name, f))
	fmt.Println()
	fmt.Print(viz.ParticleTable(f))
	return nil
}

func plotForce(cmd *cobra.Command, args []string) error {
	fld, err := viz.ParseField(field)
	if err != nil {
		return err
	}
	_, f, err := loadForce(args[0])
	if err != nil {
		return err
	}
	fmt.Println(viz.ParameterPlot(f, fld, height))
	return nil
}

func saveForce(cmd *cobra.Command, args []string) error {
	cfg, f, err := loadForce(args[0])
	if err != nil {
		return err
	}
	if name == "" {
		name = cfg.Name
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(name, f)
	if err != nil {
		return err
	}
	newLogger().V(1).Info("saved snapshot", "id", runID, "particles", f.NumParticles())
	fmt.Printf("snapshot id: %s\n", runID)
	return nil
}

func listSnapshots(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no snapshots")
		return nil
	}
	for _, r := range runs {
		fmt.Printf("%-32s %-18s %4d particles  %s\n",
			r.ID, r.MethodName, r.NumParticles, r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func loadSnapshot(cmd *cobra.Command, args []string) error {
	f, meta, err := storage.New(dataDir).Load(args[0])
	if err != nil {
		return err
	}
	fmt.Println(viz.Summary(meta.Name, f))
	fmt.Println()
	fmt.Print(viz.ParticleTable(f))
	return nil
}

func updateParticle(cmd *cobra.Command, args []string) error {
	cfg, f, err := loadForce(args[0])
	if err != nil {
		return err
	}
	inst, err := buildInstance(cfg, f)
	if err != nil {
		return err
	}

	r, g, h, err := f.ParticleParameters(index)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("radius") {
		r = radius
	}
	if cmd.Flags().Changed("gamma") {
		g = gamma
	}

	before, beforeG, _ := inst.Parameters(index)
	if err := f.SetParticleParameters(index, r, g, h); err != nil {
		return err
	}
	if err := f.UpdateParametersInContext(inst); err != nil {
		return err
	}
	after, afterG, _ := inst.Parameters(index)

	fmt.Printf("particle %d\n", index)
	fmt.Printf("  before: radius=%s gamma=%s\n", viz.FormatFloat(before), viz.FormatFloat(beforeG))
	fmt.Printf("  after:  radius=%s gamma=%s\n", viz.FormatFloat(after), viz.FormatFloat(afterG))
	fmt.Printf("  revision: %d\n", inst.Revision())
	return nil
}

func editForce(cmd *cobra.Command, args []string) error {
	cfg, f, err := loadForce(args[0])
	if err != nil {
		return err
	}
	inst, err := buildInstance(cfg, f)
	if err != nil {
		return err
	}
	return tui.RunEditor(cfg.Name, f, inst)
}
