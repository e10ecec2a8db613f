package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/springcam/internal/analysis"
	"github.com/san-kum/springcam/internal/canvas"
	"github.com/san-kum/springcam/internal/config"
	"github.com/san-kum/springcam/internal/export"
	"github.com/san-kum/springcam/internal/metrics"
	"github.com/san-kum/springcam/internal/preset"
	"github.com/san-kum/springcam/internal/settings"
	"github.com/san-kum/springcam/internal/spring"
	"github.com/san-kum/springcam/internal/trajectory"
	"github.com/san-kum/springcam/internal/viz"
)

var (
	configFile string
	verbose    bool
	target     string
	style      string
	mass       float64
	tension    float64
	friction   float64
	duration   float64
	from       float64
	to         float64
	fps        int
	substeps   int
	screen     string
	ratio      string
	save       bool
	format     string
)

var errUnknownTarget = errors.New("unknown target (want cursor or zoom)")

func main() {
	rootCmd := &cobra.Command{
		Use:           "springcam",
		Short:         "spring animation settings for screen recordings",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runEditor,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")

	editCmd := &cobra.Command{
		Use:   "edit",
		Short: "interactive animation editor",
		RunE:  runEditor,
	}
	editCmd.Flags().BoolVar(&save, "save", false, "write the edited settings back to --config on exit")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list spring and curve presets",
		RunE:  listPresets,
	}

	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "write a sampled transition as CSV, SVG or JSON",
		RunE:  sampleTransition,
	}
	addAnimationFlags(sampleCmd)
	sampleCmd.Flags().StringVar(&format, "format", "csv", "output format (csv, svg, json)")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot a transition in the terminal",
		RunE:  plotTransition,
	}
	addAnimationFlags(plotCmd)

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "damping, overshoot and settling of a transition",
		RunE:  analyzeTransition,
	}
	addAnimationFlags(analyzeCmd)

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "compare closed form, frame-stepped and integrated springs",
		RunE:  compareSolvers,
	}
	addAnimationFlags(compareCmd)
	compareCmd.Flags().IntVar(&substeps, "substeps", 8, "rk4 steps per frame")

	canvasCmd := newCanvasCmd()

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "config file helpers",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default settings to a config file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(editCmd, presetsCmd, sampleCmd, plotCmd, analyzeCmd, compareCmd, canvasCmd, configCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addAnimationFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&target, "target", "cursor", "animation to use (cursor, zoom)")
	cmd.Flags().StringVar(&style, "preset", "", "spring preset (default, gentle, wobbly, stiff, slow)")
	cmd.Flags().Float64Var(&mass, "mass", 1, "spring mass")
	cmd.Flags().Float64Var(&tension, "tension", 170, "spring tension")
	cmd.Flags().Float64Var(&friction, "friction", 26, "spring friction")
	cmd.Flags().Float64Var(&duration, "duration", settings.DefaultTransitionDuration, "transition duration (s)")
	cmd.Flags().Float64Var(&from, "from", config.DefaultPreviewFrom, "start value")
	cmd.Flags().Float64Var(&to, "to", config.DefaultPreviewTo, "end value")
	cmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadStore builds a store from the defaults and, if given, the config file.
func loadStore() (*settings.Store, *config.Config, error) {
	store := settings.NewStore(settings.WithLogger(newLogger()))
	cfg := config.DefaultConfig()
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Apply(store); err != nil {
			return nil, nil, fmt.Errorf("invalid config %s: %w", configFile, err)
		}
	}
	return store, cfg, nil
}

// resolveAnimation applies the command line on top of the configured
// animation. Only flags the user set take part, so --tension alone turns
// the animation custom while --preset wobbly --tension 300 keeps the
// wobbly label.
func resolveAnimation(cmd *cobra.Command) (settings.Animation, error) {
	store, cfg, err := loadStore()
	if err != nil {
		return settings.Animation{}, err
	}

	var u settings.AnimationUpdate
	if cmd.Flags().Changed("preset") {
		s, err := preset.ParseStyle(style)
		if err != nil {
			return settings.Animation{}, err
		}
		u.Style = &s
	}
	if cmd.Flags().Changed("mass") {
		u.Mass = settings.Float(mass)
	}
	if cmd.Flags().Changed("tension") {
		u.Tension = settings.Float(tension)
	}
	if cmd.Flags().Changed("friction") {
		u.Friction = settings.Float(friction)
	}
	if cmd.Flags().Changed("duration") {
		u.TransitionDuration = settings.Float(duration)
	}
	if !cmd.Flags().Changed("from") {
		from = cfg.Preview.From
	}
	if !cmd.Flags().Changed("to") {
		to = cfg.Preview.To
	}
	if !cmd.Flags().Changed("fps") && cfg.Preview.FPS > 0 {
		fps = cfg.Preview.FPS
	}

	var a settings.Animation
	switch target {
	case "cursor":
		a = store.UpdateCursorAnimation(u)
	case "zoom":
		a = store.UpdateZoomAnimation(u)
	default:
		return settings.Animation{}, fmt.Errorf("%w: %q", errUnknownTarget, target)
	}
	if err := a.Config.Validate(); err != nil {
		return settings.Animation{}, err
	}
	if fps <= 0 {
		return settings.Animation{}, fmt.Errorf("fps must be positive, got %d", fps)
	}
	return a, nil
}

func runEditor(cmd *cobra.Command, args []string) error {
	store, cfg, err := loadStore()
	if err != nil {
		return err
	}
	preview := viz.PreviewOptions{FPS: cfg.Preview.FPS, From: cfg.Preview.From, To: cfg.Preview.To}
	if err := viz.RunEditor(store, preview); err != nil {
		return err
	}

	if !save {
		return nil
	}
	if configFile == "" {
		return errors.New("--save needs --config")
	}
	out := config.FromSettings(store.Snapshot())
	out.Canvas = cfg.Canvas
	out.Preview = cfg.Preview
	if err := config.Save(configFile, out); err != nil {
		return err
	}
	fmt.Printf("saved %s\n", configFile)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STYLE\tMASS\tTENSION\tFRICTION\tREGIME\tSHAPE")
	for _, s := range preset.SpringStyles() {
		p, _ := preset.Spring(s)
		cfg := p.Apply(spring.Config{TransitionDuration: settings.DefaultTransitionDuration})
		tr := trajectory.SampleFPS(cfg, 0, 1, 30)
		fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%s\t%s\n", s, p.Mass, p.Tension, p.Friction, cfg.Regime(), viz.Sparkline(tr.Values, 24))
	}
	w.Flush()

	fmt.Println()
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CURVE\tNAME\tSHAPE")
	for _, id := range preset.CurveIDs() {
		c, _ := preset.Curve(id)
		tr := trajectory.Sample(spring.Easing(c.Easing), 1, 30)
		fmt.Fprintf(w, "%s\t%s\t%s\n", id, c.Name, viz.Sparkline(tr.Values, 24))
	}
	return w.Flush()
}

func sampleTransition(cmd *cobra.Command, args []string) error {
	a, err := resolveAnimation(cmd)
	if err != nil {
		return err
	}
	tr := trajectory.SampleFPS(a.Config, from, to, fps)
	switch format {
	case "csv":
		return export.CSV(os.Stdout, tr)
	case "svg":
		return export.SVG(os.Stdout, tr, export.DefaultSVGOptions(to))
	case "json":
		m := metrics.Collect(tr, metrics.Standard(from, to)...)
		return export.JSON(os.Stdout, export.NewReport(a, from, to, fps, tr, m))
	default:
		return fmt.Errorf("unknown format %q (want csv, svg or json)", format)
	}
}

func plotTransition(cmd *cobra.Command, args []string) error {
	a, err := resolveAnimation(cmd)
	if err != nil {
		return err
	}
	tr := trajectory.SampleFPS(a.Config, from, to, fps)
	graph := asciigraph.Plot(tr.Values,
		asciigraph.Height(15),
		asciigraph.Width(70),
		asciigraph.Caption(fmt.Sprintf("%s %s (%s), %.2fs @ %d fps", target, a.Style, a.Config.Regime(), a.TransitionDuration, fps)),
	)
	fmt.Println(graph)
	return nil
}

func analyzeTransition(cmd *cobra.Command, args []string) error {
	a, err := resolveAnimation(cmd)
	if err != nil {
		return err
	}
	cfg := a.Config
	tr := trajectory.SampleFPS(cfg, from, to, fps)
	m := metrics.Collect(tr, metrics.Standard(from, to)...)

	fmt.Printf("style:           %s\n", a.Style.DisplayName())
	fmt.Printf("regime:          %s\n", cfg.Regime())
	fmt.Printf("natural freq:    %.4f rad/s\n", cfg.NaturalFrequency())
	fmt.Printf("damping ratio:   %.4f\n", cfg.DampingRatio())
	if wd := cfg.DampedFrequency(); wd > 0 {
		fmt.Printf("damped freq:     %.4f Hz\n", wd/(2*math.Pi))
	}
	fmt.Printf("overshoot:       %.2f%%\n", 100*m["overshoot"])
	if st := m["settling_time"]; math.IsInf(st, 1) {
		fmt.Printf("settling time:   not within %.0f%%\n", 100*metrics.DefaultSettlingTolerance)
	} else {
		fmt.Printf("settling time:   %.3fs\n", st)
	}
	fmt.Printf("max frame step:  %.4f\n", m["max_step"])

	if tr.Len() >= 4 {
		sampleRate := float64(tr.Len()-1) / cfg.TransitionDuration
		if f, err := analysis.DominantFrequency(tr.Values, sampleRate); err == nil {
			fmt.Printf("dominant freq:   %.4f Hz\n", f)
		}
	}
	return nil
}

func compareSolvers(cmd *cobra.Command, args []string) error {
	a, err := resolveAnimation(cmd)
	if err != nil {
		return err
	}
	cfg := a.Config
	closed := trajectory.SampleFPS(cfg, from, to, fps)
	frames := closed.Len() - 1
	stepped := trajectory.Stepped(cfg, from, to, frames)
	integrated, err := trajectory.Integrated(cfg, from, to, frames, substeps)
	if err != nil {
		return fmt.Errorf("rk4: %w", err)
	}

	// the closed form snaps to the target on its last frame, the solvers don't
	body := closed.Head(frames)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SOLVER\tFINAL\tMAX DIFF")
	fmt.Fprintf(w, "closed form\t%.6f\t-\n", closed.Final())
	fmt.Fprintf(w, "harmonica\t%.6f\t%.2e\n", stepped.Final(), trajectory.MaxAbsDiff(body, stepped))
	fmt.Fprintf(w, "rk4 x%d\t%.6f\t%.2e\n", substeps, integrated.Final(), trajectory.MaxAbsDiff(body, integrated))
	return w.Flush()
}

func newCanvasCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "canvas",
		Short: "compute canvas dimensions for a screen and aspect ratio",
		RunE:  resolveCanvas,
	}
	cmd.Flags().StringVar(&screen, "screen", "", "screen size, e.g. 1920x1080 (empty uses the fallback)")
	cmd.Flags().StringVar(&ratio, "ratio", string(canvas.Landscape), "aspect ratio")
	return cmd
}

// resolveCanvas starts from the config file's canvas section; --screen and
// --ratio replace it only when given.
func resolveCanvas(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	if cmd.Flags().Changed("screen") {
		cfg.Canvas.Screen = screen
	}
	if cmd.Flags().Changed("ratio") {
		cfg.Canvas.AspectRatio = ratio
	}

	f, err := cfg.Frame()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), f.Dimensions)
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := configFile
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		path = "springcam.yaml"
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := config.Save(path, config.FromSettings(settings.Defaults())); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
