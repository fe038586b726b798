package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"text/tabwriter"

	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/asciify/internal/analysis"
	"github.com/san-kum/asciify/internal/ascii"
	"github.com/san-kum/asciify/internal/batch"
	"github.com/san-kum/asciify/internal/config"
	"github.com/san-kum/asciify/internal/export"
	"github.com/san-kum/asciify/internal/imageio"
	"github.com/san-kum/asciify/internal/session"
	"github.com/san-kum/asciify/internal/storage"
	"github.com/san-kum/asciify/internal/theme"
	"github.com/san-kum/asciify/internal/viz"
)

var (
	configFile string
	stateDir   string
	logLevel   string

	width     int
	preset    string
	resample  string
	themeName string
	outDir    string
	wantTxt   bool
	wantPNG   bool
	wantSVG   bool
	workers   int
)

// main registers the commands and opens the interactive viewer when no
// subcommand is given. It exits with status 1 if the command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "asciify [image]",
		Short:         "convert images to ascii art",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runInteractive,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&stateDir, "state", "", "directory for persisted state")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	addConversionFlags(rootCmd)

	convertCmd := &cobra.Command{
		Use:   "convert [images...]",
		Short: "convert images and print or export the art",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runConvert,
	}
	addConversionFlags(convertCmd)
	convertCmd.Flags().StringVar(&outDir, "out", "", "output directory")
	convertCmd.Flags().BoolVar(&wantTxt, "txt", false, "write ascii.txt")
	convertCmd.Flags().BoolVar(&wantPNG, "png", false, "write ascii.png")
	convertCmd.Flags().BoolVar(&wantSVG, "svg", false, "write ascii.svg")
	convertCmd.Flags().IntVar(&workers, "workers", 0, "concurrent conversions (0 = one per cpu)")

	themeCmd := &cobra.Command{
		Use:       "theme [dark|light]",
		Short:     "show or set the persisted theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: theme.Names(),
		RunE:      runTheme,
	}

	inspectCmd := &cobra.Command{
		Use:   "inspect [image]",
		Short: "show image and tone statistics",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	addConversionFlags(inspectCmd)

	batchCmd := &cobra.Command{
		Use:   "batch [manifest]",
		Short: "run the conversions listed in a yaml manifest",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}
	batchCmd.Flags().IntVar(&workers, "workers", 0, "concurrent conversions (0 = one per cpu)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list width presets and resamplers",
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage configuration files",
	}
	configCmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "write a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	})

	rootCmd.AddCommand(convertCmd, themeCmd, inspectCmd, batchCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addConversionFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&width, "width", 0, fmt.Sprintf("output width in characters (%d-%d)", config.MinWidth, config.MaxWidth))
	cmd.Flags().StringVar(&preset, "preset", "", "width preset (see presets)")
	cmd.Flags().StringVar(&resample, "resample", "", "resampler: nearest, bilinear, catmullrom or lanczos")
	cmd.Flags().StringVar(&themeName, "theme", "", "theme for image exports: dark or light")
}

// env is the state every command starts from.
type env struct {
	cfg    *config.Config
	log    *log.Logger
	store  *storage.Store
	themes *theme.Manager
}

func setup(cmd *cobra.Command) (*env, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = width
	}
	if preset != "" {
		w, ok := config.GetPreset(preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset: %s", preset)
		}
		cfg.Width = w
	}
	if resample != "" {
		cfg.Resample = resample
	}
	if themeName != "" {
		cfg.Theme = themeName
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if stateDir != "" {
		cfg.StateDir = stateDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:  level,
		Prefix: "asciify",
	})

	dir := cfg.StateDir
	if dir == "" {
		if dir, err = storage.DefaultDir(); err != nil {
			return nil, err
		}
	}
	store := storage.New(dir)
	if err := store.Init(); err != nil {
		return nil, err
	}

	themes, err := theme.NewManager(store)
	if err != nil {
		logger.Warn("could not read persisted theme", "err", err)
	}
	if _, saved, _ := store.Get(theme.Key); !saved || themeName != "" {
		themes.Start(cfg.GetTheme())
	}

	logger.Debug("setup", "width", cfg.Width, "resample", cfg.Resample, "theme", themes.Current(), "state", store.Path())
	return &env{cfg: cfg, log: logger, store: store, themes: themes}, nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}

	ctl, err := session.New(session.Options{
		Width:     e.cfg.Width,
		Resampler: e.cfg.GetResampler(),
		Themes:    e.themes,
		Writer:    export.DirWriter{Dir: e.cfg.OutputDir},
		Logger:    e.log,
	})
	if err != nil {
		return err
	}

	source := ""
	if len(args) == 1 {
		source = args[0]
		if err := ctl.LoadFile(source); err != nil {
			return fmt.Errorf("%s: %w", source, err)
		}
	}
	return viz.Run(ctl, source)
}

func runConvert(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}

	var formats []string
	if wantTxt {
		formats = append(formats, export.FormatText.String())
	}
	if wantPNG {
		formats = append(formats, export.FormatPNG.String())
	}
	if wantSVG {
		formats = append(formats, export.FormatSVG.String())
	}

	if len(formats) == 0 {
		return printArt(e, os.Stdout, args)
	}

	out := outDir
	if out == "" {
		out = e.cfg.OutputDir
	}
	m := &batch.Manifest{
		Output: out,
		Defaults: batch.Job{
			Width:    e.cfg.Width,
			Theme:    e.themes.Current().String(),
			Resample: e.cfg.Resample,
			Formats:  formats,
		},
	}
	for _, path := range args {
		job := batch.Job{Image: path}
		if len(args) == 1 {
			job.Output = "."
		}
		m.Jobs = append(m.Jobs, job)
	}
	return runManifest(e, m)
}

// printArt writes the art of every path to w. Art with no rows prints as an
// empty line.
func printArt(e *env, w io.Writer, paths []string) error {
	rs := e.cfg.GetResampler()
	quiet := e.log.With()
	if quiet.GetLevel() < log.WarnLevel {
		quiet.SetLevel(log.WarnLevel)
	}
	stream := export.New(export.StreamWriter{W: w}, quiet)

	for i, path := range paths {
		img, err := imageio.DecodeFile(path)
		if err != nil {
			return err
		}
		if len(paths) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "==> %s <==\n", path)
		}
		art := ascii.ConvertWith(img, e.cfg.Width, rs)
		if art.Empty() {
			e.log.Debug("image produced no rows", "image", path, "width", e.cfg.Width)
		} else if err := stream.Text(art); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	m, err := batch.LoadManifest(args[0])
	if err != nil {
		return err
	}
	if m.Name != "" {
		e.log.Info("running manifest", "name", m.Name, "jobs", len(m.Jobs))
	}
	return runManifest(e, m)
}

func runManifest(e *env, m *batch.Manifest) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := batch.Run(ctx, m, workers, e.log)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "IMAGE\tWIDTH\tROWS\tOUTPUT\tSTATUS")
	failed := 0
	for _, r := range results {
		status := "ok"
		if r.Err != nil {
			status = r.Err.Error()
			failed++
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\n", r.Image, r.Width, r.Rows, r.OutDir, status)
	}
	w.Flush()

	if failed > 0 {
		return fmt.Errorf("%d of %d conversions failed", failed, len(results))
	}
	return nil
}

func runTheme(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		fmt.Println(e.themes.Current())
		return nil
	}

	t, err := theme.Parse(args[0])
	if err != nil {
		return err
	}
	m, err := theme.NewManager(e.store)
	if err != nil {
		return err
	}
	if err := m.Set(t); err != nil {
		return err
	}
	e.log.Info("theme saved", "theme", t, "state", e.store.Path())
	return nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	format, err := imageio.Format(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	img, err := imageio.Std{}.Decode(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	rs := e.cfg.GetResampler()
	grid := ascii.RasterizeWith(img, e.cfg.Width, rs)
	art := ascii.Quantize(grid)
	b := img.Bounds()

	fmt.Printf("image: %s\n", filepath.Base(path))
	fmt.Printf("format: %s\n", format)
	fmt.Printf("pixels: %dx%d\n", b.Dx(), b.Dy())
	fmt.Printf("art: %dx%d (%s)\n", art.Width(), art.Height(), rs.Name())
	fmt.Printf("coverage: %.1f%%\n\n", analysis.Coverage(art)*100)

	if art.Empty() {
		return errors.New("image too short to produce any rows at this width")
	}

	fmt.Println(asciigraph.Plot(analysis.Floats(analysis.RampHistogram(art)),
		asciigraph.Height(10),
		asciigraph.Caption(fmt.Sprintf("cells per ramp index %q", ascii.Ramp)),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(analysis.RowProfile(grid),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("mean luminance per row"),
	))
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tWIDTH")
	for _, name := range config.ListPresets() {
		size, _ := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\n", name, size)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("resamplers:")
	for _, name := range ascii.ResamplerNames() {
		fmt.Printf("  %s\n", name)
	}
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "asciify.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
