package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/sortstep/internal/batch"
	"github.com/san-kum/sortstep/internal/config"
	"github.com/san-kum/sortstep/internal/export"
	"github.com/san-kum/sortstep/internal/logging"
	"github.com/san-kum/sortstep/internal/session"
	"github.com/san-kum/sortstep/internal/storage"
	"github.com/san-kum/sortstep/internal/viz"
)

var (
	dataDir     string
	configFile  string
	logLevel    string
	themeName   string
	preset      string
	separator   string
	noSave      bool
	showFrames  bool
	svgDir      string
	gifOut      string
	chartHeight int
	svgWidth    int
	svgHeight   int
	gifWidth    int
	gifHeight   int
	gifDelay    int
	frameRate   int
	workers     int
)

// errInvalidInput marks a validation failure whose message was already
// printed, so main only sets the exit status.
var errInvalidInput = errors.New("invalid input")

// main registers commands and flags. With no subcommand it opens the
// gallery on the default preset. It exits with status 1 on any error.
func main() {
	rootCmd := &cobra.Command{
		Use:           "sortstep",
		Short:         "step-by-step insertion sort visualizer",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(cmd, nil)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", config.DefaultTheme, "color theme")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use a named sample input")

	runCmd := &cobra.Command{
		Use:   "run [array]",
		Short: "sort an array and print the transcript",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSort,
	}
	runCmd.Flags().StringVar(&separator, "separator", config.DefaultSeparator, "transcript separator")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")

	framesCmd := &cobra.Command{
		Use:   "frames [array]",
		Short: "print every frame as terminal bars",
		Args:  cobra.MaximumNArgs(1),
		RunE:  printFrames,
	}
	framesCmd.Flags().IntVar(&chartHeight, "height", viz.DefaultChartHeight, "chart height in rows")

	tuiCmd := &cobra.Command{
		Use:   "tui [array]",
		Short: "page through frames interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGallery,
	}
	tuiCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "autoplay frame rate")

	svgCmd := &cobra.Command{
		Use:   "export-svg [array]",
		Short: "write one SVG per frame",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportSVG,
	}
	svgCmd.Flags().StringVar(&svgDir, "out", "frames", "output directory")
	svgCmd.Flags().IntVar(&svgWidth, "width", config.DefaultSVGWidth, "image width")
	svgCmd.Flags().IntVar(&svgHeight, "height", config.DefaultSVGHeight, "image height")

	gifCmd := &cobra.Command{
		Use:   "export-gif [array]",
		Short: "write an animated GIF of all frames",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportGIF,
	}
	gifCmd.Flags().StringVar(&gifOut, "out", "sortstep.gif", "output file")
	gifCmd.Flags().IntVar(&gifWidth, "width", 640, "image width")
	gifCmd.Flags().IntVar(&gifHeight, "height", 320, "image height")
	gifCmd.Flags().IntVar(&gifDelay, "delay", config.DefaultGIFDelay, "frame delay in 1/100 s")

	jsonCmd := &cobra.Command{
		Use:   "export-json [array]",
		Short: "print the full result as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportJSON,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [array]",
		Short: "plot inversions remaining per step",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotInversions,
	}

	batchCmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "process one array per line (stdin if no file)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBatch,
	}
	batchCmd.Flags().IntVar(&workers, "workers", 0, "parallel inputs (0 = GOMAXPROCS)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}
	showCmd.Flags().BoolVar(&showFrames, "frames", false, "also print stored frames")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list sample inputs",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tINPUT")
			for _, name := range config.ListPresets() {
				raw, _ := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\n", name, raw)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(runCmd, framesCmd, tuiCmd, svgCmd, gifCmd, jsonCmd, plotCmd, batchCmd, listCmd, showCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errInvalidInput) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

// app holds what every command needs after flags and config are merged.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	theme  viz.Theme
	orch   *session.Orchestrator
}

// setup loads the config file if given, then applies explicitly set flags
// over it.
func setup(cmd *cobra.Command) (*app, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("data") || configFile == "" {
		cfg.DataDir = dataDir
	}
	if flags.Changed("log-level") || configFile == "" {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("theme") {
		cfg.Theme = themeName
	}
	if flags.Lookup("separator") != nil && flags.Changed("separator") {
		cfg.Separator = separator
	}
	if flags.Lookup("fps") != nil && flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Lookup("delay") != nil && flags.Changed("delay") {
		cfg.GIF.Delay = gifDelay
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:    cfg,
		logger: logger,
		theme:  viz.GetTheme(cfg.Theme),
		orch: session.New(
			session.WithSeparator(cfg.Separator),
			session.WithLogger(logger),
		),
	}, nil
}

// rawInput picks the array from args, then --preset, then the default
// preset.
func rawInput(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	name := preset
	if name == "" {
		name = config.DefaultPreset
	}
	raw, ok := config.GetPreset(name)
	if !ok {
		return "", fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets())
	}
	return raw, nil
}

// process runs the pipeline and prints the user-facing message on a
// validation failure.
func process(cmd *cobra.Command, args []string) (*app, *session.Result, error) {
	a, err := setup(cmd)
	if err != nil {
		return nil, nil, err
	}
	raw, err := rawInput(args)
	if err != nil {
		return nil, nil, err
	}
	res := a.orch.Process(raw)
	if !res.OK() {
		fmt.Println(res.Message)
		return nil, nil, errInvalidInput
	}
	return a, res, nil
}

func runSort(cmd *cobra.Command, args []string) error {
	a, res, err := process(cmd, args)
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	fmt.Println(res.Transcript)
	fmt.Println()
	fmt.Printf("elements:    %d\n", res.Stats.Elements)
	fmt.Printf("steps:       %d\n", res.Stats.Steps)
	fmt.Printf("shifts:      %d\n", res.Stats.Shifts)
	fmt.Printf("comparisons: %d\n", res.Stats.Comparisons)
	fmt.Printf("inversions:  %d\n", res.Stats.Inversions)

	if noSave {
		return nil
	}

	st := storage.New(a.cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(res)
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	a.logger.Debug("run saved", zap.String("run_id", runID), zap.String("dir", a.cfg.DataDir))
	fmt.Printf("run id:      %s\n", runID)
	return nil
}

func printFrames(cmd *cobra.Command, args []string) error {
	a, res, err := process(cmd, args)
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	for i, d := range res.Frames {
		fmt.Printf("[%d/%d] %s\n", i+1, len(res.Frames), strings.TrimSpace(res.Steps[i].Description))
		fmt.Println(viz.RenderFrame(d, a.theme, chartHeight))
	}
	return nil
}

func runGallery(cmd *cobra.Command, args []string) error {
	a, res, err := process(cmd, args)
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	lines := make([]string, len(res.Steps))
	for i, s := range res.Steps {
		lines[i] = s.Description
	}
	g := viz.NewGallery(res.Frames, lines, res.Stats.History, viz.Options{
		Theme: a.theme,
		FPS:   a.cfg.FPS,
	})
	return viz.RunGallery(g)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	a, res, err := process(cmd, args)
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	w, h := a.cfg.SVG.Width, a.cfg.SVG.Height
	if cmd.Flags().Changed("width") {
		w = svgWidth
	}
	if cmd.Flags().Changed("height") {
		h = svgHeight
	}

	paths, err := export.WriteSVGFrames(svgDir, res.Frames, a.theme, w, h)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %d frames to %s\n", len(paths), svgDir)
	return nil
}

func exportGIF(cmd *cobra.Command, args []string) error {
	a, res, err := process(cmd, args)
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	opts := export.GIFOptions{
		Width:  gifWidth * a.cfg.GIF.Scale,
		Height: gifHeight * a.cfg.GIF.Scale,
		Delay:  a.cfg.GIF.Delay,
	}
	if err := export.WriteGIF(gifOut, res.Frames, a.theme, opts); err != nil {
		return fmt.Errorf("write gif: %w", err)
	}
	fmt.Printf("wrote %d frames to %s\n", len(res.Frames), gifOut)
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	raw, err := rawInput(args)
	if err != nil {
		return err
	}
	res := a.orch.Process(raw)
	if err := storage.ExportJSONStdout(res); err != nil {
		return err
	}
	if !res.OK() {
		return errInvalidInput
	}
	return nil
}

func plotInversions(cmd *cobra.Command, args []string) error {
	a, res, err := process(cmd, args)
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	fmt.Printf("input: %s\n", res.Input)
	fmt.Printf("steps: %d\n\n", len(res.Steps))
	fmt.Println(viz.InversionPlot(res.Stats.History, 80, 10))
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	src := os.Stdin
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
	}

	inputs, err := batch.ReadInputs(src)
	if err != nil {
		return fmt.Errorf("read inputs: %w", err)
	}

	results, err := batch.New(a.orch, workers).Run(context.Background(), inputs)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tINPUT\tRESULT\tSTEPS\tSHIFTS")
	for i, res := range results {
		if !res.OK() {
			fmt.Fprintf(w, "%d\t%s\t%s\t-\t-\n", i+1, res.Input, res.Message)
			continue
		}
		fmt.Fprintf(w, "%d\t%s\t%v\t%d\t%d\n", i+1, res.Input, res.Sorted, res.Stats.Steps, res.Stats.Shifts)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	sum := batch.Summarize(results)
	fmt.Printf("\n%d inputs: %d sorted, %d rejected, %d shifts total\n", sum.Total, sum.OK, sum.Failed, sum.Shifts)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	runs, err := storage.New(a.cfg.DataDir).List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tELEMENTS\tSTEPS\tINPUT")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Elements,
			run.Steps,
			run.Input,
		)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	runID := args[0]
	st := storage.New(a.cfg.DataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	transcript, err := st.LoadTranscript(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run:    %s\n", meta.ID)
	fmt.Printf("time:   %s\n", meta.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Printf("input:  %s\n", meta.Input)
	fmt.Printf("sorted: %v\n\n", meta.Sorted)
	fmt.Println(transcript)

	if !showFrames {
		return nil
	}

	frames, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}
	fmt.Println()
	for _, d := range frames {
		fmt.Println(viz.RenderFrame(d, a.theme, viz.DefaultChartHeight))
	}
	return nil
}
