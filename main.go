package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"mazerooms/pkg/engine/logger"
	"mazerooms/pkg/engine/terminal"
	"mazerooms/pkg/game/archive"
	"mazerooms/pkg/game/config"
	"mazerooms/pkg/game/devtools"
	"mazerooms/pkg/game/layout"
	"mazerooms/pkg/game/renderer"
)

// options holds the command line; zero values mean "use the config file"
type options struct {
	configPath string
	seed       int64
	rows       int
	cols       int
	rooms      string
	generator  string
	yamlPath   string
	dumpPath   string
	htmlPath   string
	noColor    bool
	archive    bool
	loadID     int64
	locale     string
	set        map[string]bool
}

func parseFlags(fs *flag.FlagSet, args []string) (*options, error) {
	o := &options{set: map[string]bool{}}
	fs.StringVar(&o.configPath, "config", "config.yaml", "path to the YAML config file")
	fs.Int64Var(&o.seed, "seed", 0, "seed for maze and room generation (0 = from the clock)")
	fs.IntVar(&o.rows, "rows", 0, "maze height in cells")
	fs.IntVar(&o.cols, "cols", 0, "maze width in cells")
	fs.StringVar(&o.rooms, "rooms", "", "comma separated room variants, carved in order (e.g. entrance,key)")
	fs.StringVar(&o.generator, "generator", "", "maze generator: backtracker or open")
	fs.StringVar(&o.yamlPath, "yaml", "", "write the world as YAML to this path")
	fs.StringVar(&o.dumpPath, "dump", "", "write a plain text debug dump to this path")
	fs.StringVar(&o.htmlPath, "html", "", "write an HTML snapshot to this path")
	fs.BoolVar(&o.noColor, "no-color", false, "disable coloured output")
	fs.BoolVar(&o.archive, "archive", false, "store the world in the configured archive")
	fs.Int64Var(&o.loadID, "load", 0, "print an archived world by id instead of generating one")
	fs.StringVar(&o.locale, "locale", "", "language for labels, e.g. en_GB")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

// apply overrides config values with the flags that were given
func (o *options) apply(cfg *config.Config) {
	if o.set["seed"] {
		cfg.Seed = o.seed
	}
	if o.set["rows"] {
		cfg.Grid.Rows = o.rows
	}
	if o.set["cols"] {
		cfg.Grid.Cols = o.cols
	}
	if o.set["rooms"] {
		cfg.Rooms = splitList(o.rooms)
	}
	if o.set["generator"] {
		cfg.Generator = o.generator
	}
	if o.set["yaml"] {
		cfg.Output.YAMLPath = o.yamlPath
	}
	if o.set["dump"] {
		cfg.Output.DumpPath = o.dumpPath
	}
	if o.set["html"] {
		cfg.Output.HTMLPath = o.htmlPath
	}
	if o.noColor {
		cfg.Output.Color = false
	}
	if o.archive || o.set["load"] {
		cfg.Archive.Enabled = true
	}
	if o.set["locale"] {
		cfg.Locale.Language = o.locale
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func initGettext(cfg config.LocaleConfig) {
	gotext.Configure(cfg.Dir, cfg.Language, cfg.Domain)
}

func main() {
	opts, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		logger.Error("run failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts *options) error {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	opts.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration:\n%w", err)
	}

	if err := logger.Initialize(cfg.Logging.ApplyEnv()); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	initGettext(cfg.Locale)
	if !cfg.Output.Color || !terminal.IsTerminal() {
		color.Disable()
		cfg.Output.Color = false
	}

	ctx := context.Background()

	var store *archive.Archive
	if cfg.Archive.Enabled {
		store, err = archive.Open(cfg.Archive.Config)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	var w *layout.World
	if opts.set["load"] {
		if w, err = store.LoadWorld(ctx, opts.loadID); err != nil {
			return err
		}
	} else {
		if w, err = generate(cfg); err != nil {
			return err
		}
		if store != nil {
			id, err := store.SaveWorld(ctx, w)
			if err != nil {
				return err
			}
			fmt.Println(renderer.FormatString("GT{ARCHIVED_AS} ", cfg.Output.Color) + fmt.Sprint(id))
		}
	}

	if err := renderer.Render(os.Stdout, w.Grid, renderer.Options{Color: cfg.Output.Color, Legend: cfg.Output.Legend}); err != nil {
		return err
	}
	printSummary(w, cfg.Output.Color)

	return writeOutputs(w, cfg.Output)
}

func generate(cfg *config.Config) (*layout.World, error) {
	gen, err := cfg.MazeGenerator()
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	b := &layout.Builder{
		Generator:        gen,
		Rows:             cfg.Grid.Rows,
		Cols:             cfg.Grid.Cols,
		Rooms:            cfg.Rooms,
		MaxAttempts:      cfg.MaxAttempts,
		RequireReachable: true,
	}
	return b.Build(seed)
}

func printSummary(w *layout.World, useColor bool) {
	fmt.Println()
	fmt.Println(renderer.FormatString("HEADING{SUMMARY}", useColor))
	fmt.Printf("  %s %d (%s %d)\n",
		renderer.FormatString("GT{SEED}", useColor), w.Seed,
		renderer.FormatString("GT{ATTEMPTS}", useColor), w.Attempts)
	for i, r := range w.Rooms {
		fmt.Printf("  %-10s %v", r.Name(), r.Anchor())
		if i < len(w.Doors) {
			fmt.Printf("  %s %v", renderer.FormatString("KIND{door}", useColor), w.Doors[i].Door)
		}
		fmt.Println()
	}
	if lost := w.Unreachable(); len(lost) > 0 {
		fmt.Println(renderer.FormatString("DENIED{UNREACHABLE_ROOMS}", useColor))
	}

	logger.Info("world ready",
		"seed", w.Seed,
		"attempts", w.Attempts,
		"rows", w.Grid.Rows(),
		"cols", w.Grid.Cols(),
		"rooms", len(w.Rooms),
	)
}

func writeOutputs(w *layout.World, out config.OutputConfig) error {
	if out.YAMLPath != "" {
		if err := devtools.WriteYAML(out.YAMLPath, w); err != nil {
			return err
		}
		logger.Info("wrote YAML", "path", out.YAMLPath)
	}
	if out.DumpPath != "" {
		path, err := devtools.DumpToFile(out.DumpPath, w)
		if err != nil {
			return err
		}
		logger.Info("wrote map dump", "path", path)
	}
	if out.HTMLPath != "" {
		if err := devtools.SaveHTML(out.HTMLPath, w); err != nil {
			return err
		}
		logger.Info("wrote HTML snapshot", "path", out.HTMLPath)
	}
	return nil
}
