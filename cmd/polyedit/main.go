package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/polyedit/config"
	"github.com/osuushi/polyedit/dbg"
	"github.com/osuushi/polyedit/editor"
	"github.com/osuushi/polyedit/polygon"
	"github.com/osuushi/polyedit/render"
	"github.com/osuushi/polyedit/scene"
	"github.com/osuushi/polyedit/script"
	"github.com/osuushi/polyedit/tui"
)

var (
	app       = kingpin.New("polyedit", "Edit a constrained polygon with Bézier edges.")
	sceneFile = app.Flag("scene", "SVG scene to start from instead of the built-in square.").ExistingFile()
	bresenham = app.Flag("bresenham", "Rasterize straight edges with Bresenham's algorithm.").Bool()

	runCmd    = app.Command("run", "Run a command script from stdin and render the result to a PNG.")
	outFile   = runCmd.Flag("out", "PNG to write.").Short('o').Default("polygon.png").String()
	preview   = runCmd.Flag("preview", "Show the PNG in the terminal (iTerm only).").Bool()
	keepGoing = runCmd.Flag("keep-going", "Skip commands the polygon rejects.").Short('k').Bool()

	tuiCmd  = app.Command("tui", "Edit interactively in the terminal.")
	dumpCmd = app.Command("dump", "Print the scene and exit.")
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}
	if *bresenham {
		cfg.Bresenham = true
	}

	// Logs go to stderr so print output can be piped.
	var logOut io.Writer = os.Stderr
	if command == tuiCmd.FullCommand() {
		logOut = io.Discard
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: cfg.LogLevel})))

	p, err := loadScene(*sceneFile, cfg.PolygonOptions())
	if err != nil {
		slog.Error("load scene", "path", *sceneFile, "error", err)
		os.Exit(1)
	}
	session := editor.New(p, cfg.EditorOptions(), slog.Default())

	switch command {
	case runCmd.FullCommand():
		err = runScript(cfg, session)
	case tuiCmd.FullCommand():
		err = runTUI(cfg, session)
	case dumpCmd.FullCommand():
		fmt.Print(dbg.NewDumper(!cfg.NoColor).Dump(session.Snapshot()))
	}
	if err != nil {
		slog.Error(command, "error", err)
		os.Exit(1)
	}
}

func loadScene(path string, opts []polygon.Option) (*polygon.Polygon, error) {
	if path == "" {
		return scene.Predefined(opts...), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return scene.LoadSVG(f, opts...)
}

func runScript(cfg *config.Config, session *editor.Session) error {
	runner := &script.Runner{
		Session:   session,
		Output:    os.Stdout,
		Dumper:    dbg.NewDumper(!cfg.NoColor),
		KeepGoing: *keepGoing,
		Log:       slog.Default(),
	}
	if err := runner.Run(os.Stdin); err != nil {
		return err
	}

	sel := render.Selection{Vertex: session.SelectedVertex(), Edge: session.SelectedEdge()}
	if err := render.New(cfg.RenderOptions()).SavePNG(*outFile, session.Snapshot(), sel); err != nil {
		return errors.Wrapf(err, "write %s", *outFile)
	}
	slog.Info("wrote image", "path", *outFile, "vertices", len(session.Snapshot().Vertices))
	if *preview {
		if err := render.Preview(*outFile, os.Stdout); err != nil {
			slog.Warn("preview", "path", *outFile, "error", err)
		}
	}
	return nil
}

func runTUI(cfg *config.Config, session *editor.Session) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	tui.New(screen, session, tui.Options{
		CellWidth:  cfg.CellWidth,
		CellHeight: cfg.CellHeight,
		Samples:    tui.DefaultOptions().Samples,
	}).Run()
	return nil
}
