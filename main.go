package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	log "github.com/sirupsen/logrus"

	"mazearena/pkg/engine/input"
	"mazearena/pkg/engine/logging"
	"mazearena/pkg/game/config"
	"mazearena/pkg/game/devtools"
	"mazearena/pkg/game/messages"
	"mazearena/pkg/game/renderer"
	ebitenrenderer "mazearena/pkg/game/renderer/ebiten"
	"mazearena/pkg/game/renderer/tui"
	"mazearena/pkg/game/spectator"
	"mazearena/pkg/game/state"
	"mazearena/pkg/game/strategy"
)

// options are the command line settings that are not part of the game config
type options struct {
	renderer    string
	serve       string
	interactive string
	delay       time.Duration
	maxTurns    int
	logLevel    string
	logFormat   string
	logFile     string
	dumpMap     string
}

func main() {
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)

	var opts options
	flag.StringVar(&opts.renderer, "renderer", "tui", "display backend: tui, ebiten or none")
	flag.StringVar(&opts.serve, "serve", "", "serve the spectator feed on this address, e.g. :8080")
	flag.StringVar(&opts.interactive, "interactive", "", "enter a human player with this name, driven from stdin")
	flag.DurationVar(&opts.delay, "delay", 200*time.Millisecond, "pause between turns")
	flag.IntVar(&opts.maxTurns, "max-turns", 0, "stop after this many turns (0 for no limit)")
	flag.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	flag.StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")
	flag.StringVar(&opts.logFile, "log-file", "", "write logs to this file instead of stderr")
	flag.StringVar(&opts.dumpMap, "dump-map", "", "write a debug dump of the generated arena to this file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, opts); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(opts options) (*log.Logger, func(), error) {
	lo := logging.Options{Level: opts.logLevel, Format: opts.logFormat, Output: os.Stderr}
	closer := func() {}
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		lo.Output = f
		closer = func() { f.Close() }
	}
	logger, err := logging.New(lo)
	if err != nil {
		closer()
		return nil, nil, err
	}
	return logger, closer, nil
}

func run(ctx context.Context, cfg config.Config, opts options) error {
	logger, closeLog, err := newLogger(opts)
	if err != nil {
		return err
	}
	defer closeLog()

	if opts.interactive != "" && opts.renderer == "ebiten" {
		return errors.New("interactive play needs the terminal renderer")
	}

	gameOpts := []state.Option{state.WithLogger(logger)}
	if opts.interactive != "" {
		prompter := input.NewPrompter(os.Stdin, os.Stdout, messages.Get("INVALID_INPUT"))
		gameOpts = append(gameOpts, state.WithHuman(opts.interactive, strategy.NewConsole(prompter)))
	}

	g, err := state.NewGame(cfg, gameOpts...)
	if err != nil {
		return fmt.Errorf("building game: %w", err)
	}

	if opts.dumpMap != "" {
		path, err := devtools.DumpMapToFile(opts.dumpMap, g.Snapshot(), cfg.Seed)
		if err != nil {
			return fmt.Errorf("dumping map: %w", err)
		}
		logger.WithField("path", path).Info("map dumped")
	}

	if opts.serve != "" {
		stopServing := serveSpectators(ctx, g, opts.serve, logger)
		defer stopServing()
	}

	switch opts.renderer {
	case "ebiten":
		e := ebitenrenderer.New(ctx, g, ebitenrenderer.Options{Delay: opts.delay, MaxTurns: opts.maxTurns, Logger: logger})
		if err := e.Init(); err != nil {
			return err
		}
		g.AddObserver(renderer.Observe(e, nil))
		err = e.Run(g.Snapshot())
		printResult(g)
		return err
	case "tui":
		t := tui.New(os.Stdout)
		if err := t.Init(); err != nil {
			return err
		}
		defer t.Close()
		if opts.interactive != "" {
			t.SetViewer(g.Players()[0].ID)
		}
		onErr := func(err error) { logger.WithError(err).Warn("failed to draw frame") }
		g.AddObserver(renderer.Observe(t, onErr))
		if err := t.RenderFrame(g.Snapshot()); err != nil {
			onErr(err)
		}
	case "none":
	default:
		return fmt.Errorf("unknown renderer %q", opts.renderer)
	}

	err = loop(ctx, g, opts)
	printResult(g)
	return err
}

// loop advances turns until the match ends, the turn limit is hit or ctx
// is cancelled
func loop(ctx context.Context, g *state.Game, opts options) error {
	for n := 0; opts.maxTurns == 0 || n < opts.maxTurns; n++ {
		res, err := g.AdvanceTurn(ctx)
		if errors.Is(err, state.ErrGameOver) {
			return nil
		}
		if err != nil {
			return err
		}
		if res.Status == state.Finished {
			return nil
		}
		if opts.delay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(opts.delay):
			}
		}
	}
	return nil
}

func serveSpectators(ctx context.Context, g *state.Game, addr string, logger *log.Logger) func() {
	srv := spectator.NewServer(g, logger)
	g.AddObserver(srv)

	httpServer := &http.Server{Addr: addr, Handler: srv}
	go func() {
		logger.WithField("addr", addr).Info("spectator feed listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Error("spectator feed stopped")
		}
	}()

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}
}

func printResult(g *state.Game) {
	if !g.Finished() {
		fmt.Println(messages.Get("HUD_TURN", g.Turn()))
		return
	}
	if w, ok := g.Winner(); ok {
		fmt.Println(messages.Get("WINNER", w.Name))
		return
	}
	fmt.Println(messages.Get("NO_WINNER"))
}
