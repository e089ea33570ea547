// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Command quizdeck is the terminal handbook for the LLM Quiz Solver
// project. With no arguments it opens the local viewer; `serve` exposes
// the same viewer over SSH, `export` dumps sections as plain text.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"grimm.is/quizdeck/internal/brand"
	"grimm.is/quizdeck/internal/config"
	"grimm.is/quizdeck/internal/errors"
	"grimm.is/quizdeck/internal/handbook"
	"grimm.is/quizdeck/internal/logging"
	"grimm.is/quizdeck/internal/ssh"
	"grimm.is/quizdeck/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "Path to HCL config file")
	debug := flag.Bool("debug", false, "Force debug logging")
	flag.Parse()

	args := flag.Args()
	subcmd := ""
	if len(args) > 0 {
		subcmd = args[0]
	}

	if subcmd == "version" {
		fmt.Println(brand.Line())
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal(err)
	}
	setupLogging(cfg, *debug)
	tui.ApplyTheme(cfg.UI.Theme)

	content, err := handbook.LoadContent()
	if err != nil {
		fatal(err)
	}

	switch subcmd {
	case "":
		err = runViewer(content)
	case "serve":
		err = runServe(cfg, content)
	case "export":
		err = runExport(os.Stdout, content, args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", subcmd)
		usage()
		os.Exit(2)
	}
	if err != nil {
		fatal(err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [-config file] [-debug] [command]\n\n", brand.BinaryName)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  (none)    open the handbook viewer")
	fmt.Fprintln(os.Stderr, "  serve     serve the handbook over SSH")
	fmt.Fprintln(os.Stderr, "  export    print sections as plain text (-section id for one)")
	fmt.Fprintln(os.Stderr, "  version   print version and exit")
}

// setupLogging builds the process logger from the log block. Failures
// fall back to stderr rather than aborting; the viewer is still usable
// without a log file.
func setupLogging(cfg *config.Config, debug bool) {
	lc := logging.DefaultConfig()

	if lvl, err := logging.ParseLevel(cfg.Log.Level); err == nil {
		lc.Level = lvl
	}
	if debug {
		lc.Level = logging.LevelDebug
	}
	lc.JSON = cfg.Log.JSON

	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot open log file %s: %v, logging to stderr\n", cfg.Log.File, err)
		} else {
			lc.Output = f
		}
	}

	logging.SetDefault(logging.New(lc))
}

func runViewer(content *handbook.Content) error {
	p := tea.NewProgram(tui.NewModel(content), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, errors.KindInternal, "viewer exited")
	}
	return nil
}

// runServe blocks until interrupted.
func runServe(cfg *config.Config, content *handbook.Content) error {
	// Running `serve` is the enable switch; the config block only
	// carries the listen address and host key.
	cfg.SSH.Enabled = true

	srv, err := ssh.NewServer(cfg, content)
	if err != nil {
		return err
	}

	if err := srv.Start(context.Background()); err != nil {
		return err
	}
	logging.Info("handbook ready", "addr", srv.Addr(), "version", brand.Version)

	// Block until interrupt
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	active, total := srv.Stats()
	logging.Info("shutting down", "active_sessions", active, "total_connections", total)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Stop(ctx)
}

// fatal reports the error and exits. Validation problems (bad config,
// bad flags) exit 2 so scripts can tell them from crashes.
func fatal(err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", brand.BinaryName, err)
	if errors.GetKind(err) == errors.KindValidation {
		os.Exit(2)
	}
	os.Exit(1)
}
