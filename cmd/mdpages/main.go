package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/mdpages/internal/build"
	"git.home.luguber.info/inful/mdpages/internal/config"
	"git.home.luguber.info/inful/mdpages/internal/discovery"
	"git.home.luguber.info/inful/mdpages/internal/preview"
	"git.home.luguber.info/inful/mdpages/internal/routes"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"mdpages.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Build struct {
		Output string `short:"o" help:"Output directory (overrides config)" default:""`
	} `cmd:"" help:"Build the site output from the pages directory"`

	Discover struct{} `cmd:"" help:"List content files and the routes they map to"`

	Preview struct {
		Port int `short:"p" help:"Port to serve the preview on" default:"8080"`
	} `cmd:"" help:"Serve the build output locally, rebuilding on changes"`
}

func main() {
	ctx := kong.Parse(&CLI)

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	opts, err := config.Load(CLI.Config)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	switch ctx.Command() {
	case "build":
		outputDir := opts.OutputDir
		if CLI.Build.Output != "" {
			outputDir = CLI.Build.Output
		}
		if _, err := build.Run(opts, outputDir); err != nil {
			slog.Error("Build failed", "error", err)
			os.Exit(1)
		}

	case "discover":
		if err := runDiscover(opts); err != nil {
			slog.Error("Discovery failed", "error", err)
			os.Exit(1)
		}

	case "preview":
		runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := preview.Serve(runCtx, opts, CLI.Preview.Port); err != nil && runCtx.Err() == nil {
			slog.Error("Preview failed", "error", err)
			os.Exit(1)
		}

	default:
		slog.Error("Unknown command", "command", ctx.Command())
		os.Exit(1)
	}
}

// runDiscover prints each content file with the route it will be assigned.
func runDiscover(opts *config.Options) error {
	files, err := discovery.Discover(opts)
	if err != nil {
		return err
	}
	for _, f := range files {
		route, err := routes.PageRoute(opts, f.Path)
		if err != nil {
			return err
		}
		fmt.Printf("%-40s %s\n", f.RelPath, route)
	}
	return nil
}
