package main

import (
	"fmt"
	"io"
	"os"

	"hypr-window/internal/resolver"
	"hypr-window/internal/widget"
	"hypr-window/internal/wm"
	"hypr-window/pkg/config"
	"hypr-window/pkg/logger"
)

func main() {
	run(os.LookupEnv, os.Stdout)
}

// run always prints exactly one payload line to stdout.
func run(lookup config.LookupFunc, stdout io.Writer) {
	cfg := config.Load(lookup)

	opts := []logger.Option{
		logger.WithConsole(),
		logger.WithLevel(cfg.GetLogLevel(logger.DefaultLevel)),
	}
	if path := cfg.GetLogFile(); path != "" {
		opts = append(opts, logger.WithFile(path))
	}

	log, err := logger.NewLogger(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		if log, err = logger.NewLogger(opts[:2]...); err != nil {
			log = logger.Nop()
		}
	}
	defer log.Close()

	for _, w := range cfg.Warnings() {
		log.Warn("Configuration problem", "detail", w)
	}

	log.Debug("Resolving active window",
		"output", cfg.GetOutput(),
		"output_source", cfg.GetOutputSource(),
		"hyprctl", cfg.GetHyprctl(),
		"focus_order", string(cfg.GetFocusOrder()),
		"debug", cfg.IsDebug(),
		"log_level", log.Level().String())

	out := resolve(cfg, log)
	if err := out.Write(stdout); err != nil {
		log.Error("Failed to write widget output", err)
	}
}

func resolve(cfg *config.Config, log *logger.Logger) (out widget.Output) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("Recovered from panic while resolving", fmt.Errorf("%v", r))
			out = widget.Hidden()
		}
	}()

	src := wm.NewHyprland(wm.ExecRunner{Path: cfg.GetHyprctl()}, log)
	log.Debug("Querying window manager", "wm", src.Name())
	res := resolver.New(src, cfg.GetFocusOrder(), log).Resolve(cfg.GetOutput())
	if !res.OK() {
		log.Debug("No window to show", "reason", res.Err.Error())
	} else {
		log.Debug("Resolved window", "title", res.Title, "class", res.Window.Class)
	}
	return widget.FromResult(res)
}
