package main

import (
	"log/slog"
	"os"

	"minifetch/internal/conf"
	"minifetch/internal/render"
	"minifetch/internal/system"
)

func main() {
	if err := conf.LoadConfig(conf.DefaultPath()); err != nil {
		slog.Warn("using default config", "error", err)
	}
	cfg := conf.Read()

	info := system.Collect()

	opts := render.Options{ShowSerial: cfg.ShowSerial, ShowGPU: cfg.ShowGPU}
	if err := render.Render(os.Stdout, info, opts); err != nil {
		slog.Error("failed to write output", "error", err)
		os.Exit(1)
	}
}
