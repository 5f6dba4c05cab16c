package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/bdwalton/gintendo/cartridge"
	"github.com/bdwalton/gintendo/console"
	"github.com/bdwalton/gintendo/video"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "gintendo",
		Usage: "a DMG (Game Boy) PPU core and bus fabric emulator",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "rom", Required: true, Usage: "path to the DMG ROM to load"},
			&cli.IntFlag{Name: "scale", Value: 3, Usage: "integer pixel scale for the output window"},
			&cli.StringFlag{Name: "log-level", Value: "info", Usage: "debug, info, warn, or error"},
			&cli.BoolFlag{Name: "debug", Usage: "drop into the interactive debug console instead of opening the video window"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	configureLogging(c.String("log-level"))

	rom, err := cartridge.Load(c.String("rom"))
	if err != nil {
		return fmt.Errorf("loading rom: %w", err)
	}
	slog.Info("cartridge loaded", "title", rom.Header.Title, "type", rom.Header.Type)

	m := console.New(rom)

	if c.Bool("debug") {
		return console.NewDebugger(m).Run()
	}

	ebiten.SetWindowTitle("gintendo: " + rom.Header.Title)
	return ebiten.RunGame(video.New(m, c.Int("scale")))
}

func configureLogging(level string) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
}
