package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/justPoosay/HydrosferaSymulator/pkg/app"
	"github.com/justPoosay/HydrosferaSymulator/pkg/config"
	"github.com/justPoosay/HydrosferaSymulator/pkg/logger"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable debug logging on the console")
	logFile := flag.String("log", "", "also write logs to this file (rotated)")
	assetsDir := flag.String("assets", "assets", "assets directory containing config/resources.yaml")
	debug := flag.Bool("debug", false, "start in debug mode (zone outlines, overlay)")
	flag.Parse()

	if err := logger.Init(logger.Config{Verbose: *verbose, FilePath: *logFile}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Hydrosfera Symulator")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.LogicTicksPerSecond)

	game, err := app.NewApp(app.Config{AssetsDir: *assetsDir, Debug: *debug})
	if err != nil {
		logger.Log.Errorf("[Main] %v", err)
		logger.Sync()
		os.Exit(1)
	}

	if err := ebiten.RunGame(game); err != nil {
		logger.Log.Errorf("[Main] Game loop failed: %v", err)
		logger.Sync()
		os.Exit(1)
	}
	logger.Log.Infof("[Main] Bye")
}
