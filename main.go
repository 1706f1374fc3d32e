package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"gridcaster/internal/cubfile"
	"gridcaster/internal/logging"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] scene.cub\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := logging.InitLogger(*logFileFlag, *debugFlag); err != nil {
		fmt.Fprintf(os.Stderr, "initializing logger: %v\n", err)
		os.Exit(1)
	}
	if err := run(flag.Args()); err != nil {
		logging.Log.Errorw("gridcaster failed", "error", err)
		logging.SyncLogger()
		os.Exit(1)
	}
	logging.SyncLogger()
}

func run(args []string) error {
	if len(args) != 1 {
		flag.Usage()
		return errors.New("expected exactly one scene file argument")
	}
	scene, err := cubfile.Load(args[0])
	if err != nil {
		return err
	}
	textures, err := scene.LoadTextures()
	if err != nil {
		return err
	}
	if err := textures.Validate(); err != nil {
		return err
	}
	logging.Log.Infow("scene loaded",
		"path", args[0],
		"width", scene.Grid.Width(),
		"height", scene.Grid.Height(),
		"startX", scene.Start.PosX,
		"startY", scene.Start.PosY,
	)

	v, err := newViewer(scene, textures, viewerOptions{
		Width:   *widthFlag,
		Height:  *heightFlag,
		Workers: *workersFlag,
		Backend: *backendFlag,
		Flat:    *flatWallsFlag,
	})
	if err != nil {
		return err
	}
	defer v.close()

	now := time.Now()
	if *recordPGOFlag != "" {
		stop, err := recordPGOFor(*recordPGOFlag, pgoRecordDuration)
		if err != nil {
			return fmt.Errorf("starting CPU profile: %w", err)
		}
		defer stop()
		v.enableAutoWalk(pgoRecordDuration, now, now.UnixNano())
		logging.Log.Infow("recording CPU profile", "path", *recordPGOFlag, "duration", pgoRecordDuration)
	} else if *autoWalkFlag {
		v.enableAutoWalk(0, now, now.UnixNano())
	}

	if *terminalFlag {
		return runTerminal(v)
	}

	ebiten.SetWindowSize(*widthFlag*windowScale, *heightFlag*windowScale)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(defaultTPS)
	if *mouseLookFlag {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	}
	if err := ebiten.RunGame(newGame(v, *minimapFlag, *mouseLookFlag)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
