package main

import (
	"os"
	"runtime/pprof"
	"sync"
	"time"

	"gridcaster/internal/logging"
)

// startPGORecording begins writing a CPU profile to path. The returned stop
// function is safe to call more than once.
func startPGORecording(path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	var once sync.Once
	stop := func() {
		once.Do(func() {
			pprof.StopCPUProfile()
			_ = f.Close()
			logging.Log.Infow("CPU profile written", "path", path)
		})
	}
	return stop, nil
}

// recordPGOFor profiles for d and stops on its own. The returned stop
// function ends the recording early, for example when the window closes.
func recordPGOFor(path string, d time.Duration) (func(), error) {
	stop, err := startPGORecording(path)
	if err != nil {
		return nil, err
	}
	timer := time.AfterFunc(d, stop)
	return func() {
		timer.Stop()
		stop()
	}, nil
}
