package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"

	"github.com/bradleyjkemp/memviz"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/pkg/errors"
	"github.com/thelolagemann/lr35902/internal/gameboy"
	"github.com/thelolagemann/lr35902/internal/ppu/palette"
	"github.com/thelolagemann/lr35902/pkg/capture"
	"github.com/thelolagemann/lr35902/pkg/log"
)

func main() {
	os.Exit(run())
}

// run is main without os.Exit, so that deferred closes run before the
// process exits.
func run() int {
	romFile := flag.String("rom", "", "The rom file to load (.gb, .gbc, .gz, .zip or .7z)")
	steps := flag.Int("steps", 0, "Execute this many instructions and exit, 0 runs until interrupted")
	speed := flag.Float64("speed", 1, "The emulation speed multiplier, 0 disables pacing")
	level := flag.String("log", "info", "The log level (debug, info, error)")
	trace := flag.String("trace", "", "Write an instruction trace to this file, - for stdout")
	dump := flag.Bool("dump", false, "Dump the CPU state on exit")
	serialOut := flag.Bool("serial", false, "Print bytes sent over the serial port to stdout")
	screenshot := flag.String("screenshot", "", "Save the last frame to this BMP file on exit")
	palIndex := flag.Int("palette", palette.Greyscale, "The palette used for screenshots (0-3)")
	statsAddr := flag.String("statsview", "", "Serve runtime statistics on this address, e.g. localhost:18066")
	memvizFile := flag.String("memviz", "", "Write a graphviz dot graph of the CPU to this file on exit")
	flag.Parse()

	logger := log.NewWithLevel(*level)
	if *romFile == "" {
		flag.Usage()
		return 2
	}

	if *statsAddr != "" {
		go func() {
			viewer.SetConfiguration(viewer.WithAddr(*statsAddr))
			mgr := statsview.New()
			mgr.Start()
		}()
		logger.Infof("stats server available at http://%s/debug/statsview", *statsAddr)
	}

	opts := []gameboy.Opt{
		gameboy.WithLogger(logger),
		gameboy.Speed(*speed),
	}
	if *serialOut {
		opts = append(opts, gameboy.SerialOutput(os.Stdout))
	}
	if *trace != "" {
		w, closeTrace, err := openOutput(*trace)
		if err != nil {
			logger.Errorf("trace: %v", err)
			return 1
		}
		defer closeTrace()
		opts = append(opts, gameboy.Trace(w))
	}

	var shots *capture.Capture
	if *screenshot != "" {
		shots = capture.New(palette.Get(*palIndex))
		opts = append(opts, gameboy.WithRenderer(shots))
	}

	gb := gameboy.New(opts...)
	if err := gb.LoadCartridgeFile(*romFile); err != nil {
		logger.Errorf("%v", err)
		return 1
	}

	if *steps > 0 {
		cycles := gb.Step(*steps)
		logger.Infof("executed %d instructions in %d cycles", *steps, cycles)
	} else {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		if err := gb.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Errorf("run: %v", err)
		}
		stop()
	}

	if *dump {
		// a failing dump is reported, it doesn't change the exit status
		if err := gb.Dump(os.Stdout); err != nil {
			logger.Errorf("dump: %v", err)
		}
	}
	if shots != nil {
		total, changed := shots.Frames()
		logger.Infof("rendered %d frames (%d distinct)", total, changed)
		if err := shots.SaveBMP(*screenshot); err != nil {
			logger.Errorf("screenshot: %v", err)
		}
	}
	if *memvizFile != "" {
		if err := writeMemviz(*memvizFile, gb); err != nil {
			logger.Errorf("memviz: %v", err)
		} else {
			logger.Infof("wrote cpu graph to %s", *memvizFile)
		}
	}
	return 0
}

// openOutput opens path for writing, - meaning stdout.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "creating %s", path)
	}
	return f, func() { f.Close() }, nil
}

// writeMemviz maps a snapshot of the CPU, rather than the live
// machine, so the graph stays readable.
func writeMemviz(path string, gb *gameboy.GameBoy) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer f.Close()

	state := gb.Snapshot()
	memviz.Map(f, &state)
	return nil
}
