// Package main is the simulation driver for the snake growth model.
// It only handles flag parsing and dependency wiring.
// NO growth logic belongs here.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/serpentlab/vivarium/internal/domain/snake"
	"github.com/serpentlab/vivarium/internal/engine"
	"github.com/serpentlab/vivarium/internal/events"
	"github.com/serpentlab/vivarium/internal/platform/logger"
	"github.com/serpentlab/vivarium/internal/platform/metrics"
	"github.com/serpentlab/vivarium/internal/render"
)

// The driver always starts from the same snake; only the feeding schedule is
// configurable.
const (
	initialLength = 5
	initialGirth  = 2
)

// Config holds the feeding schedule parsed from the command line.
type Config struct {
	Apples     int
	LengthGain int
	GirthGain  int
	ShowStats  bool
	Quiet      bool
}

func main() {
	apples := flag.Int("apples", 2, "Number of apples to feed the snake")
	lengthGain := flag.Int("length-gain", 1, "Length gained per apple")
	girthGain := flag.Int("girth-gain", 1, "Girth gained per apple")
	stats := flag.Bool("stats", false, "Print run counters after the simulation")
	quiet := flag.Bool("quiet", false, "Suppress the banner")
	flag.Parse()

	config := Config{
		Apples:     *apples,
		LengthGain: *lengthGain,
		GirthGain:  *girthGain,
		ShowStats:  *stats,
		Quiet:      *quiet,
	}

	appLogger := logger.NewLogger()
	console := render.NewConsole(os.Stdout)

	if !config.Quiet {
		console.Banner("🐍 VIVARIUM - Snake Growth Simulation")
	}

	s, err := snake.New(initialLength, initialGirth, "")
	if err != nil {
		appLogger.Error("Failed to create snake: " + err.Error())
		os.Exit(1)
	}

	eventLog := events.NewEventLog(nil)
	eng := engine.NewEngine(s, eventLog, appLogger, metrics.Get())
	eng.SetObserver(func(r engine.FeedReport) {
		console.Line("After the "+humanize.Ordinal(r.Seq)+" apple:", r.Description, r.Color)
	})

	console.Line("Initial:", s.Description(), s.Color)

	if _, err := eng.Run(config.Apples, config.LengthGain, config.GirthGain); err != nil {
		appLogger.Error("Simulation aborted: " + err.Error())
		os.Exit(1)
	}

	if config.ShowStats {
		fmt.Print(metrics.Get().Summary())
	}
}
