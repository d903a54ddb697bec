// Command wheelsim spins a wheel many times offline and reports how closely
// the observed frequencies follow the configured weights.
//
// Usage:
//
//	go run ./cmd/wheelsim -options options.yaml -n 1000000
//	go run ./cmd/wheelsim -config config.yaml -n 100000 -seed 42
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"
	"gopkg.in/yaml.v3"

	"github.com/MikeSquared-Agency/Wheel/internal/config"
	"github.com/MikeSquared-Agency/Wheel/internal/simulate"
	"github.com/MikeSquared-Agency/Wheel/internal/store"
	"github.com/MikeSquared-Agency/Wheel/internal/wheel"
)

func main() {
	configPath := flag.String("config", "", "load options from the store named in this config file")
	optionsPath := flag.String("options", "", "load options from a YAML list instead")
	runs := flag.Int("n", 100000, "number of spins")
	seed := flag.Uint64("seed", 0, "random seed (0 picks one)")
	alpha := flag.Float64("alpha", 0.05, "significance level for the fit check")
	quiet := flag.Bool("quiet", false, "hide the progress bar")
	flag.Parse()

	list, err := loadOptions(*configPath, *optionsPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "wheelsim:", err)
		os.Exit(1)
	}

	var src wheel.Source = wheel.GlobalSource
	if *seed != 0 {
		src = wheel.NewSource(*seed)
	}

	bar := pb.StartNew(*runs)
	if *quiet {
		bar.SetWriter(io.Discard)
	}
	rep, err := simulate.Run(src, list, *runs, func(done int) {
		bar.SetCurrent(int64(done))
	})
	used := time.Since(bar.StartTime())
	bar.Finish()
	if err != nil {
		fmt.Fprintln(os.Stderr, "wheelsim:", err)
		os.Exit(1)
	}

	fmt.Print(formatReport(rep, *alpha, used))
	if !rep.Fits(*alpha) {
		os.Exit(2)
	}
}

func loadOptions(configPath, optionsPath string) ([]wheel.Option, error) {
	if optionsPath != "" {
		data, err := os.ReadFile(optionsPath)
		if err != nil {
			return nil, err
		}
		return parseOptions(data)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s, err := store.Open(ctx, store.Config{
		Driver: cfg.Storage.Driver,
		Path:   cfg.Storage.Path,
		URL:    cfg.Storage.URL,
	})
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return s.LoadOptions(ctx)
}

func parseOptions(data []byte) ([]wheel.Option, error) {
	var list []wheel.Option
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parse options: %w", err)
	}
	return list, nil
}
