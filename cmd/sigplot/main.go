// Command sigplot generates the demo signals, applies the time-domain
// transforms and writes comparison plots. With SIGPLOT_SCENARIO_FILE set it
// renders a user-defined YAML scenario instead of the built-in demo.
package main

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/signalkit/signalkit"
	"github.com/signalkit/signalkit/internal/config"
	"github.com/signalkit/signalkit/render"
	"github.com/signalkit/signalkit/scenario"
)

// Demo parameters, shared by the sine and triangle signals.
const (
	demoFreq = 5.0  // frequency in Hz
	demoAmp  = 1.0  // amplitude of signals
	demoFs   = 200  // sampling rate in samples per second
	demoT0   = 0.0  // signal start time in seconds
	demoT1   = 2.0  // signal end time in seconds

	demoTau  = 0.30 // time shift in seconds (positive = right shift)
	demoA    = 1.5  // time scaling factor (>1 compresses; <1 stretches)
	demoFill = 0.0  // fill value for undefined regions after interpolation
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	if cfg.ScenarioFile != "" {
		if err := runScenarioFile(cfg); err != nil {
			log.Fatal().Err(err).Str("scenario", cfg.ScenarioFile).Msg("Scenario failed")
		}
		return
	}

	if err := runDemo(cfg); err != nil {
		log.Fatal().Err(err).Msg("Demo failed")
	}
}

// runDemo reproduces the stock comparison: sine and triangle waves, each
// shown against their shifted, scaled and combined transforms.
func runDemo(cfg *config.Config) error {
	demos := []struct {
		name     string
		waveform string
	}{
		{name: "sine", waveform: "sine"},
		{name: "triangle", waveform: "triangle"},
	}

	for _, d := range demos {
		original, err := signalkit.Generate(d.waveform, demoFreq, demoT0, demoT1, demoAmp, demoFs)
		if err != nil {
			return err
		}

		shifted, err := signalkit.TimeShift(original, demoTau)
		if err != nil {
			return err
		}
		scaled, err := signalkit.TimeScale(original, demoA, demoFill)
		if err != nil {
			return err
		}
		combined, err := signalkit.TimeShiftAndScale(original, demoTau, demoA, demoFill)
		if err != nil {
			return err
		}

		out := outputPath(cfg, d.name+"_shift_scale")
		err = render.Comparison(d.name+" wave: original vs shifted vs scaled", out, original, []render.Labeled{
			{Label: "Shifted (tau=0.3s)", Series: shifted},
			{Label: "Scaled (a=1.5)", Series: scaled},
		})
		if err != nil {
			return err
		}
		log.Info().Str("file", out).Msg("Saved plot")

		out = outputPath(cfg, d.name+"_combined")
		err = render.Comparison(d.name+" wave: original vs combined (shift + scale)", out, original, []render.Labeled{
			{Label: "Combined (a=1.5, tau=0.3)", Series: combined},
		})
		if err != nil {
			return err
		}
		log.Info().Str("file", out).Msg("Saved plot")
	}

	return nil
}

// runScenarioFile loads a YAML scenario and renders one comparison plot per
// signal entry.
func runScenarioFile(cfg *config.Config) error {
	data, err := os.ReadFile(cfg.ScenarioFile)
	if err != nil {
		return err
	}

	sc, err := scenario.Load(data)
	if err != nil {
		return err
	}

	for _, entry := range sc.Signals {
		original, err := entry.Generate()
		if err != nil {
			return err
		}

		results, err := entry.Steps.ApplyEach(original)
		if err != nil {
			return err
		}

		labeled := make([]render.Labeled, len(results))
		for i, r := range results {
			labeled[i] = render.Labeled{Label: r.Name, Series: r.Series}
		}

		out := entry.Output
		if out == "" {
			out = entry.Name + "." + cfg.ImageFormat
		}
		out = filepath.Join(cfg.OutputDir, out)

		title := entry.Title
		if title == "" {
			title = entry.Name
		}

		if err := render.Comparison(title, out, original, labeled); err != nil {
			return err
		}
		log.Info().Str("file", out).Int("steps", len(results)).Msg("Saved plot")
	}

	return nil
}

func outputPath(cfg *config.Config, stem string) string {
	return filepath.Join(cfg.OutputDir, stem+"."+cfg.ImageFormat)
}
