package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/beanboi7/chyp8/emu/audio"
	"github.com/beanboi7/chyp8/emu/config"
	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/beanboi7/chyp8/emu/driver"
	"github.com/beanboi7/chyp8/emu/window"
	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var startCmd = &cobra.Command{
	Use:   "start `path/ROM`",
	Short: "load and start the Emulator",
	Args:  cobra.ExactArgs(1),
	RunE:  Start,
}

func init() {
	flags := startCmd.Flags()
	flags.IntP(config.KeyClock, "c", config.DefaultClockHz, "instructions executed per second")
	flags.IntP(config.KeyRefresh, "r", config.DefaultRefreshHz, "sets the refresh rate of the display and input in Hz")
	flags.IntP(config.KeyScale, "s", config.DefaultScale, "window pixels per Chip-8 pixel")
	flags.Int64(config.KeySeed, 0, "seed of the random number generator, 0 picks one from the clock")
	flags.Bool(config.KeyMute, false, "disable the sound")
	flags.Bool(config.KeyTrace, false, "log every executed instruction, needs --debug")

	bindFlags(
		flags.Lookup(config.KeyClock),
		flags.Lookup(config.KeyRefresh),
		flags.Lookup(config.KeyScale),
		flags.Lookup(config.KeySeed),
		flags.Lookup(config.KeyMute),
		flags.Lookup(config.KeyTrace),
	)
}

// chyp8 start 'path/to/ROM' -r 60
func Start(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	romPath := args[0]
	rom, err := os.ReadFile(romPath)
	if err != nil {
		return fmt.Errorf("reading ROM: %w", err)
	}

	emu := cpu.NewEMU(
		cpu.WithLogger(logger),
		cpu.WithSeed(cfg.Seed),
		cpu.WithTrace(cfg.Trace),
	)
	if err := emu.LoadROM(rom); err != nil {
		return fmt.Errorf("loading ROM %s: %w", romPath, err)
	}
	logger.Info("Loaded ROM",
		log.String("file", romPath),
		log.Int("size", len(rom)),
		log.Int("clock", cfg.ClockHz),
		log.Int("refresh", cfg.RefreshHz))

	win, err := window.New("Chyp8", cfg.Scale)
	if err != nil {
		return err
	}
	defer win.Destroy()

	options := []driver.Option{driver.WithLogger(logger)}
	if !cfg.Mute {
		beeper := audio.NewBeeper(audio.DefaultSampleRate, audio.DefaultFrequency)
		if err := beeper.Start(); err != nil {
			logger.Warn("Sound disabled", log.Err(err))
		} else {
			options = append(options, driver.WithTone(beeper))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	d, err := driver.New(emu, win, cfg.ClockPeriod(), cfg.RefreshPeriod(), options...)
	if err != nil {
		return err
	}
	err = d.Run(ctx)
	logger.Debug("Emulation stopped",
		log.Int("instructions", int(d.Steps())),
		log.Int("ticks", int(d.Ticks())))

	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("running %s: %w", romPath, err)
	}
	return nil
}
