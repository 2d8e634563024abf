package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cgxeiji/sltools"
	"github.com/cgxeiji/sltools/sensor"
)

func newI2CCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "i2c",
		Short: "Sample an I2C sensor register and smooth its values",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := newConfig(cmd)
			if err != nil {
				return err
			}
			logger := newLogger().Named("i2c")
			defer logger.Sync()

			d, err := sensor.New(
				sensor.OnBus(cfg.GetString("bus")),
				sensor.OnAddr(uint16(cfg.GetUint("addr"))),
				sensor.Register(byte(cfg.GetUint("register"))),
				sensor.Width(cfg.GetInt("width")),
				sensor.Signed(cfg.GetBool("signed")),
				sensor.Scale(cfg.GetFloat64("scale")),
				sensor.Offset(cfg.GetFloat64("offset")),
			)
			if err != nil {
				logger.Errorw("Failed to open the sensor.", zap.Error(err))
				return err
			}
			defer d.Close()

			f, err := sltools.NewFiltered(d, cfg.GetInt("window"))
			if err != nil {
				logger.Errorw("Failed to create the filter.", zap.Error(err))
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			logger.Infow("Sampling sensor",
				"addr", fmt.Sprintf("%#x", d.Addr()),
				"interval", cfg.GetDuration("interval"),
			)
			return sample(ctx, f, cfg.GetDuration("interval"), cfg.GetInt("count"), func(n int, raw, mean float64) {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%g\t%g\n", n, raw, mean)
			}, logger)
		},
	}
	command.Flags().String("bus", "", `I2C bus name ("/dev/i2c-1", "I2C1", "1"), empty selects the first bus`)
	command.Flags().Uint16("addr", 0, "I2C address of the sensor")
	command.Flags().Uint8("register", 0, "Data register")
	command.Flags().Int("width", 1, "Data register width in bytes")
	command.Flags().Bool("signed", false, "Data register holds a two's complement value")
	command.Flags().Float64("scale", 1, "Factor applied to the raw value")
	command.Flags().Float64("offset", 0, "Value added to the scaled value")
	command.Flags().Int("window", 10, "Number of values the mean targets")
	command.Flags().Duration("interval", 100*time.Millisecond, "Time between samples")
	command.Flags().Int("count", 0, "Number of samples to take, 0 runs until interrupted")
	return command
}

// sample reads f every interval and calls emit with each value until count
// values are read or ctx is done. Failed samples are logged and skipped.
func sample(ctx context.Context, f *sltools.Filtered, interval time.Duration, count int, emit func(n int, raw, mean float64), logger *zap.SugaredLogger) error {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		raw, mean, err := f.Read()
		if err != nil {
			logger.Warnw("Failed to read sample.", zap.Error(err))
		} else {
			n := f.Mean().ValCount()
			emit(n, raw, mean)
			if count > 0 && n >= count {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
		}
	}
}
