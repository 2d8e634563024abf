package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/montanaflynn/stats"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cgxeiji/sltools"
)

func newSmoothCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "smooth [values...]",
		Short: "Smooth a sequence of values read from the arguments or stdin",
		Long: `Smooth a sequence of values with a bias corrected exponential mean.

Values are taken from the arguments or, when there are none, from stdin
separated by white space. Use "--" before negative values. Each line of
output holds the count, the value and the updated mean.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := newConfig(cmd)
			if err != nil {
				return err
			}
			logger := newLogger().Named("smooth")
			defer logger.Sync()

			m, err := sltools.NewSmartMean(cfg.GetInt("window"))
			if err != nil {
				logger.Errorw("Failed to create the smart mean.", zap.Error(err))
				return err
			}

			values, err := readValues(cmd.InOrStdin(), args)
			if err != nil {
				logger.Errorw("Failed to read values.", zap.Error(err))
				return err
			}

			out := cmd.OutOrStdout()
			for _, v := range values {
				mean := m.AddValue(v)
				fmt.Fprintf(out, "%d\t%g\t%g\n", m.ValCount(), v, mean)
			}

			if len(values) == 0 {
				logger.Warn("No values to smooth")
				return nil
			}
			plain, sd, err := summarize(values)
			if err != nil {
				logger.Errorw("Failed to summarize values.", zap.Error(err))
				return err
			}
			logger.Infow("Smoothed values",
				"count", m.ValCount(),
				"window", m.WindowSize(),
				"mean", m.Mean(),
				"arithmeticMean", plain,
				"stdDev", sd,
			)
			return nil
		},
	}
	command.Flags().Int("window", 10, "Number of values the mean targets")
	return command
}

// summarize returns the arithmetic mean and standard deviation of values.
func summarize(values []float64) (mean, sd float64, err error) {
	mean, err = stats.Mean(values)
	if err != nil {
		return 0, 0, fmt.Errorf("could not compute the arithmetic mean: %w", err)
	}
	sd, err = stats.StandardDeviation(values)
	if err != nil {
		return 0, 0, fmt.Errorf("could not compute the standard deviation: %w", err)
	}
	return mean, sd, nil
}

func readValues(r io.Reader, args []string) ([]float64, error) {
	if len(args) > 0 {
		return parseValues(args)
	}

	var fields []string
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		fields = append(fields, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read values: %w", err)
	}

	return parseValues(fields)
}

func parseValues(fields []string) ([]float64, error) {
	values := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", f, err)
		}
		values = append(values, v)
	}
	return values, nil
}
