// Command sltools smooths scalar sensor measurements and converts camera
// metadata.
package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "sltools",
		Short:        "Smooth sensor measurements and convert camera metadata",
		SilenceUsage: true,
	}
	root.AddCommand(
		newSmoothCommand(),
		newI2CCommand(),
		newVersionCommand(),
	)
	return root
}

// newConfig binds the flags of cmd to SLTOOLS_* environment variables. Flags
// set on the command line take precedence.
func newConfig(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("sltools")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	return v, nil
}

// newLogger returns a production logger, or a development one when
// SLTOOLS_DEBUG is "true".
func newLogger() *zap.SugaredLogger {
	var config zap.Config
	debugMode, ok := os.LookupEnv("SLTOOLS_DEBUG")
	if ok && debugMode == "true" {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}
	// stdout carries the samples
	config.OutputPaths = []string{"stderr"}
	logger, err := config.Build()
	if err != nil {
		panic(err)
	}
	return logger.Named("sltools").Sugar()
}
