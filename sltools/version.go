package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cgxeiji/sltools"
)

func newVersionCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "version",
		Short: "Parse and print a camera SDK version",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := newConfig(cmd)
			if err != nil {
				return err
			}
			v, err := sltools.ParseSDKVersion(cfg.GetString("sdk"))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "SDK v%s\n", v)
			return nil
		},
	}
	command.Flags().String("sdk", "", "SDK version string")
	return command
}
