package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			out, err := cmd.Flags().GetString("out")
			if err != nil {
				return err
			}

			if out != "" {
				if err := cfg.SaveConfig(out); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Saved configuration to %s\n", out)

				return nil
			}

			data, err := cfg.Marshal()
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	cmd.Flags().String("out", "", "Write the configuration to this file instead of stdout")

	return cmd
}
