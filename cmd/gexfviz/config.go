package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matsen/gexfviz/internal/config"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Print the configuration gexfviz would use, after applying the config file.

The output is valid config YAML and can be saved as a starting point:
  gexfviz config > ~/.config/gexfviz/config.yml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			data, err := cfg.YAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, explicit := config.Resolve(opts.configPath)
			if opts.human {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), path)
				return err
			}
			return outputJSON(cmd.OutOrStdout(), struct {
				Path     string `json:"path"`
				Explicit bool   `json:"explicit"`
			}{path, explicit})
		},
	})
	return cmd
}
