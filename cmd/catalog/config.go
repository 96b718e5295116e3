package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valger11/suomifi-ui-components/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect catalog configuration files",
	}
	cmd.AddCommand(newConfigValidateCmd())
	cmd.AddCommand(newConfigDefaultsCmd())
	return cmd
}

func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a configuration file without launching the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.ParseConfig(args[0])
			if err != nil {
				return newCommandError("validate", fmt.Sprintf("checking %s", args[0]), err, "Fix the reported field and run validate again.")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is valid (theme %s, %d demo items)\n", args[0], cfg.Theme, len(cfg.Demo.Items))
			return nil
		},
	}
}

func newConfigDefaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the default configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Marshal(config.Default())
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
