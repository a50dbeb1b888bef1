package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"findaword/internal/config"
	"findaword/internal/logging"
)

func newShowCmd() *cobra.Command {
	var configPath, target string
	cmd := &cobra.Command{
		Use:   "show <champion.json>",
		Short: "Score a saved champion against the target",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			champion, err := logging.LoadChampion(args[0])
			if err != nil {
				return fmt.Errorf("load champion: %w", err)
			}

			if target == "" {
				cfg := config.Default()
				if configPath != "" {
					if cfg, err = config.Load(configPath); err != nil {
						return fmt.Errorf("load config: %w", err)
					}
				}
				target = cfg.Target
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "Champion from generation %d (%s %.6f)\n",
				champion.Generation, champion.Metric, champion.Score); err != nil {
				return err
			}
			return compare(out, champion.Genome, target)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "config file providing the target")
	cmd.Flags().StringVar(&target, "target", "", "target phrase, overrides the config")
	return cmd
}
