package commands

import (
	"time"

	"github.com/spf13/cobra"

	nano "github.com/go-i2p/go-nano"
)

func (c *cli) workCmd() *cobra.Command {
	workCmd := &cobra.Command{
		Use:   "work",
		Short: "Generate and validate proof of work",
	}

	generateCmd := &cobra.Command{
		Use:   "generate <block-hash>",
		Short: "Search for work meeting the configured threshold",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := nano.ParseBlockHash(args[0])
			if err != nil {
				return err
			}
			metrics := nano.NewInMemoryWorkMetrics()
			wc := nano.NewWorkComputer(c.config)
			wc.Metrics = metrics

			start := time.Now()
			work, err := wc.Compute(cmd.Context(), h)
			if err != nil {
				return err
			}
			nano.Info("Found work %s after %d attempts in %s", work, metrics.Attempts(), time.Since(start))
			printLine(cmd, work)
			return nil
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate <block-hash> <work>",
		Short: "Check work against the configured threshold; prints true or false",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := nano.ParseBlockHash(args[0])
			if err != nil {
				return err
			}
			w, err := nano.ParseWork(args[1])
			if err != nil {
				return err
			}
			printLine(cmd, nano.ValidateWorkWithConfig(c.config, h, w))
			return nil
		},
	}

	workCmd.AddCommand(generateCmd, validateCmd)
	return workCmd
}
