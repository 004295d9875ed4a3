package commands

import (
	"github.com/spf13/cobra"

	nano "github.com/go-i2p/go-nano"
)

func (c *cli) convertCmd() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "convert <amount>",
		Short: "Convert an amount between units (hex, raw, nano, knano, Nano, NANO, KNano, MNano)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := nano.ConvertAmount(args[0], nano.Unit(from), nano.Unit(to))
			if err != nil {
				return err
			}
			printLine(cmd, out)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", string(nano.UNIT_XNANO), "unit of the input")
	cmd.Flags().StringVar(&to, "to", string(nano.UNIT_RAW), "unit of the output")
	return cmd
}
