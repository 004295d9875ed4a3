package commands

import (
	"github.com/spf13/cobra"

	nano "github.com/go-i2p/go-nano"
)

func (c *cli) hashCmd() *cobra.Command {
	hashCmd := &cobra.Command{
		Use:   "hash",
		Short: "Compute block hashes",
	}
	hashCmd.AddCommand(hashOpenCmd(), hashSendCmd(), hashReceiveCmd(), hashChangeCmd(), hashStateCmd())
	return hashCmd
}

func hashOpenCmd() *cobra.Command {
	var source, representative, account string
	cmd := &cobra.Command{
		Use:   "open",
		Short: "Hash an open block",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := nano.ParseBlockHash(source)
			if err != nil {
				return err
			}
			r, err := parsePublicKeyArg(representative)
			if err != nil {
				return err
			}
			a, err := parsePublicKeyArg(account)
			if err != nil {
				return err
			}
			printLine(cmd, nano.HashOpenBlock(s, r, a))
			return nil
		},
	}
	cmd.Flags().StringVar(&source, "source", "", "source block hash")
	cmd.Flags().StringVar(&representative, "representative", "", "representative public key or address")
	cmd.Flags().StringVar(&account, "account", "", "account public key or address")
	markRequired(cmd, "source", "representative", "account")
	return cmd
}

func hashSendCmd() *cobra.Command {
	var previous, destination, balance string
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Hash a send block",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := nano.ParseBlockHash(previous)
			if err != nil {
				return err
			}
			d, err := parsePublicKeyArg(destination)
			if err != nil {
				return err
			}
			b, err := nano.AmountFromString(balance)
			if err != nil {
				return err
			}
			printLine(cmd, nano.HashSendBlock(p, d, b))
			return nil
		},
	}
	cmd.Flags().StringVar(&previous, "previous", "", "previous block hash")
	cmd.Flags().StringVar(&destination, "destination", "", "destination public key or address")
	cmd.Flags().StringVar(&balance, "balance", "", "remaining balance in raw")
	markRequired(cmd, "previous", "destination", "balance")
	return cmd
}

func hashReceiveCmd() *cobra.Command {
	var previous, source string
	cmd := &cobra.Command{
		Use:   "receive",
		Short: "Hash a receive block",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := nano.ParseBlockHash(previous)
			if err != nil {
				return err
			}
			s, err := nano.ParseBlockHash(source)
			if err != nil {
				return err
			}
			printLine(cmd, nano.HashReceiveBlock(p, s))
			return nil
		},
	}
	cmd.Flags().StringVar(&previous, "previous", "", "previous block hash")
	cmd.Flags().StringVar(&source, "source", "", "source block hash")
	markRequired(cmd, "previous", "source")
	return cmd
}

func hashChangeCmd() *cobra.Command {
	var previous, representative string
	cmd := &cobra.Command{
		Use:   "change",
		Short: "Hash a change block",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := nano.ParseBlockHash(previous)
			if err != nil {
				return err
			}
			r, err := parsePublicKeyArg(representative)
			if err != nil {
				return err
			}
			printLine(cmd, nano.HashChangeBlock(p, r))
			return nil
		},
	}
	cmd.Flags().StringVar(&previous, "previous", "", "previous block hash")
	cmd.Flags().StringVar(&representative, "representative", "", "representative public key or address")
	markRequired(cmd, "previous", "representative")
	return cmd
}

func hashStateCmd() *cobra.Command {
	var account, previous, representative, balance, link string
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Hash a state block",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				b   nano.StateBlock
				err error
			)
			if b.Account, err = parsePublicKeyArg(account); err != nil {
				return err
			}
			if b.Previous, err = nano.ParseBlockHash(previous); err != nil {
				return err
			}
			if b.Representative, err = parsePublicKeyArg(representative); err != nil {
				return err
			}
			if b.Balance, err = nano.AmountFromString(balance); err != nil {
				return err
			}
			if b.Link, _, err = nano.ParseLink(link); err != nil {
				return err
			}
			printLine(cmd, b.Hash())
			return nil
		},
	}
	cmd.Flags().StringVar(&account, "account", "", "account public key or address")
	cmd.Flags().StringVar(&previous, "previous", "0000000000000000000000000000000000000000000000000000000000000000", "previous block hash")
	cmd.Flags().StringVar(&representative, "representative", "", "representative public key or address")
	cmd.Flags().StringVar(&balance, "balance", "", "balance in raw")
	cmd.Flags().StringVar(&link, "link", "0000000000000000000000000000000000000000000000000000000000000000", "link as address or block hash")
	markRequired(cmd, "account", "representative", "balance")
	return cmd
}

func markRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		// Only fails for an undefined flag.
		_ = cmd.MarkFlagRequired(name)
	}
}
