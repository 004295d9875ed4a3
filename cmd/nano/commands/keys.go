package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	nano "github.com/go-i2p/go-nano"
)

func (c *cli) seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Generate a random seed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			seed, err := nano.GenerateSeed()
			if err != nil {
				return err
			}
			printLine(cmd, seed)
			return nil
		},
	}
}

func (c *cli) keyCmd() *cobra.Command {
	keyCmd := &cobra.Command{
		Use:   "key",
		Short: "Derive secret keys, public keys and addresses",
	}

	var index uint32
	secretCmd := &cobra.Command{
		Use:   "secret <seed>",
		Short: "Derive the secret key at --index from a seed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := nano.ParseSeed(args[0])
			if err != nil {
				return err
			}
			printLine(cmd, nano.DeriveSecretKey(seed, index).Hex())
			return nil
		},
	}
	secretCmd.Flags().Uint32Var(&index, "index", 0, "derivation index")

	publicCmd := &cobra.Command{
		Use:   "public <secret-key|address>",
		Short: "Derive a public key from a secret key or an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if nano.CheckKey(args[0]) {
				sk, err := nano.ParseSecretKey(args[0])
				if err != nil {
					return err
				}
				printLine(cmd, nano.DerivePublicKey(sk))
				return nil
			}
			pk, err := nano.ParseAddress(args[0])
			if err != nil {
				return fmt.Errorf("secret key or address is not valid: %w", err)
			}
			printLine(cmd, pk)
			return nil
		},
	}

	keyCmd.AddCommand(secretCmd, publicCmd)
	return keyCmd
}

func (c *cli) addressCmd() *cobra.Command {
	addressCmd := &cobra.Command{
		Use:   "address",
		Short: "Encode and decode addresses",
	}

	deriveCmd := &cobra.Command{
		Use:   "derive <public-key>",
		Short: "Render a public key as an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pk, err := nano.ParsePublicKey(args[0])
			if err != nil {
				return err
			}
			printLine(cmd, nano.DeriveAddress(pk, c.config.AddressPrefix()))
			return nil
		},
	}

	parseCmd := &cobra.Command{
		Use:   "parse <address>",
		Short: "Recover and print the public key of an address, verifying its checksum",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pk, err := nano.ParseAddress(args[0])
			if err != nil {
				return err
			}
			printLine(cmd, pk)
			return nil
		},
	}

	addressCmd.AddCommand(deriveCmd, parseCmd)
	return addressCmd
}
