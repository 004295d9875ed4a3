package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	nano "github.com/go-i2p/go-nano"
)

func (c *cli) signCmd() *cobra.Command {
	var hash, secretKey string
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a block hash with a secret key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := nano.ParseBlockHash(hash)
			if err != nil {
				return err
			}
			sk, err := nano.ParseSecretKey(secretKey)
			if err != nil {
				return err
			}
			printLine(cmd, nano.Sign(h, sk))
			return nil
		},
	}
	cmd.Flags().StringVar(&hash, "hash", "", "block hash")
	cmd.Flags().StringVar(&secretKey, "secret-key", "", "secret key")
	markRequired(cmd, "hash", "secret-key")
	return cmd
}

func (c *cli) verifyCmd() *cobra.Command {
	var hash, signature, publicKey string
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a block hash signature; prints true or false",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pk, err := parsePublicKeyArg(publicKey)
			if err != nil {
				return fmt.Errorf("public key is not valid: %w", err)
			}
			printLine(cmd, nano.VerifyHex(hash, signature, pk.String()))
			return nil
		},
	}
	cmd.Flags().StringVar(&hash, "hash", "", "block hash")
	cmd.Flags().StringVar(&signature, "signature", "", "signature")
	cmd.Flags().StringVar(&publicKey, "public-key", "", "public key or address")
	markRequired(cmd, "hash", "signature", "public-key")
	return cmd
}

func (c *cli) blockCmd() *cobra.Command {
	var secretKey string
	var data nano.StateBlockData
	cmd := &cobra.Command{
		Use:   "block",
		Short: "Create and sign a state block",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sk, err := nano.ParseSecretKey(secretKey)
			if err != nil {
				return err
			}
			block, err := nano.CreateStateBlock(sk, data, c.config.AddressPrefix())
			if err != nil {
				return err
			}
			printLine(cmd, "account:", block.Account)
			printLine(cmd, "previous:", block.Block.Previous)
			printLine(cmd, "representative:", nano.DeriveAddress(block.Block.Representative, c.config.AddressPrefix()))
			printLine(cmd, "balance:", block.Block.Balance)
			printLine(cmd, "link:", nano.BytesToHex(block.Block.Link[:]))
			printLine(cmd, "link_as_account:", block.LinkAsAccount)
			printLine(cmd, "hash:", block.Hash)
			printLine(cmd, "signature:", block.Signature)
			if block.Work != "" {
				printLine(cmd, "work:", block.Work)
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&secretKey, "secret-key", "", "secret key of the account")
	flags.StringVar(&data.Previous, "previous", "0000000000000000000000000000000000000000000000000000000000000000", "previous block hash")
	flags.StringVar(&data.Representative, "representative", "", "representative address")
	flags.StringVar(&data.Balance, "balance", "", "balance in raw")
	flags.StringVar(&data.Link, "link", "0000000000000000000000000000000000000000000000000000000000000000", "link as address or block hash")
	flags.StringVar(&data.Work, "work", "", "work, if already computed")
	markRequired(cmd, "secret-key", "representative", "balance")
	return cmd
}
