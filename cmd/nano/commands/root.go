package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	nano "github.com/go-i2p/go-nano"
)

const envPrefix = "NANO"

// Flag names shared by every command. They are bound to viper so they can
// also come from NANO_* environment variables.
const (
	flagConfig    = "config"
	flagLogLevel  = "log_level"
	flagPrefix    = "prefix"
	flagThreshold = "threshold"
	flagWorkers   = "workers"
)

// cli holds the state shared by one command tree.
type cli struct {
	v      *viper.Viper
	config *nano.Config
}

// NewRootCmd builds the nano command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:          "nano",
		Short:        "Nano key derivation, addresses, block hashing, signing and proof of work",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return c.loadConfig()
		},
	}

	registerFlagsRootCmd(rootCmd, c.v)

	rootCmd.AddCommand(
		c.seedCmd(),
		c.keyCmd(),
		c.addressCmd(),
		c.checkCmd(),
		c.hashCmd(),
		c.signCmd(),
		c.verifyCmd(),
		c.workCmd(),
		c.blockCmd(),
		c.convertCmd(),
		versionCmd(),
	)
	return rootCmd
}

func registerFlagsRootCmd(cmd *cobra.Command, v *viper.Viper) {
	flags := cmd.PersistentFlags()
	flags.String(flagConfig, "", "config file (default $HOME/.nano.conf)")
	flags.String(flagLogLevel, "error", "log level (debug, info, warn, error)")
	flags.String(flagPrefix, "", "address prefix (nano_ or xrb_)")
	flags.String(flagThreshold, "", "work threshold as 16 hex characters")
	flags.Uint64(flagWorkers, 0, "number of work search workers")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for _, name := range []string{flagConfig, flagLogLevel, flagPrefix, flagThreshold, flagWorkers} {
		// BindPFlag only fails for a nil flag.
		_ = v.BindPFlag(name, flags.Lookup(name))
	}
}

// loadConfig reads the config file, then applies flag and environment
// overrides and validates the result.
func (c *cli) loadConfig() error {
	nano.LogInit(nano.ParseLogLevel(c.v.GetString(flagLogLevel)))

	var (
		config *nano.Config
		err    error
	)
	if path := c.v.GetString(flagConfig); path != "" {
		config, err = nano.LoadConfigFile(path)
	} else {
		config, err = nano.LoadUserConfig()
	}
	if err != nil {
		return err
	}

	if p := c.v.GetString(flagPrefix); p != "" {
		config.SetProperty(nano.CONFIG_PROP_ADDRESS_PREFIX, p)
	}
	if t := c.v.GetString(flagThreshold); t != "" {
		config.SetProperty(nano.CONFIG_PROP_WORK_THRESHOLD, t)
	}
	if w := c.v.GetUint64(flagWorkers); w != 0 {
		config.SetProperty(nano.CONFIG_PROP_WORK_WORKERS, fmt.Sprint(w))
	}
	if err := config.Validate(); err != nil {
		return err
	}

	c.config = config
	return nil
}

// printLine writes one line of command output.
func printLine(cmd *cobra.Command, a ...interface{}) {
	fmt.Fprintln(cmd.OutOrStdout(), a...)
}

// parsePublicKeyArg accepts a public key as hex or as an address.
func parsePublicKeyArg(s string) (nano.PublicKey, error) {
	if nano.CheckKey(s) {
		return nano.ParsePublicKey(s)
	}
	return nano.ParseAddress(s)
}
