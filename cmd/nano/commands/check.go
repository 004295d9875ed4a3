package commands

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	nano "github.com/go-i2p/go-nano"
)

var checkers = map[string]func(string) bool{
	"seed":      nano.CheckSeed,
	"amount":    nano.CheckAmount,
	"hash":      nano.CheckHash,
	"key":       nano.CheckKey,
	"address":   nano.CheckAddress,
	"work":      nano.CheckWork,
	"signature": nano.CheckSignature,
	"threshold": nano.CheckWorkThreshold,
	"index": func(s string) bool {
		i, err := strconv.ParseInt(s, 10, 64)
		return err == nil && nano.CheckIndex(i)
	},
}

func checkKinds() []string {
	kinds := make([]string, 0, len(checkers))
	for k := range checkers {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

func (c *cli) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <kind> <candidate>",
		Short: fmt.Sprintf("Check a candidate [%s]", strings.Join(checkKinds(), "|")),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			check, ok := checkers[args[0]]
			if !ok {
				return fmt.Errorf("unknown kind %q, expected one of %s", args[0], strings.Join(checkKinds(), ", "))
			}
			printLine(cmd, check(args[1]))
			return nil
		},
	}
}
