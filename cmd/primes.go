package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/praktis/go-algorithms/ds"
)

var primesCmd = &cobra.Command{
	Use:   "primes <n>",
	Short: "List primes up to n with a sieve of Eratosthenes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("primes: %w", err)
		}
		for _, p := range ds.Primes(n) {
			fmt.Println(p)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(primesCmd)
}
