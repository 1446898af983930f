package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the marketplace API is reachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newMarketplace()
		if err != nil {
			return err
		}
		if err := m.Ping(cmd.Context()); err != nil {
			return fmt.Errorf("marketplace API unreachable: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Marketplace API is reachable")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pingCmd)
}
