package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bitlance/web/internal/events"
	"github.com/spf13/cobra"
)

var eventsOutputFormat string

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List the audit event topics",
	Long: `List the topics the web front end publishes audit events on.

Output formats:
  table - Human-readable list (default)
  json  - Machine-readable JSON array`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch strings.ToLower(eventsOutputFormat) {
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(events.All)
		case "table":
			fmt.Fprintf(out, "Audit topics (%d):\n\n", len(events.All))
			for _, topic := range events.All {
				fmt.Fprintf(out, "  %s\n", topic)
			}
			return nil
		default:
			return fmt.Errorf("invalid format %q: valid formats are table, json", eventsOutputFormat)
		}
	},
}

func init() {
	rootCmd.AddCommand(eventsCmd)

	eventsCmd.Flags().StringVarP(&eventsOutputFormat, "format", "f", "table", "output format (table, json)")
}
