package cmd

import (
	"errors"
	"os"
	"time"

	"github.com/bitlance/web/internal/apiconfig"
	"github.com/bitlance/web/internal/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	apiURL     string
	apiTimeout time.Duration
)

// newMarketplace builds the API client used by the commands. Tests replace it.
var newMarketplace = func() (domain.Marketplace, error) {
	if apiURL == "" {
		return nil, errors.New("no API URL: set --api-url or BITLANCE_API_URL")
	}
	return apiconfig.NewClient(apiURL, apiTimeout), nil
}

var rootCmd = &cobra.Command{
	Use:   "bitlance-cli",
	Short: "Bitlance CLI tool",
	Long: `Bitlance CLI talks to the marketplace API the same way the web front end does.

Available commands:
  ping         Check that the marketplace API is reachable
  login        Sign in and print the session user
  dashboard    Print what the dashboard shows for a user
  events       List the audit event topics

Use "bitlance-cli [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if apiURL == "" {
			apiURL = os.Getenv("BITLANCE_API_URL")
		}
	},
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// A missing .env file is fine; the environment is used as is.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "marketplace API base URL (default $BITLANCE_API_URL)")
	rootCmd.PersistentFlags().DurationVar(&apiTimeout, "timeout", 10*time.Second, "API request timeout")
}
