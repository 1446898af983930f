package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/bitlance/web/internal/apiconfig"
	"github.com/bitlance/web/internal/domain"
	"github.com/bitlance/web/internal/modules/dashboard"
	"github.com/bitlance/web/web/src/templates/pages"
	"github.com/spf13/cobra"
)

var (
	dashboardUserID string
	dashboardRole   string
	dashboardToken  string
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Print what the dashboard shows for a user",
	Long: `Resolve the dashboard for a user and role the same way the web front end
does, and print it as text.

Examples:
  bitlance-cli dashboard --user-id 42
  bitlance-cli dashboard --user-id 42 --role client --token $TOKEN`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if dashboardUserID == "" {
			return errors.New("--user-id is required")
		}
		m, err := newMarketplace()
		if err != nil {
			return err
		}
		ctx := apiconfig.WithToken(cmd.Context(), dashboardToken)
		data, err := dashboard.Resolve(ctx, m, domain.User{ID: dashboardUserID}, domain.ParseRole(dashboardRole))
		if err != nil {
			return fmt.Errorf("the API rejected the token: %w", err)
		}
		printDashboard(cmd.OutOrStdout(), data)
		return nil
	},
}

func printDashboard(w io.Writer, data pages.DashboardData) {
	fmt.Fprintf(w, "Role: %s\n\n", pages.RoleLabel(data.Role))

	fmt.Fprintf(w, "%s Details\n", pages.RoleLabel(data.Role))
	switch {
	case data.Error != "":
		fmt.Fprintf(w, "  %s\n", data.Error)
	case data.Role.IsFreelancer() && data.Freelancer != nil:
		fmt.Fprintf(w, "  Bio:            %s\n", data.Freelancer.Bio)
		fmt.Fprintf(w, "  Skills:         %s\n", data.Freelancer.Skills)
		fmt.Fprintf(w, "  Portfolio Link: %s\n", data.Freelancer.PortfolioLink)
		fmt.Fprintf(w, "  Social Link:    %s\n", data.Freelancer.SocialLink)
	case data.Client != nil:
		fmt.Fprintf(w, "  Company Name:        %s\n", data.Client.CompanyName)
		fmt.Fprintf(w, "  Company Description: %s\n", data.Client.CompanyDescription)
		fmt.Fprintf(w, "  Website Link:        %s\n", data.Client.WebsiteLink)
	}

	fmt.Fprintln(w, "\nMy Jobs")
	if len(data.Jobs) == 0 {
		fmt.Fprintln(w, "  No jobs found.")
		return
	}
	for _, job := range data.Jobs {
		fmt.Fprintf(w, "  %s  %s: %s\n", pages.JobPath(job.ID), job.Title, job.Description)
	}
}

func init() {
	rootCmd.AddCommand(dashboardCmd)

	dashboardCmd.Flags().StringVar(&dashboardUserID, "user-id", "", "user id to resolve")
	dashboardCmd.Flags().StringVar(&dashboardRole, "role", string(domain.RoleFreelancer), "freelancer or client")
	dashboardCmd.Flags().StringVar(&dashboardToken, "token", "", "bearer token for the API")
}
