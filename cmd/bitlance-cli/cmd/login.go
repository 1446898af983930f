package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/bitlance/web/internal/auth"
	"github.com/bitlance/web/internal/domain"
	"github.com/bitlance/web/internal/handlers"
	"github.com/spf13/cobra"
)

var (
	loginEmail       string
	loginPassword    string
	loginShowTok     bool
	loginTokenSecret string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and print the session user",
	Long: `Sign in against the marketplace API and print the user the web front end
would store in its session.

Examples:
  bitlance-cli login --email ada@example.com --password secret
  bitlance-cli login --email ada@example.com --password secret --show-token`,
	RunE: func(cmd *cobra.Command, args []string) error {
		creds := domain.Credentials{Email: strings.TrimSpace(loginEmail), Password: loginPassword}
		if creds.Email == "" || creds.Password == "" {
			return errors.New(handlers.MsgMissingCredentials)
		}

		m, err := newMarketplace()
		if err != nil {
			return err
		}
		res, err := m.UserLogin(cmd.Context(), creds)
		if err != nil {
			return fmt.Errorf("login request failed: %w", err)
		}
		if res == nil {
			return errors.New(handlers.MsgLoginError)
		}

		secret := loginTokenSecret
		if secret == "" {
			secret = os.Getenv("TOKEN_SECRET")
		}
		sess, err := auth.NewTokenParser(secret).SessionFromLogin(res)
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return errors.New(handlers.LoginErrorMessage(res.Error))
		}
		if err != nil {
			return fmt.Errorf("%s (%w)", handlers.MsgLoginFailed, err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "User ID:\t%s\n", sess.User.ID)
		fmt.Fprintf(w, "Username:\t%s\n", sess.User.Username)
		fmt.Fprintf(w, "Email:\t%s\n", sess.User.Email)
		fmt.Fprintf(w, "Name:\t%s\n", sess.User.Name)
		fmt.Fprintf(w, "Role:\t%s\n", sess.User.Role)
		if !sess.Expires.IsZero() {
			fmt.Fprintf(w, "Expires:\t%s\n", sess.Expires.Format(time.RFC3339))
		}
		if loginShowTok {
			fmt.Fprintf(w, "Token:\t%s\n", sess.Token)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password")
	loginCmd.Flags().BoolVar(&loginShowTok, "show-token", false, "also print the session token")
	loginCmd.Flags().StringVar(&loginTokenSecret, "token-secret", "", "verify JWT signatures with this secret (default $TOKEN_SECRET)")
}
