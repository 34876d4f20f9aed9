package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/vonix-io/vapi/pkg/vapi"
	"github.com/vonix-io/vapi/pkg/vclient"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		apiEndpoint string
		authID      string
		authToken   string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to the Vonix API",
		Long:  "Verify a credential pair against the API and store it in the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiEndpoint == "" {
				apiEndpoint = viper.GetString("api")
			}

			if authID == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("Auth ID: ")
				authID, _ = reader.ReadString('\n')
				authID = strings.TrimSpace(authID)
			}

			if authID == "" {
				return vapi.ErrAuthIDRequired
			}

			if authToken == "" {
				fmt.Print("Auth token: ")

				byteToken, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read auth token: %w", err)
				}

				authToken = string(byteToken)

				fmt.Println()
			}

			if authToken == "" {
				return vapi.ErrAuthTokenRequired
			}

			config := &vapi.Config{
				AuthID:      authID,
				AuthToken:   authToken,
				APIEndpoint: apiEndpoint,
			}

			client, err := vclient.New(config)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			// Verify the pair by fetching the account it belongs to.
			account, err := client.Accounts().Get(context.Background(), authID)
			if err != nil {
				return fmt.Errorf("failed to verify credentials: %w", err)
			}

			persister := NewConfigPersister()

			cliConfig, err := persister.Load()
			if err != nil {
				return err
			}

			cliConfig.AuthID = authID
			cliConfig.AuthToken = authToken

			if apiEndpoint != "" {
				cliConfig.API = apiEndpoint
			}

			if err := persister.Save(cliConfig); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Printf("Successfully logged in as %s", account.AuthID)

			if account.Name != "" {
				fmt.Printf(" (%s)", account.Name)
			}

			fmt.Println()

			return nil
		},
	}

	cmd.Flags().StringVarP(&apiEndpoint, "api", "a", "", "API endpoint URL")
	cmd.Flags().StringVar(&authID, "auth-id", "", "account auth ID")
	cmd.Flags().StringVar(&authToken, "auth-token", "", "account auth token")

	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout from the Vonix API",
		Long:  "Remove stored credentials from the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			persister := NewConfigPersister()

			cliConfig, err := persister.Load()
			if err != nil {
				return err
			}

			cliConfig.AuthID = ""
			cliConfig.AuthToken = ""

			if err := persister.Save(cliConfig); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Println("Successfully logged out")

			return nil
		},
	}
}
