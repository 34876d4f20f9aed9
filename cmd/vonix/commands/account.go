package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewAccountCommand creates the account command group
func NewAccountCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage the account",
		Long:  "View and modify the main account",
	}

	cmd.AddCommand(newAccountGetCommand())
	cmd.AddCommand(newAccountModifyCommand())

	return cmd
}

func newAccountGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show account details",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			account, err := client.Accounts().Get(context.Background(), currentAuthID())
			if err != nil {
				return fmt.Errorf("failed to get account: %w", err)
			}

			return renderOutput(account, func() error {
				return renderKeyValueTable([][]string{
					{"Auth ID", account.AuthID},
					{"Name", account.Name},
					{"Type", account.AccountType},
					{"City", account.City},
					{"State", account.State},
					{"Timezone", account.Timezone},
					{"Cash credits", account.CashCredits},
					{"Billing mode", account.BillingMode},
					{"Auto recharge", strconv.FormatBool(account.AutoRecharge)},
				})
			})
		},
	}
}

func newAccountModifyCommand() *cobra.Command {
	var (
		name     string
		city     string
		address  string
		state    string
		timezone string
	)

	cmd := &cobra.Command{
		Use:   "modify",
		Short: "Modify account details",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := paramsFromPairs(
				[2]string{"name", name},
				[2]string{"city", city},
				[2]string{"address", address},
				[2]string{"state", state},
				[2]string{"timezone", timezone},
			)

			response, err := client.Accounts().Modify(context.Background(), currentAuthID(), params)
			if err != nil {
				return fmt.Errorf("failed to modify account: %w", err)
			}

			fmt.Println(response.Message)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "account name")
	cmd.Flags().StringVar(&city, "city", "", "account city")
	cmd.Flags().StringVar(&address, "address", "", "account address")
	cmd.Flags().StringVar(&state, "state", "", "account state")
	cmd.Flags().StringVar(&timezone, "timezone", "", "account timezone")

	return cmd
}
