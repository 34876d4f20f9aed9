package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/vonix-io/vapi/pkg/vapi"
)

// NewSubaccountsCommand creates the subaccounts command group
func NewSubaccountsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subaccounts",
		Aliases: []string{"subaccount", "sa"},
		Short:   "Manage subaccounts",
		Long:    "Create, list, and manage subaccounts under the main account",
	}

	cmd.AddCommand(newSubaccountsListCommand())
	cmd.AddCommand(newSubaccountsGetCommand())
	cmd.AddCommand(newSubaccountsCreateCommand())
	cmd.AddCommand(newSubaccountsModifyCommand())
	cmd.AddCommand(newSubaccountsDeleteCommand())

	return cmd
}

func newSubaccountsListCommand() *cobra.Command {
	var (
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subaccounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := vapi.NewParams()
			if limit > 0 {
				params.WithLimit(limit)
			}

			if offset > 0 {
				params.WithOffset(offset)
			}

			list, err := client.Subaccounts().List(context.Background(), currentAuthID(), params)
			if err != nil {
				return fmt.Errorf("failed to list subaccounts: %w", err)
			}

			return renderOutput(list, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Auth ID", "Name", "Enabled", "Created")

				for _, subaccount := range list.Objects {
					_ = table.Append(subaccount.AuthID, subaccount.Name,
						strconv.FormatBool(subaccount.Enabled), subaccount.Created)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				renderPaginationFooter(list.Meta, len(list.Objects))

				return nil
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of results")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of results to skip")

	return cmd
}

func newSubaccountsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SUBAUTH_ID",
		Short: "Show subaccount details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			subaccount, err := client.Subaccounts().Get(context.Background(), currentAuthID(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get subaccount: %w", err)
			}

			return renderOutput(subaccount, func() error {
				return renderKeyValueTable([][]string{
					{"Auth ID", subaccount.AuthID},
					{"Name", subaccount.Name},
					{"Enabled", strconv.FormatBool(subaccount.Enabled)},
					{"Account", subaccount.Account},
					{"Created", subaccount.Created},
					{"Modified", subaccount.Modified},
				})
			})
		},
	}
}

func newSubaccountsCreateCommand() *cobra.Command {
	var enabled bool

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a subaccount",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := vapi.NewParams().
				Set("name", args[0]).
				Set("enabled", strconv.FormatBool(enabled))

			response, err := client.Subaccounts().Create(context.Background(), currentAuthID(), params)
			if err != nil {
				return fmt.Errorf("failed to create subaccount: %w", err)
			}

			fmt.Printf("Created subaccount %s\n", response.AuthID)
			fmt.Printf("Auth token: %s\n", response.AuthToken)

			return nil
		},
	}

	cmd.Flags().BoolVar(&enabled, "enabled", true, "enable the subaccount")

	return cmd
}

func newSubaccountsModifyCommand() *cobra.Command {
	var (
		name    string
		enabled string
	)

	cmd := &cobra.Command{
		Use:   "modify SUBAUTH_ID",
		Short: "Modify a subaccount",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := paramsFromPairs(
				[2]string{"name", name},
				[2]string{"enabled", enabled},
			)

			response, err := client.Subaccounts().Modify(context.Background(), currentAuthID(), args[0], params)
			if err != nil {
				return fmt.Errorf("failed to modify subaccount: %w", err)
			}

			fmt.Println(response.Message)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "subaccount name")
	cmd.Flags().StringVar(&enabled, "enabled", "", "enable or disable the subaccount (true/false)")

	return cmd
}

func newSubaccountsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete SUBAUTH_ID",
		Short: "Delete a subaccount",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Printf("Really delete subaccount %s? (y/N): ", args[0])

				var answer string

				_, _ = fmt.Scanln(&answer)

				if answer != "y" && answer != "Y" {
					fmt.Println("Cancelled")

					return nil
				}
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			if err := client.Subaccounts().Delete(context.Background(), currentAuthID(), args[0]); err != nil {
				return fmt.Errorf("failed to delete subaccount: %w", err)
			}

			fmt.Printf("Deleted subaccount %s\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}
