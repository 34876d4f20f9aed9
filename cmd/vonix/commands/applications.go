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

// NewApplicationsCommand creates the applications command group
func NewApplicationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "applications",
		Aliases: []string{"application", "apps", "app"},
		Short:   "Manage applications",
		Long:    "Create, list, and manage voice/message applications",
	}

	cmd.AddCommand(newApplicationsListCommand())
	cmd.AddCommand(newApplicationsGetCommand())
	cmd.AddCommand(newApplicationsCreateCommand())
	cmd.AddCommand(newApplicationsModifyCommand())
	cmd.AddCommand(newApplicationsDeleteCommand())

	return cmd
}

func newApplicationsListCommand() *cobra.Command {
	var (
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List applications",
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

			list, err := client.Applications().List(context.Background(), currentAuthID(), params)
			if err != nil {
				return fmt.Errorf("failed to list applications: %w", err)
			}

			return renderOutput(list, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("App ID", "Name", "Answer URL", "Enabled")

				for _, application := range list.Objects {
					_ = table.Append(application.AppID, application.AppName,
						application.AnswerURL, strconv.FormatBool(application.Enabled))
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

func newApplicationsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get APP_ID",
		Short: "Show application details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			application, err := client.Applications().Get(context.Background(), currentAuthID(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get application: %w", err)
			}

			return renderOutput(application, func() error {
				return renderKeyValueTable([][]string{
					{"App ID", application.AppID},
					{"Name", application.AppName},
					{"Answer URL", application.AnswerURL},
					{"Answer method", application.AnswerMethod},
					{"Hangup URL", application.HangupURL},
					{"Message URL", application.MessageURL},
					{"Enabled", strconv.FormatBool(application.Enabled)},
					{"Subaccount", application.SubAccount},
				})
			})
		},
	}
}

func newApplicationsCreateCommand() *cobra.Command {
	var (
		answerURL     string
		answerMethod  string
		hangupURL     string
		messageURL    string
		messageMethod string
	)

	cmd := &cobra.Command{
		Use:   "create APP_NAME",
		Short: "Create an application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := vapi.NewParams().Set("app_name", args[0])

			for _, pair := range [][2]string{
				{"answer_url", answerURL},
				{"answer_method", answerMethod},
				{"hangup_url", hangupURL},
				{"message_url", messageURL},
				{"message_method", messageMethod},
			} {
				if pair[1] != "" {
					params.Set(pair[0], pair[1])
				}
			}

			response, err := client.Applications().Create(context.Background(), currentAuthID(), params)
			if err != nil {
				return fmt.Errorf("failed to create application: %w", err)
			}

			fmt.Printf("Created application %s\n", response.AppID)

			return nil
		},
	}

	cmd.Flags().StringVar(&answerURL, "answer-url", "", "URL invoked when a call is answered")
	cmd.Flags().StringVar(&answerMethod, "answer-method", "", "HTTP method for the answer URL")
	cmd.Flags().StringVar(&hangupURL, "hangup-url", "", "URL invoked when a call hangs up")
	cmd.Flags().StringVar(&messageURL, "message-url", "", "URL invoked for inbound messages")
	cmd.Flags().StringVar(&messageMethod, "message-method", "", "HTTP method for the message URL")

	return cmd
}

func newApplicationsModifyCommand() *cobra.Command {
	var (
		appName      string
		answerURL    string
		answerMethod string
		enabled      string
	)

	cmd := &cobra.Command{
		Use:   "modify APP_ID",
		Short: "Modify an application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := paramsFromPairs(
				[2]string{"app_name", appName},
				[2]string{"answer_url", answerURL},
				[2]string{"answer_method", answerMethod},
				[2]string{"enabled", enabled},
			)

			response, err := client.Applications().Modify(context.Background(), currentAuthID(), args[0], params)
			if err != nil {
				return fmt.Errorf("failed to modify application: %w", err)
			}

			fmt.Println(response.Message)

			return nil
		},
	}

	cmd.Flags().StringVar(&appName, "app-name", "", "application name")
	cmd.Flags().StringVar(&answerURL, "answer-url", "", "URL invoked when a call is answered")
	cmd.Flags().StringVar(&answerMethod, "answer-method", "", "HTTP method for the answer URL")
	cmd.Flags().StringVar(&enabled, "enabled", "", "enable or disable the application (true/false)")

	return cmd
}

func newApplicationsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete APP_ID",
		Short: "Delete an application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Printf("Really delete application %s? (y/N): ", args[0])

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

			if err := client.Applications().Delete(context.Background(), currentAuthID(), args[0]); err != nil {
				return fmt.Errorf("failed to delete application: %w", err)
			}

			fmt.Printf("Deleted application %s\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}
