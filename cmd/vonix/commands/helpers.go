package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/vonix-io/vapi/internal/constants"
	"github.com/vonix-io/vapi/pkg/vapi"
	"github.com/vonix-io/vapi/pkg/vclient"
)

// Output format constants.
const (
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
	OutputFormatTable = "table"
)

// Static errors for err113 compliance.
var (
	ErrNotLoggedIn = errors.New("not logged in: run 'vonix login' or set --auth-id and --auth-token")
)

// createClient builds an API client from the effective configuration
// (flags override environment, environment overrides the config file).
func createClient() (vapi.Client, error) {
	authID := viper.GetString("auth_id")
	authToken := viper.GetString("auth_token")

	if authID == "" || authToken == "" {
		return nil, ErrNotLoggedIn
	}

	config := &vapi.Config{
		AuthID:      authID,
		AuthToken:   authToken,
		APIEndpoint: viper.GetString("api"),
		HTTPTimeout: constants.DefaultHTTPTimeout,
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = newCLILogger()
	}

	client, err := vclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// currentAuthID returns the auth ID the CLI is operating as. Resource
// commands accept an override via their own flag.
func currentAuthID() string {
	return viper.GetString("auth_id")
}

// renderJSON writes data as indented JSON to stdout.
func renderJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(data)
}

// renderYAML writes data as YAML to stdout.
func renderYAML(data interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	return encoder.Encode(data)
}

// renderKeyValueTable writes ordered property/value rows as a table.
func renderKeyValueTable(rows [][]string) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	for _, row := range rows {
		_ = table.Append(row[0], row[1])
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// renderOutput dispatches on the configured output format, falling back
// to the table renderer.
func renderOutput(data interface{}, renderTable func() error) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return renderJSON(data)
	case OutputFormatYAML:
		return renderYAML(data)
	default:
		return renderTable()
	}
}

// paramsFromPairs converts ordered key=value assignments collected from
// flags into request parameters, skipping keys whose value is unset.
func paramsFromPairs(pairs ...[2]string) *vapi.Params {
	params := vapi.NewParams()

	for _, pair := range pairs {
		if pair[1] != "" {
			params.Set(pair[0], pair[1])
		}
	}

	return params
}

// renderPaginationFooter prints the list window after a table.
func renderPaginationFooter(meta vapi.Meta, shown int) {
	fmt.Printf("\nShowing %d of %d (limit %d, offset %d)\n", shown, meta.TotalCount, meta.Limit, meta.Offset)
}
