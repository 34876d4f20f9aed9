package commands

import (
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/vonix-io/vapi/pkg/vapi"
)

// hclogAdapter bridges hclog to the library's Logger interface.
type hclogAdapter struct {
	logger hclog.Logger
}

// newCLILogger creates the verbose-mode logger writing to stderr.
func newCLILogger() vapi.Logger {
	return &hclogAdapter{
		logger: hclog.New(&hclog.LoggerOptions{
			Name:   "vonix",
			Level:  hclog.Debug,
			Output: os.Stderr,
		}),
	}
}

func (a *hclogAdapter) Debug(msg string, fields map[string]interface{}) {
	a.logger.Debug(msg, flatten(fields)...)
}

func (a *hclogAdapter) Info(msg string, fields map[string]interface{}) {
	a.logger.Info(msg, flatten(fields)...)
}

func (a *hclogAdapter) Warn(msg string, fields map[string]interface{}) {
	a.logger.Warn(msg, flatten(fields)...)
}

func (a *hclogAdapter) Error(msg string, fields map[string]interface{}) {
	a.logger.Error(msg, flatten(fields)...)
}

// flatten converts a field map into hclog's alternating key/value form.
func flatten(fields map[string]interface{}) []interface{} {
	args := make([]interface{}, 0, len(fields)*2)

	for key, value := range fields {
		args = append(args, key, value)
	}

	return args
}
