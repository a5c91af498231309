package main

import (
	"github.com/chrisguillory/slack-cli/pkg/auth"
	"github.com/chrisguillory/slack-cli/pkg/client"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// setup builds the logger once flags are parsed. Logs go to stderr so
// they never mix with command output.
func setup(cmd *cobra.Command, args []string) error {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verboseOutput {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	var err error
	logger, err = cfg.Build()
	return err
}

// newClient loads credentials and builds the API client. Missing tokens
// fail here, before any network activity.
func newClient() (*client.Client, error) {
	creds, err := auth.Load()
	if err != nil {
		return nil, err
	}
	return client.New(creds, logger), nil
}
