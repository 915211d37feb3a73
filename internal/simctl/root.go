// Package simctl implements the simctl command tree on top of simsdk.
package simctl

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/simapi/pkg/httpx"
	"github.com/aussiebroadwan/simapi/pkg/simsdk"
	"github.com/aussiebroadwan/simapi/pkg/slogx"
)

// Version is stamped at build time with -ldflags.
var Version = "dev"

type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	logLevel   string

	logger *slog.Logger
	client *simsdk.Client
}

// NewRootCmd builds the simctl command tree writing results to stdout and
// logs to stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:               "simctl",
		Short:             "Manage 1NCE SIM cards from the command line",
		Long:              "simctl queries and updates SIM cards through the 1NCE management API.\nCredentials come from ONCE_CLIENT_ID / ONCE_CLIENT_SECRET, a .env file or --config.",
		Version:           Version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error), overrides LOG_LEVEL")

	root.AddCommand(
		a.tokenCmd(),
		a.simsCmd(),
		a.smsCmd(),
	)
	return root
}

// setup loads configuration and builds the API client before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.logger = slogx.New(slogx.Config{
		Service: "simctl",
		Version: Version,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Output:  a.stderr,
	})

	client := simsdk.NewClient(cfg.ClientID, cfg.ClientSecret)
	client.BaseURL = cfg.BaseURL
	client.APIVersion = cfg.APIVersion
	client.Logger = a.logger
	client.HTTPClient = &http.Client{
		Timeout:   cfg.HTTPTimeout,
		Transport: slogx.NewTransport(http.DefaultTransport, a.logger),
	}
	a.client = client

	a.logger.Debug("configuration loaded",
		"base_url", cfg.BaseURL,
		"api_version", cfg.APIVersion,
		"client_id", cfg.ClientID,
	)
	return nil
}

func (a *app) tokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Fetch an access token and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := a.client.FetchToken(cmd.Context())
			if err != nil {
				return err
			}
			return a.printJSON(map[string]any{
				"access_token": token.Value,
				"token_type":   token.TokenType,
				"expires_in":   token.ExpiresIn,
				"scope":        token.Scope,
			})
		},
	}
}

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// printStatus reports the status code of a mutation and fails on non-2xx.
func (a *app) printStatus(code int) error {
	fmt.Fprintf(a.stdout, "%d %s\n", code, http.StatusText(code))
	if !httpx.IsSuccess(code) {
		return fmt.Errorf("request failed with HTTP status %d", code)
	}
	return nil
}
