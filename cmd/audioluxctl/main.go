package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/audiolux/audiolux/client"
)

var serviceURL string
var debug bool

const requestTimeout = 15 * time.Second

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "audioluxctl",
		Short:         "Drive an AudioLux device (or the mock backend) over its web API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: "2006-01-02 15:04:05",
				NoColor:    true,
			})

			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	defaultURL := getEnv("AUDIOLUX_SERVICE_URL", client.BaseURL)
	rootCmd.PersistentFlags().StringVar(&serviceURL, "service-url", defaultURL, "Base URL of the AudioLux web API")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")

	rootCmd.AddCommand(newGetSettingsCmd())
	rootCmd.AddCommand(newSetSettingsCmd())
	rootCmd.AddCommand(newListPatternsCmd())
	rootCmd.AddCommand(newGetPatternCmd())
	rootCmd.AddCommand(newSetPatternCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

func newClient() (*client.Client, error) {
	return client.New(client.WithBaseURL(serviceURL), client.WithDebugLogging(debug))
}

// readCmd builds a command around a client read that resolves to a JSON body.
func readCmd(use, short, op string, call func(context.Context, *client.Client) (json.RawMessage, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			start := time.Now()
			body, err := call(ctx, c)
			elapsed := time.Since(start)
			if err != nil {
				log.Error().Err(err).Str("op", op).Dur("elapsed", elapsed).Msg("request failed")
				return err
			}
			log.Debug().Str("op", op).Dur("elapsed", elapsed).Msg("request completed")
			return printJSON(cmd.OutOrStdout(), body)
		},
	}
}

func newGetSettingsCmd() *cobra.Command {
	return readCmd("get-settings", "Print the current device settings", "get_settings",
		func(ctx context.Context, c *client.Client) (json.RawMessage, error) { return c.GetSettings(ctx) })
}

func newListPatternsCmd() *cobra.Command {
	return readCmd("list-patterns", "Print the patterns the device can run", "list_patterns",
		func(ctx context.Context, c *client.Client) (json.RawMessage, error) { return c.GetPatternList(ctx) })
}

func newGetPatternCmd() *cobra.Command {
	return readCmd("get-pattern", "Print the current pattern", "get_pattern",
		func(ctx context.Context, c *client.Client) (json.RawMessage, error) { return c.GetPattern(ctx) })
}

func newHistoryCmd() *cobra.Command {
	return readCmd("history", "Print and clear the backend request history", "get_history",
		func(ctx context.Context, c *client.Client) (json.RawMessage, error) { return c.GetHistory(ctx) })
}

func newHealthCmd() *cobra.Command {
	return readCmd("health", "Print backend health", "health",
		func(ctx context.Context, c *client.Client) (json.RawMessage, error) { return c.Health(ctx) })
}

func newSetPatternCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-pattern <value>",
		Short: "Select the pattern the device runs",
		Long:  "Select the pattern the device runs. The value is sent as JSON when it parses as JSON, otherwise as a string.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			resp, err := c.SetPattern(ctx, parseValue(args[0]))
			if err != nil {
				log.Error().Err(err).Str("op", "set_pattern").Msg("request failed")
				return err
			}
			log.Debug().Int("status", resp.Status).Str("url", resp.URL).Msg("set pattern completed")
			return printJSON(cmd.OutOrStdout(), resp.Data)
		},
	}
}

func newSetSettingsCmd() *cobra.Command {
	var raw string

	cmd := &cobra.Command{
		Use:   "set-settings",
		Short: "Replace the device settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !json.Valid([]byte(raw)) {
				return fmt.Errorf("--json must be valid JSON")
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			resp, err := c.SetSettings(ctx, json.RawMessage(raw))
			if err != nil {
				log.Error().Err(err).Str("op", "set_settings").Msg("request failed")
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp.Data)
		},
	}
	cmd.Flags().StringVar(&raw, "json", "", `Settings object, e.g. '{"noise":10,"compression":90,"loFreqHue":55,"hiFreqHue":200,"ledCount":50}' (required)`)
	_ = cmd.MarkFlagRequired("json")
	return cmd
}

// parseValue returns v as JSON when it parses, otherwise the raw string.
func parseValue(v string) any {
	if json.Valid([]byte(v)) {
		return json.RawMessage(v)
	}
	return v
}

// printJSON writes body compacted onto a single line.
func printJSON(w io.Writer, body []byte) error {
	if len(body) == 0 {
		_, err := fmt.Fprintln(w, "null")
		return err
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, body); err != nil {
		_, err = fmt.Fprintln(w, string(body))
		return err
	}
	_, err := fmt.Fprintln(w, buf.String())
	return err
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
