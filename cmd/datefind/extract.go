// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/meshintel/datefind/internal/logging"
	"github.com/meshintel/datefind/pkg/datefind"
	"github.com/meshintel/datefind/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract [text]",
	Short: "Extract date expressions from text",
	Long: `Extract scans the given text (or stdin when no text argument is
supplied) for date expressions and prints the resolved dates selected
by the configured returns mode.

With --one the command prints exactly one result; multi-result modes
are downgraded first (all selects the first match, earliest selects
against the chronologically sorted sequence).`,
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	logFormat, _ := rootCmd.PersistentFlags().GetString("log-format")
	verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
	logger := logging.Setup(logFormat, verbose)

	text, err := inputText(args)
	if err != nil {
		return err
	}

	parser, err := datefind.New(instanceConfig())
	if err != nil {
		return err
	}
	override := overrideFromFlags(cmd)

	one, _ := cmd.Flags().GetBool("one")
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")

	if one {
		result, ok, err := parser.ExtractOne(text, override)
		if err != nil {
			return err
		}
		if !ok {
			logger.Info().Msg("no date expressions found")
			fmt.Println("no result")
			return nil
		}
		return printResults([]types.Result{result}, format, output)
	}

	results, err := parser.ExtractAll(text, override)
	if err != nil {
		return err
	}
	logger.Debug().Int("matches", len(results)).Msg("extraction complete")
	return printResults(results, format, output)
}

// inputText joins the positional arguments, or reads stdin when none
// are given so the command composes in a pipeline.
func inputText(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// instanceConfig builds the parser defaults from viper (config file and
// DATEFIND_* environment); empty fields fall back to library defaults.
func instanceConfig() types.Config {
	return types.Config{
		Returns:  types.Returns(viper.GetString("returns")),
		Prefers:  types.Prefers(viper.GetString("prefers")),
		TimeZone: viper.GetString("time_zone"),
	}
}

// overrideFromFlags collects per-call overrides; unset flags leave the
// instance configuration in effect.
func overrideFromFlags(cmd *cobra.Command) *types.Config {
	var override types.Config
	if v, _ := cmd.Flags().GetString("returns"); v != "" {
		override.Returns = types.Returns(v)
	}
	if v, _ := cmd.Flags().GetString("prefers"); v != "" {
		override.Prefers = types.Prefers(v)
	}
	if v, _ := cmd.Flags().GetString("time-zone"); v != "" {
		override.TimeZone = v
	}
	return &override
}

// printResults writes the selected dates to stdout. Text output prints
// one representation per line; json and yaml marshal the full results.
func printResults(results []types.Result, format, output string) error {
	switch output {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "yaml":
		data, err := yaml.Marshal(results)
		if err != nil {
			return fmt.Errorf("marshaling results: %w", err)
		}
		_, err = os.Stdout.Write(data)
		return err
	case "text", "":
		for _, r := range results {
			line, err := formatResult(r, format)
			if err != nil {
				return err
			}
			fmt.Println(line)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output %q: use text, json, or yaml", output)
	}
}

// formatResult renders one result in the requested representation.
func formatResult(r types.Result, format string) (string, error) {
	switch format {
	case "date", "":
		return r.Time.Format(time.RFC3339), nil
	case "text":
		return r.Text, nil
	case "epoch":
		return strconv.FormatInt(r.Epoch(), 10), nil
	default:
		return "", fmt.Errorf("unsupported format %q: use date, text, or epoch", format)
	}
}

func init() {
	extractCmd.Flags().String("returns", "", "selection mode: first, last, earliest, latest, all, all_cron")
	extractCmd.Flags().String("prefers", "", "ambiguity preference: nearest, future, past")
	extractCmd.Flags().String("time-zone", "", `IANA zone identifier, or "floating" for zone-agnostic`)
	extractCmd.Flags().Bool("one", false, "return exactly one result (applies the scalar downgrade)")
	extractCmd.Flags().String("format", "date", "result representation: date, text, or epoch")
	extractCmd.Flags().String("output", "text", "output encoding: text, json, or yaml")

	rootCmd.AddCommand(extractCmd)
}
