// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/uaparser

// Command uaparse classifies user-agent strings with a uap-core catalog
// and prints one JSON result per input line.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/woozymasta/uaparser"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("uaparse failed")
		os.Exit(1)
	}
}

// newRootCmd builds the uaparse root command.
func newRootCmd() *cobra.Command {
	var (
		regexesPath string
		facet       string
		useSet      bool
		verbosity   int
	)

	cmd := &cobra.Command{
		Use:   "uaparse [user-agent ...]",
		Short: "Classify user-agent strings with a uap-core rule catalog",
		Long: `uaparse compiles a uap-core regexes.yaml catalog and classifies
user-agent strings into client, OS and device facets. Inputs come from
arguments, or from stdin lines when no arguments are given. Results are
printed as JSON, one object per input.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(regexesPath, facet, useSet, args)
		},
	}

	cmd.Flags().StringVarP(&regexesPath, "regexes", "r", "regexes.yaml", "Path to the uap-core regexes.yaml catalog")
	cmd.Flags().StringVarP(&facet, "facet", "f", "all", "Facet to report: all, client, os or device")
	cmd.Flags().BoolVar(&useSet, "set", false, "Use the set-accelerated matching strategy")
	cmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v DEBUG, -vv TRACE)")

	return cmd
}

// setupLogger configures the global zerolog logger for stderr output.
func setupLogger(verbosity int) {
	switch verbosity {
	case 0:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	}).With().Timestamp().Logger()
}

// run compiles the catalog and classifies every input.
func run(regexesPath string, facet string, useSet bool, args []string) error {
	start := time.Now()
	parser, err := uaparser.NewFromFile(regexesPath)
	if err != nil {
		return fmt.Errorf("build parser: %w", err)
	}

	log.Debug().
		Str("regexes", regexesPath).
		Dur("elapsed", time.Since(start)).
		Msg("parser compiled")

	enc := json.NewEncoder(os.Stdout)

	if len(args) > 0 {
		for _, ua := range args {
			if err := emit(enc, parser, facet, useSet, ua); err != nil {
				return err
			}
		}

		return nil
	}

	s := bufio.NewScanner(os.Stdin)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for s.Scan() {
		line := s.Text()
		if line == "" {
			continue
		}

		if err := emit(enc, parser, facet, useSet, line); err != nil {
			return err
		}
	}

	if err := s.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	return nil
}

// emit classifies one user agent and writes the selected facet as JSON.
func emit(enc *json.Encoder, parser *uaparser.Parser, facet string, useSet bool, ua string) error {
	var result any

	switch facet {
	case "all":
		if useSet {
			result = uaparser.Client{
				UserAgent: parser.ParseUserAgentSet(ua),
				OS:        parser.ParseOSSet(ua),
				Device:    parser.ParseDeviceSet(ua),
			}
		} else {
			result = parser.Parse(ua)
		}
	case "client":
		if useSet {
			result = parser.ParseUserAgentSet(ua)
		} else {
			result = parser.ParseUserAgent(ua)
		}
	case "os":
		if useSet {
			result = parser.ParseOSSet(ua)
		} else {
			result = parser.ParseOS(ua)
		}
	case "device":
		if useSet {
			result = parser.ParseDeviceSet(ua)
		} else {
			result = parser.ParseDevice(ua)
		}
	default:
		return fmt.Errorf("unknown facet %q (want all, client, os or device)", facet)
	}

	return enc.Encode(result)
}
