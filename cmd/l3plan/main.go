// SPDX-License-Identifier:Apache-2.0

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/l3plan/l3plan/internal/configfile"
	"github.com/l3plan/l3plan/internal/conversion"
	"github.com/l3plan/l3plan/internal/logging"
)

const (
	formatJSON    = "json"
	formatSummary = "summary"
)

func main() {
	var (
		configPath = flag.String("config", "l3out.yaml", "Path to the L3Out topology file")
		format     = flag.String("format", formatJSON, "Output format, one of [json, summary]")
		logLevel   = flag.String("log-level", logging.LevelInfo, "Log level, one of [debug, info, warn, error]")
		logFormat  = flag.String("log-format", logging.FormatText, "Log format, one of [json, text]")
	)
	flag.Parse()

	if _, err := logging.New(*logLevel, *logFormat); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg, err := configfile.ReadFromFile(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err, "config_path", *configPath)
		os.Exit(1)
	}

	plan, err := conversion.APItoPlan(*cfg)
	if err != nil {
		slog.Error("failed to derive plan", "error", err, "l3out", cfg.Name)
		os.Exit(1)
	}

	slog.Debug("derived plan", "l3out", plan.Name, "nodes", len(plan.Nodes),
		"static_routes", len(plan.StaticRoutes), "external_subnets", len(plan.ExternalSubnets))

	switch *format {
	case formatJSON:
		out, err := json.MarshalIndent(plan, "", "  ")
		if err != nil {
			slog.Error("failed to encode plan", "error", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
	case formatSummary:
		out, err := plan.Summary()
		if err != nil {
			slog.Error("failed to render plan summary", "error", err)
			os.Exit(1)
		}
		fmt.Print(out)
	default:
		slog.Error("invalid output format", "format", *format)
		os.Exit(1)
	}
}
