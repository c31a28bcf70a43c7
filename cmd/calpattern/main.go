package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cyp0633/calpattern/internal/config"
	"github.com/cyp0633/calpattern/pattern"
)

var (
	configPath string
	cfg        *config.Config
	logger     *slog.Logger
	analyzer   *pattern.Analyzer
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "calpattern",
		Short:         "Compress explicit date lists into weekly patterns",
		Long:          "Infer the significant weekdays, validity interval and exceptions of a set of operating days",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
			if format, _ := cmd.Flags().GetString("format"); format != "" {
				cfg.Output.Format = strings.ToLower(format)
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			level, err := cfg.Log.SlogLevel()
			if err != nil {
				return err
			}
			logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			analyzer = pattern.New(pattern.WithLogger(logger))
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")
	cmd.PersistentFlags().StringP("format", "f", "", "Output format: text, json, ics or xcal")

	cmd.AddCommand(analyzeCmd(), maskCmd(), statsCmd())
	return cmd
}

func analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [file]",
		Short: "Analyze dates read from a file (one YYYY-MM-DD per line, or .ics) or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dates, err := readDates(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			logger.Info("analyzing dates", "count", dates.Len())
			return printPattern(cmd.OutOrStdout(), analyzer.ComputeCalendarPattern(dates), cfg.Output)
		},
	}
}

func maskCmd() *cobra.Command {
	var start string

	cmd := &cobra.Command{
		Use:   "mask BITS...",
		Short: "Analyze a 0/1 mask where bit i marks start+i days as included",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := pattern.ParseDate(start)
			if err != nil {
				return err
			}
			included, err := parseMask(strings.Join(args, ""))
			if err != nil {
				return err
			}

			dates := pattern.MaskToDateSet(startDate, included)
			logger.Info("analyzing mask", "bits", len(included), "count", dates.Len())
			return printPattern(cmd.OutOrStdout(), analyzer.ComputeCalendarPattern(dates), cfg.Output)
		},
	}

	cmd.Flags().StringVarP(&start, "start", "s", "", "Date of the first bit (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("start")
	return cmd
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [file]",
		Short: "Print how the dates are distributed over the weekdays",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dates, err := readDates(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			stats := pattern.ComputeWeekdayStats(dates)
			printStats(cmd.OutOrStdout(), stats, analyzer.SignificantDaysFromStats(stats))
			return nil
		},
	}
}

func readDates(stdin io.Reader, args []string) (pattern.DateSet, error) {
	if len(args) == 0 || args[0] == "-" {
		return parseDateLines(stdin)
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to open date file: %w", err)
	}
	defer f.Close()

	return parseDates(f, args[0])
}
