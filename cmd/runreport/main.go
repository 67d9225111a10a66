// Package main provides the CLI entry point for runreport.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/runreport-go/internal/config"
	"github.com/ukaji3/runreport-go/internal/logging"
	"github.com/ukaji3/runreport-go/pkg/runreport"
	"github.com/ukaji3/runreport-go/pkg/runreport/grid"
	"github.com/ukaji3/runreport-go/pkg/runreport/models"
	"github.com/ukaji3/runreport-go/pkg/runreport/output"
	"github.com/ukaji3/runreport-go/pkg/runreport/parser"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	outputPath string
	pretty     bool
	format     string
	jobs       int
	configPath string
	verbose    bool
	sheetsDir  string

	cfg    *config.Config
	logger *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "runreport",
		Short: "Extract run metrics from sequencing report spreadsheets",
		Long: `runreport scans sequencing-run report workbooks (.xls, .xlsb, .xlsx)
for labelled metrics such as cycles, density, yield and Q30, and infers the
run date and application from the file name (YYMMDD_..._<application>).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
			logger, err = logging.New(cfg.Logging, verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every recognised label")

	parseCmd := &cobra.Command{
		Use:   "parse [report...]",
		Short: "Extract the 13 run metrics from one or more reports",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runParse,
	}
	parseCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	parseCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	parseCmd.Flags().StringVar(&format, "format", "", "Output format: json, csv, tsv (default from config)")
	parseCmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "Reports parsed in parallel (default from config)")

	inspectCmd := &cobra.Command{
		Use:   "inspect [report]",
		Short: "Dump the cell grid and the labels the scanner recognises",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	inspectCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	inspectCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	inspectCmd.Flags().StringVar(&sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")

	formatsCmd := &cobra.Command{
		Use:   "formats",
		Short: "List supported file extensions",
		Args:  cobra.NoArgs,
		RunE:  runFormats,
	}

	rootCmd.AddCommand(parseCmd, inspectCmd, formatsCmd)
	return rootCmd
}

// extractOptions maps the loaded configuration onto library options.
func extractOptions() (runreport.Options, error) {
	opts := runreport.DefaultOptions()
	cutoff, err := cfg.PhixCutoffDate()
	if err != nil {
		return opts, fmt.Errorf("invalid phix cutoff: %w", err)
	}
	opts.PhixCutoff = cutoff
	opts.MatchCutoff = cfg.Extract.MatchCutoff
	opts.Logger = logger
	if len(cfg.Extract.Origins) > 0 {
		opts.Origins = make(map[grid.Format]grid.Origin, len(cfg.Extract.Origins))
		for name, o := range cfg.Extract.Origins {
			opts.Origins[grid.Format(name)] = grid.Origin{Row: o.Row, Col: o.Col}
		}
	}
	return opts, nil
}

func runParse(cmd *cobra.Command, args []string) error {
	opts, err := extractOptions()
	if err != nil {
		return err
	}

	if format == "" {
		format = cfg.Extract.Output
	}
	outFormat, err := output.ParseFormat(format)
	if err != nil {
		return err
	}
	if jobs <= 0 {
		jobs = cfg.Extract.Jobs
	}

	records, failed := parseAll(args, opts, jobs)

	if err := writeOutput(cmd.OutOrStdout(), func(w io.Writer) error {
		return output.Write(w, records, outFormat, pretty)
	}); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d reports could not be parsed", failed, len(args))
	}
	return nil
}

// parseAll parses every path with at most limit reports in flight.
// Records keep the argument order; failures are logged and skipped.
func parseAll(paths []string, opts runreport.Options, limit int) ([]*models.ReportRecord, int) {
	results := make([]*models.ReportRecord, len(paths))
	errs := make([]error, len(paths))

	var g errgroup.Group
	g.SetLimit(limit)
	for i, path := range paths {
		g.Go(func() error {
			results[i], errs[i] = runreport.Parse(path, opts)
			return nil
		})
	}
	_ = g.Wait()

	var (
		records []*models.ReportRecord
		failed  int
	)
	for i, err := range errs {
		if err != nil {
			logger.Error("report skipped", zap.String("path", paths[i]), zap.Error(err))
			failed++
			continue
		}
		records = append(records, results[i])
	}
	return records, failed
}

func runInspect(cmd *cobra.Command, args []string) error {
	opts, err := extractOptions()
	if err != nil {
		return err
	}

	inputPath := args[0]
	wb, err := runreport.OpenGrid(inputPath, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	view := parser.Inspect(filepath.Base(inputPath), wb)

	if sheetsDir != "" {
		if err := writeSheetFiles(view, sheetsDir); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
		if outputPath == "" {
			return nil
		}
	}

	jsonData, err := output.WorkbookToJSON(view, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeOutput(cmd.OutOrStdout(), func(w io.Writer) error {
		_, err := fmt.Fprintln(w, string(jsonData))
		return err
	})
}

func runFormats(cmd *cobra.Command, args []string) error {
	for _, ext := range grid.Extensions() {
		f, _ := grid.DetectFormat("x" + ext)
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", ext, f)
	}
	return nil
}

// writeOutput sends fn's output to --output, or to stdout when unset.
func writeOutput(stdout io.Writer, fn func(io.Writer) error) error {
	if outputPath == "" {
		return fn(stdout)
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeSheetFiles(wb *models.WorkbookData, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for i := range wb.Sheets {
		sheet := &wb.Sheets[i]
		jsonData, err := output.SheetToJSON(sheet, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, sanitizeFilename(sheet.Name, i)+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}

// sanitizeFilename makes a sheet name safe as a file name.
func sanitizeFilename(name string, index int) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
	if name == "" {
		return fmt.Sprintf("sheet%d", index+1)
	}
	return name
}
