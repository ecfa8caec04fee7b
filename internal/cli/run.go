package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/claimsim/config"
	"github.com/rustyeddy/claimsim/internal/id"
	"github.com/rustyeddy/claimsim/report"
	"github.com/rustyeddy/claimsim/sim"
)

func newRunCmd() *cobra.Command {
	var (
		configPath string
		outPath    string
		csvDir     string
		seed       uint64
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate annual losses and export the risk metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.LoadFromFile(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}

			runID := id.New()
			log := logrus.WithFields(logrus.Fields{
				"run_id": runID,
				"years":  cfg.NumYears,
				"lines":  len(cfg.Lines),
				"seed":   cfg.Seed,
			})

			log.Info("running claims simulation")
			records, err := sim.Simulate(cfg, sim.NewSource(cfg.Seed))
			if err != nil {
				return err
			}
			log.Info("simulation complete")

			lineNames := make([]string, len(cfg.Lines))
			for i, line := range cfg.Lines {
				lineNames[i] = line.Name
			}

			summaries, err := report.SummarizeColumns(lineNames, records, cfg.ConfidenceLevels)
			if err != nil {
				return err
			}

			losses := report.LossTable(lineNames, records)
			metrics := report.MetricsTable(summaries, cfg.ConfidenceLevels)

			printTable(cmd.OutOrStdout(), metrics)

			if outPath == "" {
				outPath = fmt.Sprintf("claims_simulation_%s.xlsx", runID)
			}
			if err := report.WriteWorkbook(outPath, losses, metrics); err != nil {
				return fmt.Errorf("write workbook: %w", err)
			}
			log.WithField("path", outPath).Info("workbook written")

			if csvDir != "" {
				if err := os.MkdirAll(csvDir, 0755); err != nil {
					return err
				}
				lossesPath := filepath.Join(csvDir, "annual_losses.csv")
				metricsPath := filepath.Join(csvDir, "risk_metrics.csv")
				if err := report.WriteCSV(lossesPath, losses); err != nil {
					return fmt.Errorf("write losses csv: %w", err)
				}
				if err := report.WriteCSV(metricsPath, metrics); err != nil {
					return fmt.Errorf("write metrics csv: %w", err)
				}
				log.WithField("dir", csvDir).Info("csv files written")
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (YAML or JSON); defaults to the built-in portfolio")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output workbook path (default claims_simulation_<run-id>.xlsx)")
	cmd.Flags().StringVar(&csvDir, "csv-dir", "", "Also write annual_losses.csv and risk_metrics.csv to this directory")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Override the config's random seed")

	return cmd
}

func newInitCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration to a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Default().SaveToFile(outPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "claimsim.yaml", "Where to write the config")

	return cmd
}

func printTable(w io.Writer, t report.Table) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(t.Columns, "\t"))
	for _, row := range t.Rows {
		cells := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			switch v := row[col].(type) {
			case float64:
				cells[i] = fmt.Sprintf("%.2f", v)
			default:
				cells[i] = fmt.Sprint(v)
			}
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	tw.Flush()
}
