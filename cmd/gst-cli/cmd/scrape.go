package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"gstscan-backend/lib/serviceutil"
	"gstscan-backend/lib/telemetry"
	"gstscan-backend/services/gstscan"
)

func init() {
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape [gstin...]",
	Short: "Scrape taxpayer records for the given GSTINs and save them to disk.",
	Long: "Scrapes each GSTIN in order with a randomized delay between requests. " +
		"With no arguments a built-in sample list is used.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := gstscan.LoadConfig()
		if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}
		telemetry.InitSlog(flagDebug || cfg.Debug)

		ctx := context.Background()
		if err := telemetry.SetupFromEnv(ctx, "gst-cli"); err != nil {
			slog.Warn("telemetry setup failed", "err", err)
		}
		defer telemetry.Shutdown(ctx)

		if flagDemo {
			cfg.DemoMode = true
		}
		if flagFormat != "" {
			cfg.OutputFormat = flagFormat
		}
		if flagOutputDir != "" {
			cfg.OutputDir = flagOutputDir
		}

		svc, err := gstscan.New(cfg)
		if err != nil {
			serviceutil.Fatal("failed to initialize scraper", err)
		}

		ids := args
		if len(ids) == 0 {
			slog.Info("no identifiers given, using the sample list")
			ids = gstscan.DemoGstins()
		}

		result := svc.Run(ctx, ids)
		renderOutcomes(result)

		records := result.Records()
		paths, err := svc.SaveResults(records)
		if err != nil {
			serviceutil.Fatal("failed to save results", err)
		}
		svc.NotifyBatchComplete(result, paths)

		if len(records) == 0 {
			slog.Error("no records scraped")
			os.Exit(1)
		}
	},
}

func renderOutcomes(result gstscan.BatchResult) {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)

	t.AppendHeader(table.Row{"GSTIN", "Outcome", "Attempts", "Legal Name", "Status"})
	for _, o := range result.Outcomes {
		legalName, status := "", ""
		if o.Record != nil {
			legalName = o.Record.LegalName
			status = o.Record.Status
		}
		t.AppendRow(table.Row{o.Gstin, o.Kind.String(), o.Attempts, legalName, status})
	}
	t.AppendFooter(table.Row{
		"", "", "",
		"succeeded", result.Succeeded,
	})
	t.Render()
}
