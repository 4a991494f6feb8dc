package gstscan

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gstscan-backend/lib/scrapers/gstportal"
)

var csvHeader = []string{
	"gstin", "legal_name", "trade_name", "registration_date",
	"taxpayer_type", "status", "state", "state_jurisdiction",
	"centre_jurisdiction", "constitution", "nature_of_business",
	"core_business_activity", "cancellation_date", "last_updated",
	"einvoice_status", "filings", "goods_services", "scraped_at",
	"schema_version",
}

// SaveResults writes the batch records into the configured output
// directory as gst_data_<timestamp>.csv and/or .json per the configured
// format. Returns the written paths.
func (s *Service) SaveResults(records []gstportal.Record) ([]string, error) {
	if len(records) == 0 {
		slog.Warn("no records to save")
		return nil, nil
	}

	stamp := gstportal.Timestamp(s.now())
	base := filepath.Join(s.cfg.OutputDir, "gst_data_"+stamp)

	var paths []string
	switch s.cfg.OutputFormat {
	case "csv":
		paths = append(paths, base+".csv")
	case "json":
		paths = append(paths, base+".json")
	case "both":
		paths = append(paths, base+".csv", base+".json")
	default:
		return nil, fmt.Errorf("unsupported output format %q", s.cfg.OutputFormat)
	}

	for _, path := range paths {
		var err error
		if filepath.Ext(path) == ".csv" {
			err = writeCSV(path, records)
		} else {
			err = writeJSON(path, records)
		}
		if err != nil {
			return nil, err
		}
		slog.Info("data saved", "path", path)
	}
	return paths, nil
}

func writeCSV(path string, records []gstportal.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		if err := w.Write(csvRow(r)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// list-valued cells carry the JSON encoding of the list so the CSV
// stays flat without losing structure
func csvRow(r gstportal.Record) []string {
	filings, _ := json.Marshal(r.Filings)
	goods, _ := json.Marshal(r.GoodsServices)

	return []string{
		r.Gstin, r.LegalName, r.TradeName, r.RegistrationDate,
		r.TaxpayerType, r.Status, r.State, r.StateJurisdiction,
		r.CentreJurisdiction, r.Constitution, r.NatureOfBusiness,
		r.CoreBusiness, r.CancellationDate, r.LastUpdated,
		r.EInvoiceStatus, string(filings), string(goods), r.ScrapedAt,
		fmt.Sprintf("%d", r.SchemaVersion),
	}
}

func writeJSON(path string, records []gstportal.Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
