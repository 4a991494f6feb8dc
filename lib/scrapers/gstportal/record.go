package gstportal

import "time"

// Unknown is the sentinel stored for any scalar field the portal page
// did not yield. Fields are never left empty, so downstream writers can
// rely on every column being present.
const Unknown = "N/A"

// SchemaVersion is stamped on every record so historic exports can be
// told apart after the field set changes.
const SchemaVersion = 2

// ReturnFiling is one row of the return filing table on the taxpayer page.
type ReturnFiling struct {
	FinancialYear string `json:"financial_year"`
	TaxPeriod     string `json:"tax_period"`
	Status        string `json:"status"`
}

// GoodsService is one row of the goods/services dealt in table.
type GoodsService struct {
	HSNCode     string `json:"hsn_code"`
	Description string `json:"description"`
}

// Record is the flat normalized form of one taxpayer page. It is
// created once per successful scrape and not mutated afterwards.
type Record struct {
	Gstin              string `json:"gstin"`
	LegalName          string `json:"legal_name"`
	TradeName          string `json:"trade_name"`
	RegistrationDate   string `json:"registration_date"`
	TaxpayerType       string `json:"taxpayer_type"`
	Status             string `json:"status"`
	State              string `json:"state"`
	StateJurisdiction  string `json:"state_jurisdiction"`
	CentreJurisdiction string `json:"centre_jurisdiction"`
	Constitution       string `json:"constitution"`
	NatureOfBusiness   string `json:"nature_of_business"`
	CoreBusiness       string `json:"core_business_activity"`
	CancellationDate   string `json:"cancellation_date"`
	LastUpdated        string `json:"last_updated"`
	EInvoiceStatus     string `json:"einvoice_status"`

	Filings       []ReturnFiling `json:"filings"`
	GoodsServices []GoodsService `json:"goods_services"`

	ScrapedAt     string `json:"scraped_at"`
	SchemaVersion int    `json:"schema_version"`
}

// Timestamp is the format used for the scraped_at stamp and output
// filenames, matching gst_data_<YYYYMMDD_HHMMSS>.
func Timestamp(t time.Time) string {
	return t.Format("20060102_150405")
}
