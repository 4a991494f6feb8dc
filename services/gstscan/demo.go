package gstscan

import (
	"time"

	"gstscan-backend/lib/gstin"
	"gstscan-backend/lib/scrapers/gstportal"
)

// Static records served in demo mode, for environments without live
// portal access. Identifiers still go through validation so the demo
// behaves like the real pipeline at the API surface.
var demoCatalog = map[string]gstportal.Record{
	"27AAPFU0939F1ZV": {
		Gstin:              "27AAPFU0939F1ZV",
		LegalName:          "UBER INDIA SYSTEMS PRIVATE LIMITED",
		TradeName:          "UBER",
		RegistrationDate:   "01/07/2017",
		TaxpayerType:       "Regular",
		Status:             "Active",
		State:              "Maharashtra",
		StateJurisdiction:  "Maharashtra - Ward 97",
		CentreJurisdiction: "Mumbai South Commissionerate",
		Constitution:       "Private Limited Company",
		NatureOfBusiness:   "Service Provision",
		CoreBusiness:       "Supplier of Services",
		Filings: []gstportal.ReturnFiling{
			{FinancialYear: "2023-24", TaxPeriod: "April", Status: "Filed"},
			{FinancialYear: "2023-24", TaxPeriod: "May", Status: "Filed"},
		},
		GoodsServices: []gstportal.GoodsService{
			{HSNCode: "9964", Description: "Passenger transport services"},
		},
	},
	"29AABCT1332L1ZN": {
		Gstin:              "29AABCT1332L1ZN",
		LegalName:          "TATA CONSULTANCY SERVICES LIMITED",
		TradeName:          "TCS",
		RegistrationDate:   "01/07/2017",
		TaxpayerType:       "Regular",
		Status:             "Active",
		State:              "Karnataka",
		StateJurisdiction:  "Karnataka - LVO 010",
		CentreJurisdiction: "Bengaluru East Commissionerate",
		Constitution:       "Public Limited Company",
		NatureOfBusiness:   "Service Provision",
		CoreBusiness:       "Supplier of Services",
		Filings: []gstportal.ReturnFiling{
			{FinancialYear: "2023-24", TaxPeriod: "April", Status: "Filed"},
		},
		GoodsServices: []gstportal.GoodsService{
			{HSNCode: "9983", Description: "Information technology services"},
		},
	},
	"27AADCI7885M1ZJ": {
		Gstin:              "27AADCI7885M1ZJ",
		LegalName:          "RELIANCE RETAIL LIMITED",
		TradeName:          "Reliance Retail",
		RegistrationDate:   "01/07/2017",
		TaxpayerType:       "Regular",
		Status:             "Active",
		State:              "Maharashtra",
		StateJurisdiction:  "Maharashtra - Ward 101",
		CentreJurisdiction: "Mumbai East Commissionerate",
		Constitution:       "Public Limited Company",
		NatureOfBusiness:   "Retail Business",
		CoreBusiness:       "Trader",
		Filings: []gstportal.ReturnFiling{
			{FinancialYear: "2023-24", TaxPeriod: "April", Status: "Filed"},
		},
		GoodsServices: []gstportal.GoodsService{
			{HSNCode: "2106", Description: "Food preparations"},
		},
	},
}

// DemoGstins lists the catalog identifiers in a stable order, used as
// the default batch when none is supplied.
func DemoGstins() []string {
	return []string{"27AAPFU0939F1ZV", "29AABCT1332L1ZN", "27AADCI7885M1ZJ"}
}

func demoOutcome(raw string, now time.Time) gstportal.Outcome {
	id := gstin.Normalize(raw)
	if !gstin.Valid(id) {
		return gstportal.Outcome{Gstin: raw, Kind: gstportal.OutcomeInvalid, Err: gstportal.ErrInvalidGstin}
	}

	record, ok := demoCatalog[id]
	if !ok {
		// plausible placeholder for identifiers outside the catalog
		record = gstportal.Record{
			Gstin:            id,
			LegalName:        "DEMO TAXPAYER PRIVATE LIMITED",
			TradeName:        "Demo Taxpayer",
			RegistrationDate: "01/07/2017",
			TaxpayerType:     "Regular",
			Status:           "Active",
			State:            gstportal.Unknown,
			Filings:          []gstportal.ReturnFiling{},
			GoodsServices:    []gstportal.GoodsService{},
		}
	}

	record.Gstin = id
	fillUnknowns(&record)
	record.ScrapedAt = gstportal.Timestamp(now)
	record.SchemaVersion = gstportal.SchemaVersion
	return gstportal.Outcome{
		Gstin:    id,
		Kind:     gstportal.OutcomeSucceeded,
		Record:   &record,
		Attempts: 1,
	}
}

// fillUnknowns keeps demo records on the same contract as scraped ones:
// required fields are always present.
func fillUnknowns(r *gstportal.Record) {
	for _, f := range []*string{
		&r.State, &r.StateJurisdiction, &r.CentreJurisdiction,
		&r.Constitution, &r.NatureOfBusiness, &r.CoreBusiness,
		&r.CancellationDate, &r.LastUpdated, &r.EInvoiceStatus,
	} {
		if *f == "" {
			*f = gstportal.Unknown
		}
	}
	if r.Filings == nil {
		r.Filings = []gstportal.ReturnFiling{}
	}
	if r.GoodsServices == nil {
		r.GoodsServices = []gstportal.GoodsService{}
	}
}
