package gstportal

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestRecordJSONRoundTrip(t *testing.T) {
	original := Record{
		Gstin:              "27AAPFU0939F1ZV",
		LegalName:          "UBER INDIA SYSTEMS PRIVATE LIMITED",
		TradeName:          "UBER",
		RegistrationDate:   "01/07/2017",
		TaxpayerType:       "Regular",
		Status:             "Active",
		State:              "Maharashtra",
		StateJurisdiction:  "Maharashtra - Ward 97",
		CentreJurisdiction: Unknown,
		Constitution:       "Private Limited Company",
		NatureOfBusiness:   Unknown,
		CoreBusiness:       Unknown,
		CancellationDate:   Unknown,
		LastUpdated:        Unknown,
		EInvoiceStatus:     Unknown,
		Filings: []ReturnFiling{
			{FinancialYear: "2023-24", TaxPeriod: "April", Status: "Filed"},
		},
		GoodsServices: []GoodsService{
			{HSNCode: "9964", Description: "Passenger transport services"},
		},
		ScrapedAt:     Timestamp(time.Date(2024, 7, 1, 12, 30, 45, 0, time.UTC)),
		SchemaVersion: SchemaVersion,
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Record
	require.NoError(t, json.Unmarshal(data, &decoded))

	if diff := cmp.Diff(original, decoded); diff != "" {
		t.Fatalf("record changed across JSON round trip (-want +got):\n%s", diff)
	}
}

func TestTimestampFormat(t *testing.T) {
	ts := Timestamp(time.Date(2024, 7, 1, 12, 30, 45, 0, time.UTC))
	require.Equal(t, "20240701_123045", ts)
}
