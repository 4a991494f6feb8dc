package gstportal

// Descriptor names one scalar field on the taxpayer page and the clues
// used to locate it. Anchors are element ids or class names the portal
// has used for the field, Labels are the visible label phrases tried
// when no anchor survives a layout change.
type Descriptor struct {
	Field   string
	Anchors []string
	Labels  []string
}

// The portal's markup is not versioned, so each field carries every id
// observed so far plus its label text. Order within a descriptor is
// preference order.
var scalarDescriptors = []Descriptor{
	{
		Field:   "legal_name",
		Anchors: []string{"lgnm"},
		Labels:  []string{"Legal Name of Business", "Legal Name"},
	},
	{
		Field:   "trade_name",
		Anchors: []string{"tradeNam", "tradeName"},
		Labels:  []string{"Trade Name"},
	},
	{
		Field:   "registration_date",
		Anchors: []string{"rgdt"},
		Labels:  []string{"Date of Registration", "Registration Date"},
	},
	{
		Field:   "taxpayer_type",
		Anchors: []string{"dty"},
		Labels:  []string{"Taxpayer Type", "Type of Taxpayer"},
	},
	{
		Field:   "status",
		Anchors: []string{"sts"},
		Labels:  []string{"GSTIN / UIN Status", "GSTIN Status", "Status"},
	},
	{
		Field:   "state",
		Anchors: []string{"stcd"},
		Labels:  []string{"State"},
	},
	{
		Field:   "state_jurisdiction",
		Anchors: []string{"stj"},
		Labels:  []string{"State Jurisdiction"},
	},
	{
		Field:   "centre_jurisdiction",
		Anchors: []string{"ctj"},
		Labels:  []string{"Centre Jurisdiction", "Central Jurisdiction"},
	},
	{
		Field:   "constitution",
		Anchors: []string{"ctb"},
		Labels:  []string{"Constitution of Business"},
	},
	{
		Field:   "nature_of_business",
		Anchors: []string{"nba"},
		Labels:  []string{"Nature of Business Activities", "Nature of Business"},
	},
	{
		Field:   "core_business_activity",
		Anchors: []string{"cbd"},
		Labels:  []string{"Nature of Core Business Activity", "Core Business Activity"},
	},
	{
		Field:   "cancellation_date",
		Anchors: []string{"cxdt"},
		Labels:  []string{"Date of Cancellation", "Cancellation Date"},
	},
	{
		Field:   "last_updated",
		Anchors: []string{"lstupdt"},
		Labels:  []string{"Last Updated Date", "Last Updated"},
	},
	{
		Field:   "einvoice_status",
		Anchors: []string{"einvoiceStatus"},
		Labels:  []string{"e-Invoice Status", "eInvoice Status"},
	},
}

// Section marker phrases preceding the two repeated tables.
var filingSectionMarkers = []string{"Return Filing Details", "Return Filing", "Filing Details"}
var goodsSectionMarkers = []string{"Goods and Services", "Goods & Services", "HSN Details", "Dealing In"}
