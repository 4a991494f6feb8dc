package server

import (
	"html/template"

	"gstscan-backend/lib/scrapers/gstportal"
)

type indexData struct {
	Flash    string
	DemoMode bool
}

type resultData struct {
	Record gstportal.Record
	Paths  []string
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>GST Taxpayer Lookup</title></head>
<body>
  <h1>GST Taxpayer Lookup</h1>
  {{if .DemoMode}}<p><em>Demo mode is on, results come from sample data.</em></p>{{end}}
  {{if .Flash}}<p class="flash">{{.Flash}}</p>{{end}}
  <form method="post" action="/scrape">
    <label for="gstin">GSTIN</label>
    <input type="text" id="gstin" name="gstin" maxlength="15" placeholder="27AAPFU0939F1ZV" required>
    <button type="submit">Look up</button>
  </form>
</body>
</html>
`))

var resultTemplate = template.Must(template.New("result").Parse(`<!DOCTYPE html>
<html>
<head><title>Result: {{.Record.Gstin}}</title></head>
<body>
  <h1>{{.Record.LegalName}}</h1>
  <table>
    <tr><td>GSTIN</td><td>{{.Record.Gstin}}</td></tr>
    <tr><td>Trade Name</td><td>{{.Record.TradeName}}</td></tr>
    <tr><td>Registration Date</td><td>{{.Record.RegistrationDate}}</td></tr>
    <tr><td>Taxpayer Type</td><td>{{.Record.TaxpayerType}}</td></tr>
    <tr><td>Status</td><td>{{.Record.Status}}</td></tr>
    <tr><td>State</td><td>{{.Record.State}}</td></tr>
    <tr><td>State Jurisdiction</td><td>{{.Record.StateJurisdiction}}</td></tr>
    <tr><td>Centre Jurisdiction</td><td>{{.Record.CentreJurisdiction}}</td></tr>
    <tr><td>Constitution</td><td>{{.Record.Constitution}}</td></tr>
    <tr><td>Scraped At</td><td>{{.Record.ScrapedAt}}</td></tr>
  </table>

  {{if .Record.Filings}}
  <h2>Return Filings</h2>
  <table>
    <tr><th>Financial Year</th><th>Tax Period</th><th>Status</th></tr>
    {{range .Record.Filings}}
    <tr><td>{{.FinancialYear}}</td><td>{{.TaxPeriod}}</td><td>{{.Status}}</td></tr>
    {{end}}
  </table>
  {{end}}

  {{if .Paths}}
  <h2>Saved To</h2>
  <ul>{{range .Paths}}<li>{{.}}</li>{{end}}</ul>
  {{end}}

  <p><a href="/">Look up another</a></p>
</body>
</html>
`))
