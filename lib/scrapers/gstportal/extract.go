package gstportal

import (
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antzucaro/matchr"

	"gstscan-backend/lib/htmlutil"
)

// The portal page layout is not contractually stable, so every strategy
// here is best-effort: a failed or panicking lookup degrades to the
// Unknown sentinel (scalars) or an empty table (sections), never to an
// error on the whole record.

// JaroWinkler floor for treating node text as a match for a label
// phrase. High enough that "Trade Name" does not claim "Legal Name".
const labelSimilarity = 0.92

// elements worth scanning when hunting for a label phrase
const labelNodes = "td, th, label, strong, b, span, p, dt, div"

func extractScalar(doc *goquery.Document, desc Descriptor) (value string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Debug("extraction strategy panicked", "field", desc.Field, "panic", r)
			value = Unknown
		}
	}()

	if v := byAnchor(doc, desc.Anchors); v != "" {
		return v
	}
	if v := byLabel(doc, desc.Labels); v != "" {
		return v
	}
	return Unknown
}

// byAnchor looks the field up by element id, then by class name.
func byAnchor(doc *goquery.Document, anchors []string) string {
	for _, anchor := range anchors {
		for _, selector := range []string{"#" + anchor, "." + anchor} {
			text := htmlutil.Clean(doc.Find(selector).First().Text())
			if text != "" {
				return strings.Trim(text, ": ")
			}
		}
	}
	return ""
}

// byLabel locates a node carrying the label phrase and reads the value
// from, in order: the next sibling element, the label node's own
// trailing text, the parent container's trailing text.
func byLabel(doc *goquery.Document, labels []string) string {
	for _, label := range labels {
		sel := findLabelNode(doc, label)
		if sel == nil {
			continue
		}

		if v := htmlutil.Clean(sel.Next().Text()); v != "" {
			return strings.Trim(v, ": ")
		}
		if len(sel.Nodes) > 0 {
			if v := htmlutil.TrailingText(sel.Nodes[0], label); v != "" && !strings.EqualFold(v, label) {
				return v
			}
		}
		parent := sel.Parent()
		if len(parent.Nodes) > 0 {
			if v := htmlutil.TrailingText(parent.Nodes[0], label); v != "" && !strings.EqualFold(v, label) {
				return v
			}
		}
	}
	return ""
}

// findLabelNode returns the shortest node whose text contains or
// closely resembles the label, shortest so a leaf beats the layout
// container that wraps it.
func findLabelNode(doc *goquery.Document, label string) *goquery.Selection {
	lower := strings.ToLower(label)

	var best *goquery.Selection
	bestLen := 0
	doc.Find(labelNodes).Each(func(_ int, s *goquery.Selection) {
		text := htmlutil.Clean(s.Text())
		// a node much longer than the label is a container, not a label
		if text == "" || len(text) > len(label)+64 {
			return
		}

		tl := strings.ToLower(text)
		match := strings.Contains(tl, lower) ||
			matchr.JaroWinkler(strings.Trim(tl, ": "), lower, true) >= labelSimilarity
		if !match {
			return
		}
		// <= so the leaf wins over a wrapper carrying identical text
		if best == nil || len(text) <= bestLen {
			best = s
			bestLen = len(text)
		}
	})
	return best
}

// sectionTable finds the table following a heading/label that carries
// one of the section marker phrases.
func sectionTable(doc *goquery.Document, markers []string) *goquery.Selection {
	for _, marker := range markers {
		lower := strings.ToLower(marker)

		var table *goquery.Selection
		doc.Find("h1, h2, h3, h4, h5, caption, th, strong, b, label, p, span, div").
			EachWithBreak(func(_ int, s *goquery.Selection) bool {
				text := strings.ToLower(htmlutil.Clean(s.Text()))
				if text == "" || len(text) > len(marker)+32 || !strings.Contains(text, lower) {
					return true
				}

				// marker may sit inside the table itself (caption, header cell)
				if t := s.Closest("table"); t.Length() > 0 {
					table = t
					return false
				}
				if t := s.NextAllFiltered("table").First(); t.Length() > 0 {
					table = t
					return false
				}
				if t := s.Parent().NextAllFiltered("table").First(); t.Length() > 0 {
					table = t
					return false
				}
				return true
			})
		if table != nil {
			return table
		}
	}
	return nil
}

// tableRows reads data rows, skipping header rows, dropping any row
// with fewer than minCells cells.
func tableRows(table *goquery.Selection, minCells int) [][]string {
	hasHeaderCells := table.Find("th").Length() > 0

	var rows [][]string
	table.Find("tr").Each(func(i int, tr *goquery.Selection) {
		if hasHeaderCells && tr.Find("th").Length() > 0 {
			return
		}
		if !hasHeaderCells && i == 0 {
			return
		}

		var cells []string
		tr.Find("td").Each(func(_ int, td *goquery.Selection) {
			cells = append(cells, htmlutil.Clean(td.Text()))
		})
		if len(cells) >= minCells {
			rows = append(rows, cells)
		}
	})
	return rows
}

func extractFilings(doc *goquery.Document) (filings []ReturnFiling) {
	filings = []ReturnFiling{}
	defer func() {
		if r := recover(); r != nil {
			slog.Debug("filing section extraction panicked", "panic", r)
			filings = []ReturnFiling{}
		}
	}()

	table := sectionTable(doc, filingSectionMarkers)
	if table == nil {
		return filings
	}
	for _, cells := range tableRows(table, 3) {
		filings = append(filings, ReturnFiling{
			FinancialYear: cells[0],
			TaxPeriod:     cells[1],
			Status:        cells[2],
		})
	}
	return filings
}

func extractGoodsServices(doc *goquery.Document) (goods []GoodsService) {
	goods = []GoodsService{}
	defer func() {
		if r := recover(); r != nil {
			slog.Debug("goods section extraction panicked", "panic", r)
			goods = []GoodsService{}
		}
	}()

	table := sectionTable(doc, goodsSectionMarkers)
	if table == nil {
		return goods
	}
	for _, cells := range tableRows(table, 2) {
		goods = append(goods, GoodsService{
			HSNCode:     cells[0],
			Description: cells[1],
		})
	}
	return goods
}
