package gstportal

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"gstscan-backend/lib/gstin"
)

var tracer = otel.Tracer("scrapers/gstportal")

// Scrape runs the full pipeline for one identifier: validate, fetch
// with retries, parse into a record. It always returns exactly one
// Outcome and never issues a request for an invalid identifier.
func (c *Client) Scrape(ctx context.Context, raw string) Outcome {
	ctx, span := tracer.Start(ctx, "client:Scrape")
	defer span.End()
	span.SetAttributes(attribute.String("gstin", raw))

	id := gstin.Normalize(raw)
	if !gstin.Valid(id) {
		slog.WarnContext(ctx, "invalid gstin format", "gstin", raw)
		span.SetStatus(codes.Error, ErrInvalidGstin.Error())
		return Outcome{Gstin: raw, Kind: OutcomeInvalid, Err: ErrInvalidGstin}
	}

	var lastErr error
	for attempt := 1; attempt <= c.opts.MaxRetries; attempt++ {
		res, err := c.fetch(ctx, id)
		switch {
		case err != nil && !transient(err):
			span.RecordError(err)
			span.SetStatus(codes.Error, "unexpected error")
			slog.ErrorContext(ctx, "unexpected error, giving up",
				"gstin", id, "attempt", attempt, "err", err)
			return Outcome{Gstin: id, Kind: OutcomeUnexpected, Attempts: attempt, Err: err}

		case err != nil:
			lastErr = err

		case !res.IsSuccess():
			lastErr = fmt.Errorf("portal returned status %d", res.StatusCode())

		default:
			record, err := c.parse(ctx, id, res.Body())
			if err != nil {
				// unparseable body is outside the anticipated categories
				span.RecordError(err)
				span.SetStatus(codes.Error, "failed to parse portal response")
				return Outcome{Gstin: id, Kind: OutcomeUnexpected, Attempts: attempt, Err: err}
			}
			slog.InfoContext(ctx, "scraped taxpayer record", "gstin", id, "attempt", attempt)
			return Outcome{Gstin: id, Kind: OutcomeSucceeded, Record: record, Attempts: attempt}
		}

		slog.WarnContext(ctx, "fetch attempt failed",
			"gstin", id,
			"attempt", attempt,
			"max_retries", c.opts.MaxRetries,
			"err", lastErr,
		)
		if attempt < c.opts.MaxRetries {
			c.sleep(ctx, c.opts.RetryDelayMin, c.opts.RetryDelayMax)
		}
	}

	err := fmt.Errorf("%w after %d attempts: %v", ErrExhaustedRetries, c.opts.MaxRetries, lastErr)
	span.RecordError(err)
	span.SetStatus(codes.Error, "retries exhausted")
	return Outcome{Gstin: id, Kind: OutcomeExhausted, Attempts: c.opts.MaxRetries, Err: err}
}

func (c *Client) fetch(ctx context.Context, id string) (*resty.Response, error) {
	return c.http.R().
		SetContext(ctx).
		SetHeaders(c.identity.Headers()).
		SetQueryParam("gstin", id).
		Get(searchPath)
}

// parse builds the full record from the response body, one descriptor
// at a time. Individual field misses degrade to sentinels, only an
// unreadable document is an error.
func (c *Client) parse(ctx context.Context, id string, body []byte) (*Record, error) {
	ctx, span := tracer.Start(ctx, "client:parse")
	defer span.End()

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}

	fields := make(map[string]string, len(scalarDescriptors))
	for _, desc := range scalarDescriptors {
		fields[desc.Field] = extractScalar(doc, desc)
	}

	record := &Record{
		Gstin:              id,
		LegalName:          fields["legal_name"],
		TradeName:          fields["trade_name"],
		RegistrationDate:   fields["registration_date"],
		TaxpayerType:       fields["taxpayer_type"],
		Status:             fields["status"],
		State:              fields["state"],
		StateJurisdiction:  fields["state_jurisdiction"],
		CentreJurisdiction: fields["centre_jurisdiction"],
		Constitution:       fields["constitution"],
		NatureOfBusiness:   fields["nature_of_business"],
		CoreBusiness:       fields["core_business_activity"],
		CancellationDate:   fields["cancellation_date"],
		LastUpdated:        fields["last_updated"],
		EInvoiceStatus:     fields["einvoice_status"],
		Filings:            extractFilings(doc),
		GoodsServices:      extractGoodsServices(doc),
		ScrapedAt:          Timestamp(time.Now()),
		SchemaVersion:      SchemaVersion,
	}
	return record, nil
}
