package gstscan

import (
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"github.com/jordan-wright/email"
)

// NotifyBatchComplete mails the run tally and output paths when
// notifications are configured. Failures are logged, a broken SMTP
// setup must never fail a finished batch.
func (s *Service) NotifyBatchComplete(result BatchResult, paths []string) {
	cfg := s.cfg.Notify
	if !cfg.Enabled {
		return
	}
	if cfg.SMTPHost == "" || cfg.From == "" || len(cfg.To) == 0 {
		slog.Warn("notifications enabled but smtp config is incomplete")
		return
	}

	e := email.NewEmail()
	e.From = cfg.From
	e.To = cfg.To
	e.Subject = fmt.Sprintf(
		"GST scrape complete: %d succeeded, %d failed",
		result.Succeeded, result.Failed,
	)
	e.Text = []byte(fmt.Sprintf(
		"Batch run finished.\n\nSucceeded: %d\nFailed: %d\n\nOutput files:\n%s\n",
		result.Succeeded,
		result.Failed,
		strings.Join(paths, "\n"),
	))

	addr := fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort)
	err := e.Send(addr, smtp.PlainAuth("", cfg.From, cfg.Password, cfg.SMTPHost))
	if err != nil {
		slog.Error("failed to send batch notification", "err", err)
		return
	}
	slog.Info("batch notification sent", "to", cfg.To)
}
