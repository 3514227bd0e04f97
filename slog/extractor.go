// Package slog provides log/slog-based logging decorators for the hublinks
// interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hublinks/hublinks"
)

// Ensure LoggingExtractor implements hublinks.Extractor.
var _ hublinks.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with per-pass logging. Every pass
// gets a correlation id so its log lines can be tied together.
type LoggingExtractor struct {
	next   hublinks.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next hublinks.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(html string, pageURL string) (*hublinks.ExtractionResult, error) {
	begin := time.Now()
	id := uuid.NewString()

	result, err := e.next.Extract(html, pageURL)
	if err != nil {
		e.logger.Error("extraction failed",
			"extraction_id", id,
			"url", pageURL,
			"duration", time.Since(begin),
			"err", err,
		)
		return nil, err
	}

	e.logger.Info("extraction",
		"extraction_id", id,
		"url", pageURL,
		"kind", string(result.PageKind),
		"label", result.PageLabel,
		"success", result.Success,
		"items", len(result.Items),
		"duration", time.Since(begin),
	)
	return result, nil
}
