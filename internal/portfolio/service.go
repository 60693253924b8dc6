package portfolio

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resume-portfolio/internal/llm"
	"resume-portfolio/internal/shared/metrics"
	"resume-portfolio/internal/shared/telemetry"
)

// Extractor turns PDF bytes into plain text.
type Extractor interface {
	ExtractText(ctx context.Context, data []byte) (string, error)
}

// Service runs the resume-to-portfolio pipeline. It holds no per-request state.
type Service struct {
	Extractor Extractor
	LLM       llm.Completer
	Renderer  *Renderer
}

// Convert renders the portfolio page for a PDF resume. Failures are *Error.
func (s *Service) Convert(ctx context.Context, pdf []byte) ([]byte, error) {
	start := time.Now()
	profile, err := s.Extract(ctx, pdf)
	if err != nil {
		return nil, failed(err, len(pdf))
	}
	html, err := s.render(profile)
	if err != nil {
		return nil, failed(err, len(pdf))
	}

	elapsed := float64(time.Since(start).Microseconds()) / 1000.0
	metrics.IncConversionCompleted()
	metrics.ObserveConversionDurationMs(elapsed)
	telemetry.Info("portfolio.convert.complete", map[string]any{
		"pdf_bytes":   len(pdf),
		"html_bytes":  len(html),
		"duration_ms": elapsed,
	})
	return html, nil
}

// Reject records a request refused before it reached the pipeline, such as an
// oversize body, and returns err.
func (s *Service) Reject(err error, pdfBytes int) error {
	metrics.IncConversionStarted()
	return failed(err, pdfBytes)
}

func failed(err error, pdfBytes int) error {
	kind := KindOf(err)
	metrics.IncConversionFailed(string(kind))
	telemetry.Error("portfolio.convert.failed", map[string]any{
		"kind":      string(kind),
		"err":       err.Error(),
		"pdf_bytes": pdfBytes,
	})
	return err
}

// Extract runs text extraction and structured completion, returning the
// normalized profile.
func (s *Service) Extract(ctx context.Context, pdf []byte) (Profile, error) {
	metrics.IncConversionStarted()
	if len(pdf) == 0 {
		return Profile{}, newError(KindBadInput, nil)
	}

	text, err := s.Extractor.ExtractText(ctx, pdf)
	if err != nil {
		return Profile{}, newError(KindExtractionFailed, err)
	}

	content, err := s.LLM.Complete(ctx, BuildPrompt(text))
	if err != nil {
		return Profile{}, newError(KindUpstreamError, err)
	}

	profile, doc, err := ParseProfile(content)
	if err != nil {
		return Profile{}, newError(KindMalformedCompletion, err)
	}
	s.reportDrift(doc)
	return profile, nil
}

func (s *Service) reportDrift(doc map[string]any) {
	drift, err := Drift(doc)
	if err != nil {
		telemetry.Warn("portfolio.schema.unavailable", map[string]any{"err": err.Error()})
		return
	}
	if len(drift) == 0 {
		return
	}
	metrics.IncProfileDrift()
	telemetry.Warn("portfolio.profile.drift", map[string]any{"violations": drift})
}

func (s *Service) render(p Profile) (html []byte, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			html = nil
			err = newError(KindTemplatingDefect, fmt.Errorf("panic: %v", rec))
		}
	}()
	if s.Renderer == nil {
		return nil, newError(KindTemplatingDefect, errors.New("renderer not configured"))
	}
	html, err = s.Renderer.Render(p)
	if err != nil {
		return nil, newError(KindTemplatingDefect, err)
	}
	return html, nil
}
