package portfolio

import (
	"context"
	"io"
	"os"
	"strconv"
	"strings"
	"testing"

	"resume-portfolio/internal/llm"
	"resume-portfolio/internal/shared/metrics"
	"resume-portfolio/internal/shared/telemetry"
)

const adaJSON = `{"name":"Ada Lovelace","bio":"Engineer","skills":["C++","Math"],"education":[],"experience":[{"role":"Analyst","company":"X","duration":"2020-2021","desc":"Did work"}],"achievements":[],"projects":[]}`

func TestMain(m *testing.M) {
	telemetry.SetOutput(io.Discard)
	os.Exit(m.Run())
}

type fakeExtractor struct {
	text  string
	err   error
	calls int
}

func (f *fakeExtractor) ExtractText(ctx context.Context, data []byte) (string, error) {
	f.calls++
	return f.text, f.err
}

type fakeLLM struct {
	content string
	err     error
	calls   int
	last    llm.Request
}

func (f *fakeLLM) Complete(ctx context.Context, req llm.Request) (string, error) {
	f.calls++
	f.last = req
	return f.content, f.err
}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer(2026)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return r
}

func newTestService(t *testing.T, ext *fakeExtractor, completer *fakeLLM) *Service {
	t.Helper()
	return &Service{Extractor: ext, LLM: completer, Renderer: newTestRenderer(t)}
}

// metricValue reads one series from the exposition output; absent series read as zero.
func metricValue(t *testing.T, series string) uint64 {
	t.Helper()
	for _, line := range strings.Split(metrics.Render(), "\n") {
		name, value, ok := strings.Cut(line, " ")
		if !ok || name != series {
			continue
		}
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			t.Fatalf("parse %s: %v", series, err)
		}
		return n
	}
	return 0
}
