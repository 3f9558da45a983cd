package sheets

import (
	"context"
	"sync"

	"github.com/Veraticus/studmoney/internal/service"
)

// MockWriter is an in-memory service.ReportWriter for tests.
type MockWriter struct {
	err     error
	reports []*service.Report
	mu      sync.Mutex
}

// NewMockWriter creates a mock writer that accepts every report.
func NewMockWriter() *MockWriter {
	return &MockWriter{}
}

// Write records report and returns the error set by FailWith, if any.
func (m *MockWriter) Write(ctx context.Context, report *service.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.reports = append(m.reports, report)
	return m.err
}

// FailWith makes subsequent writes return err; nil restores success.
func (m *MockWriter) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Reports returns every report passed to Write, oldest first.
func (m *MockWriter) Reports() []*service.Report {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*service.Report(nil), m.reports...)
}

// Last returns the most recent report, or nil before the first write.
func (m *MockWriter) Last() *service.Report {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.reports) == 0 {
		return nil
	}
	return m.reports[len(m.reports)-1]
}

var _ service.ReportWriter = (*MockWriter)(nil)
