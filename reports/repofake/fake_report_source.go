package repofake

import (
	"context"
	"sync"

	"github.com/hirestack/go-interview-server/internal/errors"
	"github.com/hirestack/go-interview-server/reports"
)

var _ reports.Source = (*FakeReportSource)(nil)

// FakeReportSource is an in-memory report source for tests
type FakeReportSource struct {
	records map[string]*reports.RawReport
	lock    sync.RWMutex
}

func NewFakeReportSource() *FakeReportSource {
	return &FakeReportSource{
		records: make(map[string]*reports.RawReport),
	}
}

func (s *FakeReportSource) Add(raw *reports.RawReport) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.records[raw.CandidateID] = raw
}

func (s *FakeReportSource) RawReport(_ context.Context, candidateID string) (*reports.RawReport, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	raw, ok := s.records[candidateID]
	if !ok {
		return nil, errors.ErrReportNotFound
	}
	return raw, nil
}
