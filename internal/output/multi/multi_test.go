package multi

import (
	"context"
	"errors"
	"testing"

	"github.com/hexwatch/acelens/internal/model"
)

// mockSink records calls for test assertions.
type mockSink struct {
	writes int
	closed bool
	err    error // if set, Write and Close return this error
}

func (m *mockSink) Write(_ context.Context, _ *model.ScanStats) error {
	m.writes++
	return m.err
}

func (m *mockSink) Close() error {
	m.closed = true
	return m.err
}

func TestFanOutDeliversToAll(t *testing.T) {
	a, b := &mockSink{}, &mockSink{}
	m := New(a, b)

	if err := m.Write(context.Background(), model.NewScanStats()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if a.writes != 1 || b.writes != 1 {
		t.Fatalf("expected one write each, got %d and %d", a.writes, b.writes)
	}
}

func TestFanOutContinuesPastFailure(t *testing.T) {
	boom := errors.New("boom")
	a := &mockSink{err: boom}
	b := &mockSink{}
	m := New(a, b)

	err := m.Write(context.Background(), model.NewScanStats())
	if !errors.Is(err, boom) {
		t.Fatalf("expected collected error, got %v", err)
	}
	if b.writes != 1 {
		t.Fatal("later sink skipped after earlier failure")
	}
}

func TestCloseAll(t *testing.T) {
	a, b := &mockSink{}, &mockSink{}
	m := New(a, b)

	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !a.closed || !b.closed {
		t.Fatal("expected both sinks closed")
	}
}
