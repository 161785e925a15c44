package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"
)

// fakeBackend is a simple in-memory Backend implementation for tests.
type fakeBackend struct {
	mu sync.Mutex

	counters   []counterCall
	durations  []durationCall
	flushCount int
}

type counterCall struct {
	name   string
	delta  float64
	labels Labels
}

type durationCall struct {
	name   string
	value  float64
	labels Labels
}

func (f *fakeBackend) IncCounter(name string, delta float64, labels Labels) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counters = append(f.counters, counterCall{name, delta, labels})
}

func (f *fakeBackend) ObserveDuration(name string, value float64, labels Labels) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.durations = append(f.durations, durationCall{name, value, labels})
}

func (f *fakeBackend) Flush() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.flushCount++
	return nil
}

func TestRecordStepSuccessAndFailure(t *testing.T) {
	orig := backend
	defer func() { backend = orig }()

	fb := &fakeBackend{}
	backend = fb

	RecordStep("import", "parsing", nil, 2*time.Second)
	RecordStep("import", "importing", errors.New("boom"), time.Second)

	if len(fb.counters) != 2 {
		t.Fatalf("got %d counter calls, want 2", len(fb.counters))
	}
	if fb.counters[0].labels["status"] != "success" {
		t.Errorf("first call status = %q", fb.counters[0].labels["status"])
	}
	if fb.counters[1].labels["status"] != "failure" {
		t.Errorf("second call status = %q", fb.counters[1].labels["status"])
	}
	if len(fb.durations) != 2 || fb.durations[0].value != 2.0 {
		t.Errorf("durations = %+v", fb.durations)
	}
}

func TestRecordRowsSkipsNonPositive(t *testing.T) {
	orig := backend
	defer func() { backend = orig }()

	fb := &fakeBackend{}
	backend = fb

	RecordRows("import", "imported", 0)
	RecordRows("import", "imported", -3)
	RecordRows("import", "skipped", 5)

	if len(fb.counters) != 1 {
		t.Fatalf("got %d counter calls, want 1", len(fb.counters))
	}
	c := fb.counters[0]
	if c.name != "ingest_rows_total" || c.delta != 5 || c.labels["kind"] != "skipped" {
		t.Errorf("call = %+v", c)
	}
}

func TestSetBackendNilKeepsExisting(t *testing.T) {
	orig := backend
	defer func() { backend = orig }()

	fb := &fakeBackend{}
	SetBackend(fb)
	SetBackend(nil)

	if err := Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if fb.flushCount != 1 {
		t.Errorf("flushCount = %d, nil SetBackend must not replace the backend", fb.flushCount)
	}
}
