package hillclimb

import (
	test "testing"
)

func TestQueryRunMetrics(t *test.T) {
	p := setupTestPersistence(t)

	run, err := p.StartRun("bits", 42)
	if err != nil {
		t.Fatalf("StartRun failed: %v", err)
	}
	for i, age := range []int{1, 4, 9} {
		if err := p.RecordImprovement(run, "0101", "2", age); err != nil {
			t.Fatalf("RecordImprovement %d failed: %v", i, err)
		}
	}
	if err := p.FinishRun(run, 12, "4", 9); err != nil {
		t.Fatalf("FinishRun failed: %v", err)
	}

	m, err := p.QueryRunMetrics(run.ID)
	if err != nil {
		t.Fatalf("QueryRunMetrics failed: %v", err)
	}
	if m.Improvements != 3 || m.MaxAge != 9 || m.Generations != 12 || m.BestFitness != "4" || !m.Finished {
		t.Errorf("Unexpected metrics: %+v", m)
	}
}

func TestQueryRunMetricsUnfinished(t *test.T) {
	p := setupTestPersistence(t)

	run, err := p.StartRun("bits", 1)
	if err != nil {
		t.Fatalf("StartRun failed: %v", err)
	}
	m, err := p.QueryRunMetrics(run.ID)
	if err != nil {
		t.Fatalf("QueryRunMetrics failed: %v", err)
	}
	if m.Improvements != 0 || m.MaxAge != 0 || m.Finished {
		t.Errorf("Unexpected metrics for an empty run: %+v", m)
	}

	if _, err := p.QueryRunMetrics("missing"); err == nil {
		t.Errorf("QueryRunMetrics on a missing run unexpectedly succeeded")
	}
}
