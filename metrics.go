package hillclimb

import (
	"fmt"
	"time"
)

// RunMetrics summarises a recorded run.
type RunMetrics struct {
	Improvements int64
	MaxAge       int
	Generations  int
	BestFitness  string
	Duration     time.Duration
	Finished     bool
}

// QueryRunMetrics aggregates the improvements stored for a run.
func (p *Persistence) QueryRunMetrics(id string) (*RunMetrics, error) {
	run := &Run{}
	if result := p.DB.First(run, "id = ?", id); result.Error != nil {
		return nil, fmt.Errorf("failed to load run %s: %w", id, result.Error)
	}

	m := &RunMetrics{
		Generations: run.Generations,
		BestFitness: run.BestFitness,
	}

	if result := p.DB.Model(&Improvement{}).Where("run_id = ?", id).Count(&m.Improvements); result.Error != nil {
		return nil, fmt.Errorf("failed to count improvements of run %s: %w", id, result.Error)
	}

	var maxAge int
	row := p.DB.Model(&Improvement{}).Select("COALESCE(MAX(age), 0)").Where("run_id = ?", id).Row()
	if err := row.Scan(&maxAge); err != nil {
		return nil, fmt.Errorf("failed to query max age of run %s: %w", id, err)
	}
	m.MaxAge = maxAge

	if run.FinishedAt != nil {
		m.Finished = true
		m.Duration = run.FinishedAt.Sub(run.StartedAt)
	}
	return m, nil
}
