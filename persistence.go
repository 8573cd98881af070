package hillclimb

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"
	gorm "gorm.io/gorm"
)

// Run history is a report of what searches yielded. It is never read back
// into a search.

type PersistenceConfig struct {
	Name          string   `toml:"name" yaml:"name"`
	Path          string   `toml:"path" yaml:"path"`
	SQLitePragmas []string `toml:"sqlite_pragmas" yaml:"sqlite_pragmas"`
}

type Persistence struct {
	Config *PersistenceConfig
	DB     *gorm.DB
}

// Run is one recorded search.
type Run struct {
	ID           string `gorm:"primaryKey"`
	Problem      string
	Seed         int64
	StartedAt    time.Time
	FinishedAt   *time.Time
	Generations  int
	BestFitness  string
	BestAge      int
	Improvements []Improvement
}

// Improvement is one yielded candidate of a Run, in yield order.
type Improvement struct {
	ID       uint
	RunID    string `gorm:"index"`
	Sequence int
	Genes    string
	Fitness  string
	Age      int
}

func NewPersistence(config *PersistenceConfig) (*Persistence, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	if len(config.Path) == 0 {
		return nil, fmt.Errorf("Path to database must be defined")
	}

	if len(config.Name) == 0 {
		return nil, fmt.Errorf("Name of database must be defined")
	}

	pragmas := make([]string, len(config.SQLitePragmas))
	for i, prag := range config.SQLitePragmas {
		pragmas[i] = fmt.Sprintf("_pragma=%s", prag)
	}

	var path strings.Builder
	path.WriteString(filepath.Join(config.Path, config.Name))
	if len(pragmas) > 0 {
		path.WriteRune('?')
		path.WriteString(strings.Join(pragmas, "&"))
	}

	db, err := gorm.Open(sqlite.Open(path.String()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	p := &Persistence{Config: config, DB: db}
	if err = p.initialize(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Persistence) initialize() error {
	return p.DB.AutoMigrate(
		&Run{},
		&Improvement{},
	)
}

func (p *Persistence) Shutdown() {
	if sqldb, err := p.DB.DB(); err != nil {
		logrus.WithError(err).Error("failed to retrieve raw DB")
	} else if err := sqldb.Close(); err != nil {
		logrus.WithError(err).Error("failed to close DB")
	}
}

// StartRun creates and stores a new Run.
func (p *Persistence) StartRun(problem string, seed int64) (*Run, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("failed to generate run id: %w", err)
	}

	run := &Run{
		ID:        id.String(),
		Problem:   problem,
		Seed:      seed,
		StartedAt: time.Now().UTC(),
	}
	if result := p.DB.Create(run); result.Error != nil {
		return nil, fmt.Errorf("failed to create run: %w", result.Error)
	}
	return run, nil
}

// RecordImprovement appends an improvement to run.
func (p *Persistence) RecordImprovement(run *Run, genes, fitness string, age int) error {
	if run == nil {
		return fmt.Errorf("Run cannot be nil")
	}

	imp := Improvement{
		RunID:    run.ID,
		Sequence: len(run.Improvements) + 1,
		Genes:    genes,
		Fitness:  fitness,
		Age:      age,
	}
	if result := p.DB.Create(&imp); result.Error != nil {
		return fmt.Errorf("failed to record improvement %d of run %s: %w", imp.Sequence, run.ID, result.Error)
	}
	run.Improvements = append(run.Improvements, imp)
	return nil
}

// FinishRun stores the outcome of run. best may be empty when the search
// failed before yielding anything.
func (p *Persistence) FinishRun(run *Run, generations int, bestFitness string, bestAge int) error {
	finished := time.Now().UTC()
	result := p.DB.Model(run).Updates(map[string]interface{}{
		"finished_at":  finished,
		"generations":  generations,
		"best_fitness": bestFitness,
		"best_age":     bestAge,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to finish run %s: %w", run.ID, result.Error)
	}
	run.FinishedAt = &finished
	run.Generations = generations
	run.BestFitness = bestFitness
	run.BestAge = bestAge
	return nil
}

// LoadRun loads a run with its improvements in yield order.
func (p *Persistence) LoadRun(id string) (*Run, error) {
	run := &Run{}
	result := p.DB.Preload("Improvements", func(db *gorm.DB) *gorm.DB {
		return db.Order("sequence")
	}).First(run, "id = ?", id)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to load run %s: %w", id, result.Error)
	}
	return run, nil
}

// ListRuns returns up to limit runs, most recent first, without their
// improvements.
func (p *Persistence) ListRuns(limit int) ([]Run, error) {
	var runs []Run
	if result := p.DB.Order("started_at desc").Limit(limit).Find(&runs); result.Error != nil {
		return nil, fmt.Errorf("failed to list runs: %w", result.Error)
	}
	return runs, nil
}

// RecordDisplay wraps display so every improvement is also stored against
// run. Storage failures are logged; they do not stop the search. format
// renders genes and defaults to fmt.Sprint.
func RecordDisplay[G comparable, F any](p *Persistence, run *Run, format func([]G) string, display DisplayFunc[G, F]) DisplayFunc[G, F] {
	if format == nil {
		format = func(genes []G) string { return fmt.Sprint(genes) }
	}
	return func(c *Chromosome[G, F]) {
		if err := p.RecordImprovement(run, format(c.Genes), fmt.Sprint(c.Fitness), c.Age); err != nil {
			logrus.WithError(err).WithField("run", run.ID).Warn("improvement not recorded")
		}
		if display != nil {
			display(c)
		}
	}
}
