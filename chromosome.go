package hillclimb

import (
	"fmt"
	"strconv"
	"strings"

	cp "github.com/jinzhu/copier"
)

// Chromosome is a candidate solution. Fitness is always the evaluation of
// exactly Genes; Genes are never modified once the Chromosome is built.
type Chromosome[G comparable, F any] struct {
	Genes   []G
	Fitness F
	Age     int
}

func NewChromosome[G comparable, F any](genes []G, fitness F) *Chromosome[G, F] {
	return &Chromosome[G, F]{
		Genes:   genes,
		Fitness: fitness,
	}
}

func (c *Chromosome[G, F]) IncrementAge() {
	c.Age = c.Age + 1
}

// Clone returns a copy that shares no gene storage with c.
func (c *Chromosome[G, F]) Clone() *Chromosome[G, F] {
	clone := &Chromosome[G, F]{
		Genes:   copyGenes(c.Genes),
		Fitness: c.Fitness,
		Age:     c.Age,
	}
	return clone
}

func (c *Chromosome[G, F]) String() string {
	return fmt.Sprintf("fitness: %v age: %d", c.Fitness, c.Age)
}

// ParseSummary splits the output of Chromosome.String back into the
// rendered fitness and the age.
func ParseSummary(s string) (fitness string, age int, err error) {
	const fitnessPrefix, ageSep = "fitness: ", " age: "

	if !strings.HasPrefix(s, fitnessPrefix) {
		return "", 0, fmt.Errorf("summary %q does not start with %q", s, fitnessPrefix)
	}
	idx := strings.LastIndex(s, ageSep)
	if idx < len(fitnessPrefix) {
		return "", 0, fmt.Errorf("summary %q has no age", s)
	}

	age, err = strconv.Atoi(s[idx+len(ageSep):])
	if err != nil {
		return "", 0, fmt.Errorf("summary %q has a malformed age: %w", s, err)
	}
	return s[len(fitnessPrefix):idx], age, nil
}

// copyGenes returns a private copy of genes so no two chromosomes alias the
// same backing array.
func copyGenes[G any](genes []G) []G {
	dup := make([]G, 0, len(genes))
	if err := cp.Copy(&dup, genes); err != nil {
		// copier only fails on invalid (nil pointer) arguments
		panic(fmt.Errorf("copying genes failed: %w", err))
	}
	return dup
}
