package hillclimb

import (
	"strconv"
	test "testing"
)

func TestNewChromosome(t *test.T) {
	c := NewChromosome([]int{1, 0, 1}, 2)

	if c.Age != 0 {
		t.Errorf("New chromosome age [%v] is not expected value [0]", c.Age)
	}
	if c.Fitness != 2 {
		t.Errorf("Fitness [%v] is not expected value [2]", c.Fitness)
	}

	c.IncrementAge()
	c.IncrementAge()
	if c.Age != 2 {
		t.Errorf("Age after two increments [%v] is not expected value [2]", c.Age)
	}
}

func TestChromosomeString(t *test.T) {
	c := NewChromosome([]rune("abc"), 17)
	c.Age = 4

	if c.String() != "fitness: 17 age: 4" {
		t.Errorf("Unexpected summary\nExpected: %v\nActual: %v", "fitness: 17 age: 4", c.String())
	}
}

func TestParseSummaryRoundTrip(t *test.T) {
	for _, tc := range []struct{ fitness, age int }{{0, 0}, {10, 50}, {-3, 7}, {123456789, 1 << 20}} {
		c := NewChromosome([]int{1}, tc.fitness)
		c.Age = tc.age

		fitness, age, err := ParseSummary(c.String())
		if err != nil {
			t.Fatalf("ParseSummary(%q) failed: %v", c.String(), err)
		}
		parsed, err := strconv.Atoi(fitness)
		if err != nil {
			t.Fatalf("Fitness %q is not an int: %v", fitness, err)
		}
		if parsed != tc.fitness || age != tc.age {
			t.Errorf("Round trip mismatch\nExpected: %v %v\nActual: %v %v", tc.fitness, tc.age, parsed, age)
		}
	}

	fitness, age, err := ParseSummary(NewChromosome([]int{1}, 0.25).String())
	if err != nil || fitness != "0.25" || age != 0 {
		t.Errorf("Unexpected float round trip: %q %v %v", fitness, age, err)
	}
}

func TestParseSummaryErrors(t *test.T) {
	for _, s := range []string{"", "age: 3", "fitness: 3", "fitness: 3 age: x"} {
		if _, _, err := ParseSummary(s); err == nil {
			t.Errorf("ParseSummary(%q) unexpectedly succeeded", s)
		}
	}
}

func TestChromosomeClone(t *test.T) {
	c := NewChromosome([]int{1, 2, 3}, 6)
	c.Age = 3

	clone := c.Clone()
	if clone.Age != 3 || clone.Fitness != 6 || len(clone.Genes) != 3 {
		t.Errorf("Clone does not match original\nOriginal: %+v\nActual: %+v", c, clone)
	}

	clone.Genes[0] = 9
	clone.Age = 10
	if c.Genes[0] != 1 || c.Age != 3 {
		t.Errorf("Clone shares state with the original: %+v", c)
	}
}
