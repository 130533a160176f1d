// Package score turns a player's step count into a score relative to the
// reference path length. The rule is a Tengo script so it can be tuned from
// configuration without rebuilding the game.
package score

import (
	"fmt"
	"os"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// DefaultRule rates the player by how close they came to the reference
// path: optimal/steps as a percentage.
const DefaultRule = `score := float(optimal) / float(steps) * 100.0`

// Scorer evaluates a compiled scoring rule. The rule sees the integer
// globals optimal and steps and must assign a numeric global named score.
type Scorer struct {
	compiled *tengo.Compiled
}

// New compiles src into a Scorer. Blank src selects DefaultRule.
func New(src string) (*Scorer, error) {
	if strings.TrimSpace(src) == "" {
		src = DefaultRule
	}

	script := tengo.NewScript([]byte(src))
	_ = script.Add("optimal", 0)
	_ = script.Add("steps", 1)
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("score: compile rule: %w", err)
	}
	return &Scorer{compiled: compiled}, nil
}

// Load reads a rule from path and compiles it. An empty path selects
// DefaultRule.
func Load(path string) (*Scorer, error) {
	if path == "" {
		return New("")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("score: load %s: %w", path, err)
	}
	return New(string(b))
}

// Default returns a Scorer for DefaultRule.
func Default() *Scorer {
	s, err := New(DefaultRule)
	if err != nil {
		panic("score: default rule: " + err.Error())
	}
	return s
}

// Compute scores a run of steps moves against an optimal step count. A run
// with no moves scores 0 and the rule is not evaluated.
func (s *Scorer) Compute(optimal, steps int) (float64, error) {
	if steps <= 0 {
		return 0, nil
	}

	c := s.compiled.Clone()
	if err := c.Set("optimal", optimal); err != nil {
		return 0, fmt.Errorf("score: set optimal: %w", err)
	}
	if err := c.Set("steps", steps); err != nil {
		return 0, fmt.Errorf("score: set steps: %w", err)
	}
	if err := c.Run(); err != nil {
		return 0, fmt.Errorf("score: run rule: %w", err)
	}

	v := c.Get("score")
	if v == nil || v.IsUndefined() {
		return 0, ErrNoScore
	}
	switch n := v.Value().(type) {
	case float64:
		return n, nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("%w: got %s", ErrNotNumeric, v.ValueType())
	}
}
