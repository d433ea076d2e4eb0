// Package reporter provides ready-made sequoia.Reporter implementations:
// Collecting buffers every emitted pattern in memory, Logging streams
// them through logrus.
package reporter

import (
	"sync"

	"github.com/gitrdm/sequoia/pkg/sequoia"
)

// Pattern is one reported sequence, captured independently of which
// Reporter method style produced it.
type Pattern struct {
	Items   []sequoia.Item
	Support sequoia.Support
	// Weights holds one mean-weight accumulator per item, or nil for the
	// unweighted flavor.
	Weights []float64
}

// Collecting buffers every reported pattern. It is safe for concurrent
// use even though the engine itself is single-threaded, so callers can
// freely read Patterns from another goroutine once Mine returns.
type Collecting struct {
	mu       sync.Mutex
	prefix   []sequoia.Item
	Patterns []Pattern
}

// NewCollecting returns an empty Collecting reporter.
func NewCollecting() *Collecting {
	return &Collecting{}
}

var _ sequoia.Reporter = (*Collecting)(nil)

// Add implements sequoia.Reporter.
func (c *Collecting) Add(item sequoia.Item, supp sequoia.Support) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prefix = append(c.prefix, item)
	c.Patterns = append(c.Patterns, Pattern{
		Items:   append([]sequoia.Item(nil), c.prefix...),
		Support: supp,
	})
	return nil
}

// Remove implements sequoia.Reporter.
func (c *Collecting) Remove(k int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prefix = c.prefix[:k]
	return nil
}

// EmitItemset implements sequoia.Reporter.
func (c *Collecting) EmitItemset(prefix []sequoia.Item, weights []float64, supp sequoia.Support) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	p := Pattern{Items: append([]sequoia.Item(nil), prefix...), Support: supp}
	if weights != nil {
		p.Weights = append([]float64(nil), weights...)
	}
	c.Patterns = append(c.Patterns, p)
	return nil
}
