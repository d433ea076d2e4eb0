package reporter

import (
	"github.com/sirupsen/logrus"

	"github.com/gitrdm/sequoia/pkg/sequoia"
)

// Logging streams every reported pattern through a logrus.Logger at info
// level, one structured entry per pattern.
type Logging struct {
	Log    *logrus.Logger
	prefix []sequoia.Item
}

// NewLogging returns a Logging reporter. A nil log uses
// logrus.StandardLogger().
func NewLogging(log *logrus.Logger) *Logging {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Logging{Log: log}
}

var _ sequoia.Reporter = (*Logging)(nil)

// Add implements sequoia.Reporter.
func (l *Logging) Add(item sequoia.Item, supp sequoia.Support) error {
	l.prefix = append(l.prefix, item)
	l.Log.WithFields(logrus.Fields{
		"prefix":  append([]sequoia.Item(nil), l.prefix...),
		"support": supp,
	}).Info("pattern mined")
	return nil
}

// Remove implements sequoia.Reporter.
func (l *Logging) Remove(k int) error {
	l.prefix = l.prefix[:k]
	return nil
}

// EmitItemset implements sequoia.Reporter.
func (l *Logging) EmitItemset(prefix []sequoia.Item, weights []float64, supp sequoia.Support) error {
	fields := logrus.Fields{
		"prefix":  append([]sequoia.Item(nil), prefix...),
		"support": supp,
	}
	if weights != nil {
		fields["weights"] = append([]float64(nil), weights...)
	}
	l.Log.WithFields(fields).Info("pattern mined")
	return nil
}
