package reporter

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/sequoia/pkg/sequoia"
)

func TestLoggingEmitItemset(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.InfoLevel)

	l := NewLogging(log)
	require.NoError(t, l.EmitItemset([]sequoia.Item{0, 1}, []float64{1, 2}, 5))

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, "pattern mined", entry.Message)
	assert.Equal(t, []sequoia.Item{0, 1}, entry.Data["prefix"])
	assert.EqualValues(t, 5, entry.Data["support"])
	assert.Equal(t, []float64{1, 2}, entry.Data["weights"])
}

func TestLoggingNilLoggerUsesStandard(t *testing.T) {
	l := NewLogging(nil)
	assert.Equal(t, logrus.StandardLogger(), l.Log)
}

func TestLoggingAddRemove(t *testing.T) {
	log, hook := test.NewNullLogger()
	l := NewLogging(log)

	require.NoError(t, l.Add(0, 1))
	require.NoError(t, l.Add(1, 1))
	require.Len(t, hook.Entries, 2)
	assert.Equal(t, []sequoia.Item{0, 1}, hook.Entries[1].Data["prefix"])

	require.NoError(t, l.Remove(0))
	require.NoError(t, l.Add(2, 1))
	assert.Equal(t, []sequoia.Item{2}, hook.Entries[2].Data["prefix"])
}
