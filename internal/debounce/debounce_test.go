package debounce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImmediateDebouncerFires(t *testing.T) {
	d := New(0)
	cmd := d.Trigger("saw")
	require.NotNil(t, cmd)

	value, ok := d.Accept(cmd())
	assert.True(t, ok)
	assert.Equal(t, "saw", value)
}

func TestOnlyLatestTriggerIsAccepted(t *testing.T) {
	d := New(0)
	first := d.Trigger("s")()
	second := d.Trigger("sa")()

	_, ok := d.Accept(first)
	assert.False(t, ok)

	value, ok := d.Accept(second)
	assert.True(t, ok)
	assert.Equal(t, "sa", value)
}

func TestCancelDropsPending(t *testing.T) {
	d := New(0)
	msg := d.Trigger("saw")()
	d.Cancel()

	_, ok := d.Accept(msg)
	assert.False(t, ok)
}

func TestDebouncersIgnoreEachOther(t *testing.T) {
	a := New(0)
	b := New(0)
	msg := a.Trigger("x")()

	_, ok := b.Accept(msg)
	assert.False(t, ok)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestDelayedTriggerWaits(t *testing.T) {
	d := New(20 * time.Millisecond)
	start := time.Now()
	msg := d.Trigger("saw")()

	assert.GreaterOrEqual(t, time.Since(start), 15*time.Millisecond)
	value, ok := d.Accept(msg)
	assert.True(t, ok)
	assert.Equal(t, "saw", value)
}

func TestAcceptIgnoresForeignMessages(t *testing.T) {
	d := New(0)
	_, ok := d.Accept("not a fire message")
	assert.False(t, ok)
}
