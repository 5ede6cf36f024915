package tabs

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type callLog struct {
	calls []string
}

func (c *callLog) OnTabSelected(t Tab) {
	c.calls = append(c.calls, fmt.Sprintf("selected:%d", t.Position))
}
func (c *callLog) OnTabUnselected(t Tab) {
	c.calls = append(c.calls, fmt.Sprintf("unselected:%d", t.Position))
}
func (c *callLog) OnTabReselected(t Tab) {
	c.calls = append(c.calls, fmt.Sprintf("reselected:%d", t.Position))
}

func TestNewSelectsFirstTabSilently(t *testing.T) {
	s := New("A", "B", "C")
	assert.Equal(t, 0, s.Selected())
	assert.Equal(t, 3, s.Len())

	empty := New()
	assert.Equal(t, -1, empty.Selected())
}

func TestSelectTabDispatchOrder(t *testing.T) {
	s := New("A", "B", "C")
	log := &callLog{}
	s.AddListener(log)

	s.SelectTab(2)
	s.SelectTab(2)
	s.SelectTab(7)
	s.SelectTab(-1)

	assert.Equal(t, []string{"unselected:0", "selected:2", "reselected:2"}, log.calls)
	assert.Equal(t, 2, s.Selected())
}

func TestRemoveListenerStopsCallbacks(t *testing.T) {
	s := New("A", "B")
	first, second := &callLog{}, &callLog{}
	s.AddListener(first)
	s.AddListener(second)

	s.RemoveListener(first)
	s.RemoveListener(first)
	s.SelectTab(1)

	assert.Empty(t, first.calls)
	assert.Equal(t, []string{"unselected:0", "selected:1"}, second.calls)
	assert.Equal(t, 1, s.ListenerCount())
}

func TestTabAt(t *testing.T) {
	s := New("Starters", "Mains")
	tab, ok := s.TabAt(1)
	require.True(t, ok)
	assert.Equal(t, Tab{Position: 1, Title: "Mains"}, tab)

	_, ok = s.TabAt(2)
	assert.False(t, ok)
}

func TestTabAtXMatchesRender(t *testing.T) {
	s := New("One", "Two")
	st := DefaultStyles()

	// "One" and "Two" each render five cells wide with padding, one cell apart
	assert.Equal(t, 0, s.TabAtX(st, 0))
	assert.Equal(t, 0, s.TabAtX(st, 4))
	assert.Equal(t, -1, s.TabAtX(st, 5))
	assert.Equal(t, 1, s.TabAtX(st, 6))
	assert.Equal(t, -1, s.TabAtX(st, 11))
	assert.Contains(t, s.Render(st), "Two")
}
