package window

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateApply(t *testing.T) {
	cal := utcCalendar(t)
	start := time.Date(2024, 3, 12, 9, 30, 0, 0, time.UTC)

	s, err := NewState(start, cal)
	require.NoError(t, err)
	assert.Equal(t, CenterIndex, s.Page)
	assert.True(t, s.IsSelected(time.Date(2024, 3, 12, 23, 0, 0, 0, time.UTC)))

	s, err = s.Apply(PageChanged{Index: 2})
	require.NoError(t, err)
	assert.Equal(t, "2024-4", s.Window.Current().Key())
	assert.Equal(t, CenterIndex, s.Page)
	assert.True(t, s.IsSelected(start), "paging keeps the selection")

	s, err = s.Apply(Step{Direction: Backward})
	require.NoError(t, err)
	assert.Equal(t, "2024-3", s.Window.Current().Key())

	s, err = s.Apply(Select{Date: time.Date(2024, 3, 20, 18, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	selected, ok := s.Selected.Get()
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), selected)

	now := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	s, err = s.Apply(Today{Now: now})
	require.NoError(t, err)
	assert.Equal(t, "2026-10", s.Window.Current().Key())
	assert.True(t, s.IsSelected(now))
}

func TestStateApplyErrorKeepsState(t *testing.T) {
	cal := cappedCalendar{Gregorian: utcCalendar(t), lastYear: 2024}
	s, err := NewState(time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC), cal)
	require.NoError(t, err)

	got, err := s.Apply(PageChanged{Index: 2})
	require.Error(t, err)
	assert.Equal(t, s.Window.Current().Key(), got.Window.Current().Key())
	assert.Equal(t, CenterIndex, got.Page)
}
