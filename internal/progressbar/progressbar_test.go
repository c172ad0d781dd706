package progressbar

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("uses defaults", func(t *testing.T) {
		t.Parallel()
		p := New(10)
		require.Equal(t, int64(10), p.Total())
		require.Equal(t, DefaultWidth, p.bar.Width)
		require.True(t, p.showBar)
	})

	t.Run("applies options", func(t *testing.T) {
		t.Parallel()
		p := New(10, WithWidth(12), WithBar(false), WithUnit("files"))
		require.Equal(t, 12, p.bar.Width)
		require.False(t, p.showBar)
		require.Equal(t, "files", p.unit)
	})

	t.Run("non-positive width falls back", func(t *testing.T) {
		t.Parallel()
		p := New(10, WithWidth(0))
		require.Equal(t, DefaultWidth, p.bar.Width)
	})
}

func TestRatio(t *testing.T) {
	t.Parallel()

	p := New(10)
	require.InDelta(t, 0.0, p.Ratio(0), 1e-9)
	require.InDelta(t, 0.5, p.Ratio(5), 1e-9)
	require.InDelta(t, 1.0, p.Ratio(15), 1e-9)
	require.InDelta(t, 0.0, p.Ratio(-3), 1e-9)
	require.InDelta(t, 1.0, New(0).Ratio(0), 1e-9)
}

func TestLabel(t *testing.T) {
	t.Parallel()

	require.Equal(t, "1,000/2,000 items", New(2000).Label(1000))
	require.Equal(t, "3/4", New(4, WithUnit("")).Label(3))
	require.Equal(t, "15/10 items", New(10).Label(15))
}

func TestView(t *testing.T) {
	t.Parallel()

	t.Run("counter only", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "5/10 items", New(10, WithBar(false)).View(5))
	})

	t.Run("bar precedes counter", func(t *testing.T) {
		t.Parallel()
		view := ansi.Strip(New(10, WithWidth(20)).View(10))
		require.Contains(t, view, "100%")
		require.Contains(t, view, "10/10 items")
		require.Greater(t, len(view), len("10/10 items"))
	})
}

func TestSteps(t *testing.T) {
	t.Parallel()

	require.Equal(t, []int64{0, 1000, 2000}, New(2000).Steps(2))
	require.Equal(t, []int64{0, 7}, New(7).Steps(0))
	require.Equal(t, []int64{0, 2, 5, 7, 10}, New(10).Steps(4))
}
