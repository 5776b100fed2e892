package render

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testStyle() StyleConfig {
	st := DefaultStyle()
	return st
}

func TestEnsureRoomStaysWithinBudget(t *testing.T) {
	st := testStyle()
	rec := NewCommandRecorder(500, 400)
	rec.AddPage()
	cur := NewCursor(rec, st)

	for _, needed := range []float64{40, 120, 200, 90, 300, 10, 250} {
		cur.EnsureRoom(rec, needed)
		require.LessOrEqual(t, cur.Y+needed, 400-st.MarginBottom,
			"cursor must guarantee the requested height fits")
		cur.Advance(needed)
	}
}

func TestEnsureRoomBreaksPage(t *testing.T) {
	st := testStyle()
	rec := NewCommandRecorder(500, 400)
	rec.AddPage()
	cur := NewCursor(rec, st)

	broke := cur.EnsureRoom(rec, 100)
	require.False(t, broke)

	cur.Advance(240)
	broke = cur.EnsureRoom(rec, 100)
	require.True(t, broke)
	require.Equal(t, 1, cur.PageIndex)
	require.Equal(t, st.MarginTop, cur.Y)
	require.Equal(t, 2, rec.PageCount())
}

func TestAdvanceAddsSectionGap(t *testing.T) {
	st := testStyle()
	rec := NewCommandRecorder(500, 800)
	rec.AddPage()
	cur := NewCursor(rec, st)

	start := cur.Y
	cur.Advance(100)
	require.Equal(t, start+100+st.SectionGap, cur.Y)
}

func TestRowsFit(t *testing.T) {
	st := testStyle()
	rec := NewCommandRecorder(500, 400)
	rec.AddPage()
	cur := NewCursor(rec, st)

	// Budget is 400 - 50 - 50 = 300 from Y = 50.
	require.Equal(t, 10, cur.RowsFit(38, 26))
	require.Equal(t, 0, cur.RowsFit(500, 26))
	require.Equal(t, 0, cur.RowsFit(0, 0))
}
