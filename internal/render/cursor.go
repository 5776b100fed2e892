package render

import "math"

// Cursor tracks the vertical position and page index of the in-flight render
// pass. One Cursor is created per document and threaded through every
// section; it must never be shared across concurrent renders.
type Cursor struct {
	Y         float64
	PageIndex int

	pageHeight   float64
	topMargin    float64
	bottomMargin float64
	sectionGap   float64
}

// NewCursor builds the cursor for a fresh document positioned at the top
// margin of page 0.
func NewCursor(s Surface, st StyleConfig) *Cursor {
	_, h := s.PageSize()
	return &Cursor{
		Y:            st.MarginTop,
		PageIndex:    0,
		pageHeight:   h,
		topMargin:    st.MarginTop,
		bottomMargin: st.MarginBottom,
		sectionGap:   st.SectionGap,
	}
}

// EnsureRoom makes sure needed vertical space is available before any drawing
// happens. When the remaining budget is too small it emits a page break,
// resets Y to the top margin and bumps the page index. Sections must call
// this with their full estimated height up front, never mid-draw. Reports
// whether a page break occurred.
func (c *Cursor) EnsureRoom(s Surface, needed float64) bool {
	if c.Y+needed <= c.pageHeight-c.bottomMargin {
		return false
	}
	s.AddPage()
	c.Y = c.topMargin
	c.PageIndex++
	return true
}

// Advance moves the cursor past a drawn block plus the inter-section gap.
func (c *Cursor) Advance(consumed float64) {
	c.Y += consumed + c.sectionGap
}

// Remaining is the vertical budget left on the current page.
func (c *Cursor) Remaining() float64 {
	return c.pageHeight - c.bottomMargin - c.Y
}

// RowsFit says how many rows of the given height fit in the remaining budget
// after reserving headerHeight for the section chrome.
func (c *Cursor) RowsFit(headerHeight, rowHeight float64) int {
	if rowHeight <= 0 {
		return 0
	}
	n := int(math.Floor((c.Remaining() - headerHeight) / rowHeight))
	if n < 0 {
		return 0
	}
	return n
}
