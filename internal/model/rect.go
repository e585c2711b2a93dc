package model

// Rect is an axis-aligned rectangle in PDF user space coordinates
// (origin at the lower-left corner of the page, units in points).
// LLx/LLy is the lower-left corner and URx/URy the upper-right.
type Rect struct {
	LLx float64 `json:"llx"`
	LLy float64 `json:"lly"`
	URx float64 `json:"urx"`
	URy float64 `json:"ury"`
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 {
	return r.URx - r.LLx
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 {
	return r.URy - r.LLy
}

// Empty reports whether the rectangle encloses no area.
func (r Rect) Empty() bool {
	return r.URx <= r.LLx || r.URy <= r.LLy
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	u := r
	if other.LLx < u.LLx {
		u.LLx = other.LLx
	}
	if other.LLy < u.LLy {
		u.LLy = other.LLy
	}
	if other.URx > u.URx {
		u.URx = other.URx
	}
	if other.URy > u.URy {
		u.URy = other.URy
	}
	return u
}
