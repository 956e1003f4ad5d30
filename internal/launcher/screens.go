package launcher

// Rect is a screen area in global coordinates
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// SelectScreen returns the screen at index, or screen 0 when index is out of
// range. ok is false when there are no screens at all.
func SelectScreen(screens []Rect, index int) (r Rect, used int, ok bool) {
	if len(screens) == 0 {
		return Rect{}, 0, false
	}
	if index < 0 || index >= len(screens) {
		index = 0
	}
	return screens[index], index, true
}

// CenterIn returns the origin that centers a width x height window in r
func CenterIn(r Rect, width, height int) (x, y int) {
	return r.X + (r.Width-width)/2, r.Y + (r.Height-height)/2
}
