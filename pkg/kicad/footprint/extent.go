package footprint

// Extent tracks the running bounding extent of the coordinates consumed
// while generating a footprint.
type Extent struct {
	MinX, MinY float64
	MaxX, MaxY float64
	set        bool
}

// Expand grows the extent to include a point.
func (e *Extent) Expand(x, y float64) {
	if !e.set {
		e.MinX, e.MaxX = x, x
		e.MinY, e.MaxY = y, y
		e.set = true
		return
	}
	if x < e.MinX {
		e.MinX = x
	}
	if x > e.MaxX {
		e.MaxX = x
	}
	if y < e.MinY {
		e.MinY = y
	}
	if y > e.MaxY {
		e.MaxY = y
	}
}

// Empty reports whether no point has been recorded.
func (e Extent) Empty() bool {
	return !e.set
}

// Width returns the horizontal span of the extent.
func (e Extent) Width() float64 {
	if !e.set {
		return 0
	}
	return e.MaxX - e.MinX
}

// Height returns the vertical span of the extent.
func (e Extent) Height() float64 {
	if !e.set {
		return 0
	}
	return e.MaxY - e.MinY
}

// scaled returns a copy with every coordinate multiplied by the unit scale.
func (e Extent) scaled(scale float64) Extent {
	if !e.set {
		return e
	}
	return Extent{
		MinX: e.MinX * scale,
		MinY: e.MinY * scale,
		MaxX: e.MaxX * scale,
		MaxY: e.MaxY * scale,
		set:  true,
	}
}
