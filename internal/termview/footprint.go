package termview

type gridOffset struct {
	dx int
	dy int
}

// precomputeFootprint lists the cells whose logical centre offset lies inside
// a disc of the given radius.
func precomputeFootprint(radius float64) []gridOffset {
	rx := int(radius / CellWidth)
	ry := int(radius / CellHeight)
	r2 := radius * radius
	footprint := make([]gridOffset, 0, (2*rx+1)*(2*ry+1))
	for y := -ry; y <= ry; y++ {
		for x := -rx; x <= rx; x++ {
			px := float64(x) * CellWidth
			py := float64(y) * CellHeight
			if px*px+py*py <= r2 {
				footprint = append(footprint, gridOffset{dx: x, dy: y})
			}
		}
	}
	return footprint
}
