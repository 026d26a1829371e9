package section

// plasticAxis locates the equal-area (plastic neutral) position from the
// per-slice areas and returns the plastic modulus Σ|pos-pna|·sliceArea.
// positions[i] is the scan position of slice i in scan order
func plasticAxis(positions, areas []float64) (pna, modulus float64) {
	var total float64
	for _, a := range areas {
		total += a
	}
	if total <= 0 {
		return 0, 0
	}

	// Walk slices until the running area reaches half the total
	var running float64
	pna = positions[len(positions)-1]
	for i, a := range areas {
		running += a
		if running >= total/2 {
			pna = positions[i]
			break
		}
	}

	for i, a := range areas {
		d := positions[i] - pna
		if d < 0 {
			d = -d
		}
		modulus += d * a
	}
	return pna, modulus
}

// plasticModuli computes the plastic section moduli of a solid/hole
// composite by the equal-area scan, once per bending direction: bending
// about the horizontal axis slices the section vertically, bending about
// the vertical axis slices it horizontally. The equal-area search
// tolerates asymmetric, multi-part and holed sections; closed forms exist
// only for simple symmetric shapes and are used as cross-checks, not here.
// The returned axis positions are absolute drawing coordinates
func plasticModuli(rings []ring) (pnaY, pnaX float64, zz, zy float64) {
	minX, minY, maxX, maxY, ok := solidBounds(rings)
	if !ok || maxY <= minY || maxX <= minX {
		return 0, 0, 0, 0
	}

	stepY := (maxY - minY) / float64(scanSteps)
	posY := make([]float64, scanSteps)
	areaY := make([]float64, scanSteps)
	for i := 0; i < scanSteps; i++ {
		y := minY + (float64(i)+0.5)*stepY
		var w float64
		for _, s := range materialSpansAtY(rings, y) {
			w += s.hi - s.lo
		}
		posY[i] = y
		areaY[i] = w * stepY
	}
	pnaY, zz = plasticAxis(posY, areaY)

	stepX := (maxX - minX) / float64(scanSteps)
	posX := make([]float64, scanSteps)
	areaX := make([]float64, scanSteps)
	for i := 0; i < scanSteps; i++ {
		x := minX + (float64(i)+0.5)*stepX
		var h float64
		for _, s := range materialSpansAtX(rings, x) {
			h += s.hi - s.lo
		}
		posX[i] = x
		areaX[i] = h * stepX
	}
	pnaX, zy = plasticAxis(posX, areaX)

	return pnaY, pnaX, zz, zy
}
