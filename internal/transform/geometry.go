package transform

// Near reports whether width falls within tolerance of height, i.e. the
// image is approximately square. The test bounds width against height, not
// the other way around: a 95x100 image passes while a 100x95 image sits at
// the edge of the band. That asymmetry is part of the contract.
func Near(width, height int, tolerance float64) bool {
	h := float64(height)
	w := float64(width)
	return w >= h*(1-tolerance) && w <= h*(1+tolerance)
}
