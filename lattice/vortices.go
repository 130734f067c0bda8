package lattice

// VortexProfile returns the plaquette operator W_p = Π u over the six bonds of
// every hexagon, indexed by cell (j·L+i). +1 is vortex-free, −1 a vortex.
func (s *System) VortexProfile() []int {
	profile := make([]int, s.geo.cells())
	for cell := range profile {
		i, j := s.geo.coords(cell)
		w := 1.0
		for _, b := range s.geo.plaquette(i, j) {
			w *= s.signs[b]
		}
		if w < 0 {
			profile[cell] = -1
		} else {
			profile[cell] = 1
		}
	}

	return profile
}

// VortexCount returns the number of plaquettes carrying a vortex.
func (s *System) VortexCount() int {
	var count int
	for _, w := range s.VortexProfile() {
		if w < 0 {
			count++
		}
	}

	return count
}
