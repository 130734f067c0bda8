package lattice

// Spec returns the standard description of the configuration, as written in
// the "specification" section of an output document.
func (s *System) Spec() map[string]any {
	spec := map[string]any{
		"L":        s.geo.l,
		"J":        s.j,
		"K":        s.k,
		"disorder": disorderNone,
	}
	if s.disordered {
		spec["disorder"] = disorderRandomSign
		spec["seed"] = s.seed
	}
	if s.gradient {
		spec["dpsi"] = s.dpsi
	}

	return spec
}
