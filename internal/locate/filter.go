package locate

import "sort"

// filterByMass drops features with mass below the threshold, preserving
// order.
func filterByMass(feats []Feature, massThresh float64) []Feature {
	kept := feats[:0]
	for _, ft := range feats {
		if ft.Mass >= massThresh {
			kept = append(kept, ft)
		}
	}
	return kept
}

// dedupFeatures suppresses double counting when several candidates converge
// to the same spot: of any pair of features closer than minSep, only the one
// with the larger mass survives. The relative order of survivors is
// unchanged.
func dedupFeatures(feats []Feature, minSep float64) []Feature {
	if len(feats) <= 1 {
		return feats
	}

	// Visit features strongest-first so every conflict is decided in favor
	// of the larger mass.
	byMass := make([]int, len(feats))
	for i := range byMass {
		byMass[i] = i
	}
	sort.SliceStable(byMass, func(a, b int) bool {
		return feats[byMass[a]].Mass > feats[byMass[b]].Mass
	})

	sep2 := minSep * minSep
	dropped := make([]bool, len(feats))
	for a, i := range byMass {
		if dropped[i] {
			continue
		}
		for _, j := range byMass[a+1:] {
			if dropped[j] {
				continue
			}
			dx := feats[i].X - feats[j].X
			dy := feats[i].Y - feats[j].Y
			if dx*dx+dy*dy < sep2 {
				dropped[j] = true
			}
		}
	}

	kept := feats[:0]
	for i, ft := range feats {
		if !dropped[i] {
			kept = append(kept, ft)
		}
	}
	return kept
}
