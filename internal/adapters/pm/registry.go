package pm

import "go.trai.ch/wsu/internal/core/ports"

// preferenceOrder fixes both the probe order and the tie-break order: the
// first-declared adapter wins ties on confidence score.
func preferenceOrder() []ports.PackageManagerAdapter {
	return []ports.PackageManagerAdapter{
		NewNPM(),
		NewPNPM(),
		NewBun(),
	}
}

// Detect probes every known adapter against root in preference order and
// returns the one with the highest confidence score. Ties are broken by
// declaration order. Returns false if every adapter scores zero.
func Detect(root string) (ports.PackageManagerAdapter, bool) {
	var best ports.PackageManagerAdapter
	bestScore := 0
	for _, adapter := range preferenceOrder() {
		active, score := adapter.IsActive(root)
		if !active {
			continue
		}
		if score > bestScore {
			best = adapter
			bestScore = score
		}
	}
	return best, best != nil
}
