package upgrade

// Rand is the random source for selection; seed it in tests
type Rand interface {
	Float64() float64
}

// Select draws up to k distinct definitions by rarity weight, without replacement
// Returns fewer than k when the catalog is smaller; nil for k <= 0
func (c *Catalog) Select(rng Rand, k int) []Definition {
	if k <= 0 || len(c.defs) == 0 {
		return nil
	}

	pool := make([]Definition, len(c.defs))
	copy(pool, c.defs)

	out := make([]Definition, 0, min(k, len(pool)))
	for len(out) < k && len(pool) > 0 {
		total := 0.0
		for _, d := range pool {
			total += d.Weight
		}

		r := rng.Float64() * total
		pick := len(pool) - 1 // float residue falls through to the last item
		for i, d := range pool {
			r -= d.Weight
			if r <= 0 {
				pick = i
				break
			}
		}

		out = append(out, pool[pick])
		pool = append(pool[:pick], pool[pick+1:]...)
	}
	return out
}
