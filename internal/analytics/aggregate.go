package analytics

// Aggregate sums profit grouped by a categorical key (symbol or
// session). Keys remember the order they were first seen, so ranking
// ties resolve deterministically to the earliest key in ledger order.
type Aggregate struct {
	sums map[string]float64
	keys []string
}

// NewAggregate creates an empty aggregate.
func NewAggregate() *Aggregate {
	return &Aggregate{sums: make(map[string]float64)}
}

// Add folds one profit value into the key's running sum.
func (a *Aggregate) Add(key string, profit float64) {
	if _, seen := a.sums[key]; !seen {
		a.keys = append(a.keys, key)
	}
	a.sums[key] += profit
}

// Keys returns the keys in first-seen order.
func (a *Aggregate) Keys() []string {
	out := make([]string, len(a.keys))
	copy(out, a.keys)
	return out
}

// Sum returns the summed profit for key and whether the key was seen.
func (a *Aggregate) Sum(key string) (float64, bool) {
	v, ok := a.sums[key]
	return v, ok
}

// Len returns the number of distinct keys.
func (a *Aggregate) Len() int {
	return len(a.keys)
}

// Total returns the sum over all keys.
func (a *Aggregate) Total() float64 {
	total := 0.0
	for _, k := range a.keys {
		total += a.sums[k]
	}
	return total
}

// Max returns the key with the highest summed profit. Ties go to the
// key seen first. ok is false for an empty aggregate.
func (a *Aggregate) Max() (key string, sum float64, ok bool) {
	return a.pick(func(candidate, best float64) bool { return candidate > best })
}

// Min returns the key with the lowest summed profit, first-seen on ties.
func (a *Aggregate) Min() (key string, sum float64, ok bool) {
	return a.pick(func(candidate, best float64) bool { return candidate < best })
}

func (a *Aggregate) pick(better func(candidate, best float64) bool) (string, float64, bool) {
	if len(a.keys) == 0 {
		return "", 0, false
	}
	bestKey := a.keys[0]
	bestSum := a.sums[bestKey]
	for _, k := range a.keys[1:] {
		if better(a.sums[k], bestSum) {
			bestKey, bestSum = k, a.sums[k]
		}
	}
	return bestKey, bestSum, true
}
