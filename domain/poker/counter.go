package poker

// Counter counts occurrences of keys. Missing keys read as zero.
type Counter[K comparable] struct {
	counts map[K]int
}

func NewCounter[K comparable]() Counter[K] {
	return Counter[K]{counts: make(map[K]int)}
}

// Increment adds one occurrence of k.
func (c *Counter[K]) Increment(k K) {
	if c.counts == nil {
		c.counts = make(map[K]int)
	}
	c.counts[k]++
}

// Get returns the count of k, or zero if k was never incremented.
func (c Counter[K]) Get(k K) int {
	return c.counts[k]
}

// Len returns the number of distinct keys seen.
func (c Counter[K]) Len() int {
	return len(c.counts)
}

// Clone returns an independent copy of c.
func (c Counter[K]) Clone() Counter[K] {
	out := Counter[K]{counts: make(map[K]int, len(c.counts)+2)}
	for k, v := range c.counts {
		out.counts[k] = v
	}
	return out
}

// Max returns the largest count among the keys seen, or zero if empty.
func (c Counter[K]) Max() int {
	m := 0
	for _, v := range c.counts {
		if v > m {
			m = v
		}
	}
	return m
}

// Min returns the smallest count among the keys seen, or zero if empty.
func (c Counter[K]) Min() int {
	m := 0
	first := true
	for _, v := range c.counts {
		if first || v < m {
			m = v
			first = false
		}
	}
	return m
}

func rankCounter(cards ...Card) Counter[Rank] {
	c := NewCounter[Rank]()
	for _, card := range cards {
		c.Increment(card.Rank())
	}
	return c
}
