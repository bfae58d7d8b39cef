package engine

// editCosts holds the per-operation costs of EditDistance.
type editCosts struct {
	insert     int
	delete     int
	substitute int
}

// CostOption overrides one of the EditDistance operation costs.
type CostOption func(*editCosts)

// WithInsertCost sets the cost of inserting a character. Default is 1.
func WithInsertCost(cost int) CostOption {
	return func(c *editCosts) {
		c.insert = cost
	}
}

// WithDeleteCost sets the cost of deleting a character. Default is 1.
func WithDeleteCost(cost int) CostOption {
	return func(c *editCosts) {
		c.delete = cost
	}
}

// WithSubstituteCost sets the cost of replacing one character with another.
// Default is 1.
func WithSubstituteCost(cost int) CostOption {
	return func(c *editCosts) {
		c.substitute = cost
	}
}

// EditDistance returns the weighted Levenshtein distance turning start into
// end. Characters are compared as runes. All costs default to 1; zero costs
// are allowed and simply make the corresponding operation free.
func EditDistance(start, end string, opts ...CostOption) int {
	costs := editCosts{insert: 1, delete: 1, substitute: 1}
	for _, opt := range opts {
		opt(&costs)
	}

	a := []rune(start)
	b := []rune(end)
	cols := len(b) + 1

	// (len(a)+1) x (len(b)+1) table, row-major.
	table := make([]int, (len(a)+1)*cols)
	for i := 0; i <= len(a); i++ {
		table[i*cols] = i * costs.delete
	}
	for j := 0; j <= len(b); j++ {
		table[j] = j * costs.insert
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			replace := 0
			if a[i-1] != b[j-1] {
				replace = costs.substitute
			}
			table[i*cols+j] = min(
				costs.delete+table[(i-1)*cols+j],
				replace+table[(i-1)*cols+j-1],
				costs.insert+table[i*cols+j-1],
			)
		}
	}

	return table[len(a)*cols+len(b)]
}
