package catalog

// Index maps a unit name to every catalog equation that mentions it,
// whether on the left- or right-hand side. Built once from a Catalog and
// read-only afterwards.
type Index struct {
	byUnit map[string][]Equation
}

// NewIndex builds the per-unit lookup for cat. Each equation is listed
// under every unit its vector mentions.
func NewIndex(cat Catalog) *Index {
	byUnit := make(map[string][]Equation)
	for _, eq := range cat {
		for unit := range eq.Exponents {
			byUnit[unit] = append(byUnit[unit], eq)
		}
	}
	return &Index{byUnit: byUnit}
}

// Lookup returns the equations mentioning unit. ok is false when the
// catalog never mentions the unit.
func (ix *Index) Lookup(unit string) (equations []Equation, ok bool) {
	equations, ok = ix.byUnit[unit]
	return equations, ok
}

// Units returns the number of distinct units the catalog mentions.
func (ix *Index) Units() int {
	return len(ix.byUnit)
}
