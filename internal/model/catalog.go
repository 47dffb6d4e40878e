package model

// Catalog is an immutable, ordered list of variants.
type Catalog struct {
	variants []Variant
}

func NewCatalog(vs []Variant) Catalog {
	out := make([]Variant, len(vs))
	copy(out, vs)
	return Catalog{variants: out}
}

// Variants returns a copy; callers cannot mutate the catalog.
func (c Catalog) Variants() []Variant {
	out := make([]Variant, len(c.variants))
	copy(out, c.variants)
	return out
}

func (c Catalog) Len() int { return len(c.variants) }

// Seed is the compiled-in catalog.
func Seed() Catalog {
	return NewCatalog([]Variant{
		{Size: Small, Color: "blue", Price: 34530, Available: 20},
		{Size: Small, Color: "red", Price: 34530, Available: 20},
		{Size: Medium, Color: "blue", Price: 2300, Available: 20},
		{Size: Medium, Color: "red", Price: 4500, Available: 20},
	})
}

// Sizes lists the selectable sizes in display order.
func Sizes() []Size { return []Size{Small, Medium} }

func BuiltinColors() []Color { return []Color{"blue", "red"} }
