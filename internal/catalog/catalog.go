package catalog

import "pricecomp/internal"

// Catalog is the frozen product set for one store. It is complete the
// moment the builder returns it and is never mutated afterwards, so
// concurrent reads need no locking.
type Catalog struct {
	store    internal.Store
	products []internal.Product
}

func (c *Catalog) Store() internal.Store { return c.store }

func (c *Catalog) Len() int { return len(c.products) }

// Products returns the catalog contents in load order. Callers must
// treat the slice as read-only.
func (c *Catalog) Products() []internal.Product { return c.products }
