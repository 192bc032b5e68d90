package domain

// Catalog maps each categorical field to its ordered permitted values.
// It is built once at startup and never mutated, so it is safe to share
// across goroutines without locking.
type Catalog struct {
	values map[string][]string
}

// NewCatalog copies values into an immutable Catalog. Fields outside the
// schema are kept but never consulted.
func NewCatalog(values map[string][]string) *Catalog {
	c := &Catalog{values: make(map[string][]string, len(values))}
	for field, vs := range values {
		c.values[field] = append([]string(nil), vs...)
	}
	return c
}

// Values returns a copy of the permitted values for field, or nil if the
// catalog does not know it.
func (c *Catalog) Values(field string) []string {
	if c == nil {
		return nil
	}
	vs, ok := c.values[field]
	if !ok {
		return nil
	}
	return append([]string(nil), vs...)
}

// Default returns the first permitted value of field.
func (c *Catalog) Default(field string) (string, error) {
	if c == nil {
		return "", &SchemaError{Field: field, Reason: "no domain catalog loaded"}
	}
	vs, ok := c.values[field]
	if !ok {
		return "", &SchemaError{Field: field, Reason: "missing from domain catalog"}
	}
	if len(vs) == 0 {
		return "", &SchemaError{Field: field, Reason: "domain catalog has no values"}
	}
	return vs[0], nil
}

// Contains reports whether v is a permitted value of field.
func (c *Catalog) Contains(field, v string) bool {
	if c == nil {
		return false
	}
	for _, candidate := range c.values[field] {
		if candidate == v {
			return true
		}
	}
	return false
}

// Validate checks that every categorical schema field has at least one
// value, returning the first SchemaError in column order.
func (c *Catalog) Validate() error {
	for _, field := range CategoricalFields() {
		if _, err := c.Default(field); err != nil {
			return err
		}
	}
	return nil
}
