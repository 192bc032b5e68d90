package domain

// Selections holds the raw values a user picked, keyed by field name.
// Numeric fields arrive as decimal strings, exactly as a form posts them.
type Selections map[string]string

// FeatureRecord is one complete input row for the classifier: every schema
// field, string-valued for categorical and sentinel fields, int-valued for
// numeric fields.
type FeatureRecord map[string]any

// String returns a string-valued field.
func (r FeatureRecord) String(field string) (string, bool) {
	v, ok := r[field].(string)
	return v, ok
}

// Int returns an int-valued field.
func (r FeatureRecord) Int(field string) (int, bool) {
	v, ok := r[field].(int)
	return v, ok
}

// Row returns the record's values in schema column order.
func (r FeatureRecord) Row() []any {
	row := make([]any, len(schema))
	for i, f := range schema {
		row[i] = r[f.Name]
	}
	return row
}
