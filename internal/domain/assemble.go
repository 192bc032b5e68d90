package domain

import (
	"sort"
	"strconv"
	"strings"
)

// Assemble builds a complete FeatureRecord from the user's selections and
// the domain catalog. Fields the user did not supply take the first catalog
// value (categorical) or the schema default (numeric); Time is always
// TimeSentinel.
//
// Catalog gaps are reported as *SchemaError and bad user input as
// *ValidationError. Unknown selection keys are checked first, in sorted
// order, so the error returned for a given input is deterministic.
func Assemble(sel Selections, catalog *Catalog) (FeatureRecord, error) {
	if err := checkUnknownFields(sel); err != nil {
		return nil, err
	}

	record := make(FeatureRecord, len(schema))
	for _, f := range schema {
		raw, supplied := sel[f.Name]

		switch f.Kind {
		case Sentinel:
			if supplied {
				return nil, &ValidationError{Field: f.Name, Value: raw, Reason: "placeholder field cannot be set"}
			}
			record[f.Name] = TimeSentinel

		case Numeric:
			n, err := resolveNumeric(f, raw, supplied)
			if err != nil {
				return nil, err
			}
			record[f.Name] = n

		case Categorical:
			v, err := resolveCategorical(f, raw, supplied, catalog)
			if err != nil {
				return nil, err
			}
			record[f.Name] = v
		}
	}
	return record, nil
}

func checkUnknownFields(sel Selections) error {
	for _, name := range sortedKeys(sel) {
		if _, ok := schemaIndex[name]; !ok {
			return &ValidationError{Field: name, Reason: "unknown field"}
		}
	}
	return nil
}

func sortedKeys(sel Selections) []string {
	keys := make([]string, 0, len(sel))
	for k := range sel {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func resolveNumeric(f FieldSpec, raw string, supplied bool) (int, error) {
	if !supplied {
		return f.Range.Default, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &ValidationError{Field: f.Name, Value: raw, Reason: "must be an integer"}
	}
	if !f.Range.Contains(n) {
		return 0, &ValidationError{
			Field:  f.Name,
			Value:  raw,
			Reason: "must be between " + strconv.Itoa(f.Range.Min) + " and " + strconv.Itoa(f.Range.Max),
		}
	}
	return n, nil
}

func resolveCategorical(f FieldSpec, raw string, supplied bool, catalog *Catalog) (string, error) {
	def, err := catalog.Default(f.Name)
	if err != nil {
		return "", err
	}
	if !supplied {
		return def, nil
	}
	if !catalog.Contains(f.Name, raw) {
		return "", &ValidationError{Field: f.Name, Value: raw, Reason: "not a permitted value"}
	}
	return raw, nil
}
