package domain

import "fmt"

// DefaultExposedFields are the fields the assessment form asks for; every
// other field is filled from defaults.
var DefaultExposedFields = []string{
	FieldHourOfDay,
	FieldDayOfWeek,
	FieldWeatherConditions,
	FieldLightConditions,
	FieldNumberOfVehiclesInvolved,
	FieldNumberOfCasualties,
	FieldRoadSurfaceConditions,
	FieldCauseOfAccident,
	FieldAgeBandOfDriver,
	FieldSexOfDriver,
	FieldDrivingExperience,
	FieldTypeOfVehicle,
	FieldTypeOfCollision,
	FieldTypesOfJunction,
}

// ExposurePolicy is the ordered set of fields a front end lets the user set.
type ExposurePolicy struct {
	fields []string
	set    map[string]struct{}
}

// NewExposurePolicy validates names against the schema. An empty list
// selects DefaultExposedFields. Sentinel fields cannot be exposed.
func NewExposurePolicy(names []string) (*ExposurePolicy, error) {
	if len(names) == 0 {
		names = DefaultExposedFields
	}
	p := &ExposurePolicy{set: make(map[string]struct{}, len(names))}
	for _, name := range names {
		f, ok := LookupField(name)
		if !ok {
			return nil, fmt.Errorf("exposed field %q is not in the schema", name)
		}
		if f.Kind == Sentinel {
			return nil, fmt.Errorf("exposed field %q is a placeholder and cannot be exposed", name)
		}
		if _, dup := p.set[name]; dup {
			continue
		}
		p.set[name] = struct{}{}
		p.fields = append(p.fields, name)
	}
	return p, nil
}

// Fields returns the exposed field names in display order.
func (p *ExposurePolicy) Fields() []string {
	return append([]string(nil), p.fields...)
}

// Exposed reports whether the user may set field.
func (p *ExposurePolicy) Exposed(field string) bool {
	_, ok := p.set[field]
	return ok
}

// Check rejects selections for fields the policy hides.
func (p *ExposurePolicy) Check(sel Selections) error {
	for _, name := range sortedKeys(sel) {
		if !p.Exposed(name) {
			return &ValidationError{Field: name, Value: sel[name], Reason: "field is not exposed"}
		}
	}
	return nil
}

// FieldView describes one exposed field for rendering a form control.
type FieldView struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Kind    string   `json:"kind"`
	Values  []string `json:"values,omitempty"`
	Range   *Range   `json:"range,omitempty"`
	Default string   `json:"default"`
}

// Describe returns a FieldView per exposed field, with catalog values for
// categorical fields and bounds for numeric ones.
func (p *ExposurePolicy) Describe(catalog *Catalog) ([]FieldView, error) {
	views := make([]FieldView, 0, len(p.fields))
	for _, name := range p.fields {
		f, _ := LookupField(name)
		v := FieldView{Name: f.Name, Label: f.Label, Kind: f.Kind.String()}
		switch f.Kind {
		case Numeric:
			r := f.Range
			v.Range = &r
			v.Default = fmt.Sprint(r.Default)
		case Categorical:
			def, err := catalog.Default(f.Name)
			if err != nil {
				return nil, err
			}
			v.Values = catalog.Values(f.Name)
			v.Default = def
		}
		views = append(views, v)
	}
	return views, nil
}
