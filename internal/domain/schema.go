package domain

// FieldKind distinguishes how a schema field is populated and typed.
type FieldKind int

const (
	// Categorical fields take a string drawn from the domain catalog.
	Categorical FieldKind = iota
	// Numeric fields take a bounded integer.
	Numeric
	// Sentinel fields always carry a fixed placeholder value.
	Sentinel
)

func (k FieldKind) String() string {
	switch k {
	case Categorical:
		return "categorical"
	case Numeric:
		return "numeric"
	case Sentinel:
		return "sentinel"
	default:
		return "unknown"
	}
}

// Field names of the classifier's input schema.
const (
	FieldTime                     = "Time"
	FieldDayOfWeek                = "Day_of_week"
	FieldAgeBandOfDriver          = "Age_band_of_driver"
	FieldSexOfDriver              = "Sex_of_driver"
	FieldEducationalLevel         = "Educational_level"
	FieldVehicleDriverRelation    = "Vehicle_driver_relation"
	FieldDrivingExperience        = "Driving_experience"
	FieldTypeOfVehicle            = "Type_of_vehicle"
	FieldOwnerOfVehicle           = "Owner_of_vehicle"
	FieldServiceYearOfVehicle     = "Service_year_of_vehicle"
	FieldDefectOfVehicle          = "Defect_of_vehicle"
	FieldAreaAccidentOccured      = "Area_accident_occured"
	FieldLanesOrMedians           = "Lanes_or_Medians"
	FieldRoadAllignment           = "Road_allignment"
	FieldTypesOfJunction          = "Types_of_Junction"
	FieldRoadSurfaceType          = "Road_surface_type"
	FieldRoadSurfaceConditions    = "Road_surface_conditions"
	FieldLightConditions          = "Light_conditions"
	FieldWeatherConditions        = "Weather_conditions"
	FieldTypeOfCollision          = "Type_of_collision"
	FieldNumberOfVehiclesInvolved = "Number_of_vehicles_involved"
	FieldNumberOfCasualties       = "Number_of_casualties"
	FieldVehicleMovement          = "Vehicle_movement"
	FieldCasualtyClass            = "Casualty_class"
	FieldSexOfCasualty            = "Sex_of_casualty"
	FieldAgeBandOfCasualty        = "Age_band_of_casualty"
	FieldCasualtySeverity         = "Casualty_severity"
	FieldWorkOfCasuality          = "Work_of_casuality"
	FieldFitnessOfCasuality       = "Fitness_of_casuality"
	FieldPedestrianMovement       = "Pedestrian_movement"
	FieldCauseOfAccident          = "Cause_of_accident"
	FieldHourOfDay                = "Hour_of_Day"
)

// TimeSentinel is the fixed value of the placeholder Time column. The model
// reads hour-of-day from Hour_of_Day; Time exists only so the row matches the
// column set the model was fitted on.
const TimeSentinel = "00:00:00"

// Range bounds a numeric field (inclusive) and names its form default.
type Range struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Default int `json:"default"`
}

// Contains reports whether v lies within the inclusive bounds.
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// FieldSpec describes one column of the feature record.
type FieldSpec struct {
	Name  string
	Label string
	Kind  FieldKind
	Range Range // numeric fields only
}

// schema lists every column in the order the classifier was trained on.
var schema = []FieldSpec{
	{Name: FieldTime, Label: "Time", Kind: Sentinel},
	{Name: FieldDayOfWeek, Label: "Day of Week", Kind: Categorical},
	{Name: FieldAgeBandOfDriver, Label: "Driver Age", Kind: Categorical},
	{Name: FieldSexOfDriver, Label: "Driver Sex", Kind: Categorical},
	{Name: FieldEducationalLevel, Label: "Educational Level", Kind: Categorical},
	{Name: FieldVehicleDriverRelation, Label: "Vehicle-Driver Relation", Kind: Categorical},
	{Name: FieldDrivingExperience, Label: "Experience", Kind: Categorical},
	{Name: FieldTypeOfVehicle, Label: "Vehicle Type", Kind: Categorical},
	{Name: FieldOwnerOfVehicle, Label: "Vehicle Owner", Kind: Categorical},
	{Name: FieldServiceYearOfVehicle, Label: "Vehicle Service Year", Kind: Categorical},
	{Name: FieldDefectOfVehicle, Label: "Vehicle Defect", Kind: Categorical},
	{Name: FieldAreaAccidentOccured, Label: "Area", Kind: Categorical},
	{Name: FieldLanesOrMedians, Label: "Lanes or Medians", Kind: Categorical},
	{Name: FieldRoadAllignment, Label: "Road Alignment", Kind: Categorical},
	{Name: FieldTypesOfJunction, Label: "Junction", Kind: Categorical},
	{Name: FieldRoadSurfaceType, Label: "Road Surface Type", Kind: Categorical},
	{Name: FieldRoadSurfaceConditions, Label: "Road Surface", Kind: Categorical},
	{Name: FieldLightConditions, Label: "Light Conditions", Kind: Categorical},
	{Name: FieldWeatherConditions, Label: "Weather", Kind: Categorical},
	{Name: FieldTypeOfCollision, Label: "Collision Type", Kind: Categorical},
	{Name: FieldNumberOfVehiclesInvolved, Label: "Vehicles Involved", Kind: Numeric, Range: Range{Min: 1, Max: 10, Default: 2}},
	{Name: FieldNumberOfCasualties, Label: "Casualties", Kind: Numeric, Range: Range{Min: 1, Max: 10, Default: 1}},
	{Name: FieldVehicleMovement, Label: "Vehicle Movement", Kind: Categorical},
	{Name: FieldCasualtyClass, Label: "Casualty Class", Kind: Categorical},
	{Name: FieldSexOfCasualty, Label: "Casualty Sex", Kind: Categorical},
	{Name: FieldAgeBandOfCasualty, Label: "Casualty Age", Kind: Categorical},
	{Name: FieldCasualtySeverity, Label: "Casualty Severity", Kind: Categorical},
	{Name: FieldWorkOfCasuality, Label: "Casualty Occupation", Kind: Categorical},
	{Name: FieldFitnessOfCasuality, Label: "Casualty Fitness", Kind: Categorical},
	{Name: FieldPedestrianMovement, Label: "Pedestrian Movement", Kind: Categorical},
	{Name: FieldCauseOfAccident, Label: "Cause", Kind: Categorical},
	{Name: FieldHourOfDay, Label: "Time of Day", Kind: Numeric, Range: Range{Min: 0, Max: 23, Default: 18}},
}

var schemaIndex = func() map[string]int {
	idx := make(map[string]int, len(schema))
	for i, f := range schema {
		idx[f.Name] = i
	}
	return idx
}()

// Schema returns a copy of the ordered field specifications.
func Schema() []FieldSpec {
	out := make([]FieldSpec, len(schema))
	copy(out, schema)
	return out
}

// FieldNames returns the schema's field names in column order.
func FieldNames() []string {
	names := make([]string, len(schema))
	for i, f := range schema {
		names[i] = f.Name
	}
	return names
}

// LookupField returns the spec for a field name.
func LookupField(name string) (FieldSpec, bool) {
	i, ok := schemaIndex[name]
	if !ok {
		return FieldSpec{}, false
	}
	return schema[i], true
}

// CategoricalFields returns the names of all catalog-backed fields in column order.
func CategoricalFields() []string {
	var names []string
	for _, f := range schema {
		if f.Kind == Categorical {
			names = append(names, f.Name)
		}
	}
	return names
}
