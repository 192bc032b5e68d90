package domain

import "context"

// testCatalogValues returns a catalog covering every categorical field.
// Fields the form exposes get realistic values; the rest get two markers.
func testCatalogValues() map[string][]string {
	values := map[string][]string{
		FieldDayOfWeek:             {"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
		FieldAgeBandOfDriver:       {"18-30", "31-50", "Under 18", "Over 51", "Unknown"},
		FieldSexOfDriver:           {"Male", "Female", "Unknown"},
		FieldDrivingExperience:     {"1-2yr", "Above 10yr", "5-10yr", "2-5yr", "No Licence", "Below 1yr"},
		FieldTypeOfVehicle:         {"Automobile", "Public (> 45 seats)", "Lorry (41-100Q)", "Taxi", "Motorcycle"},
		FieldTypesOfJunction:       {"No junction", "Y Shape", "Crossing", "T Shape", "X Shape"},
		FieldRoadSurfaceConditions: {"Dry", "Wet or damp", "Snow", "Flood over 3cm. deep"},
		FieldLightConditions:       {"Daylight", "Darkness - lights lit", "Darkness - no lighting"},
		FieldWeatherConditions:     {"Normal", "Raining", "Raining and Windy", "Cloudy", "Fog or mist"},
		FieldTypeOfCollision:       {"Collision with roadside-parked vehicles", "Vehicle with vehicle collision", "Rollover", "Collision with pedestrians"},
		FieldCauseOfAccident:       {"Moving Backward", "Overtaking", "Overspeed", "Drunk driving", "No distancing"},
	}
	for _, field := range CategoricalFields() {
		if _, ok := values[field]; !ok {
			values[field] = []string{field + "-first", field + "-second"}
		}
	}
	return values
}

func testCatalog() *Catalog {
	return NewCatalog(testCatalogValues())
}

type stubClassifier struct {
	probs []float64
	err   error
	calls int
	last  FeatureRecord
}

func (s *stubClassifier) PredictProba(_ context.Context, record FeatureRecord) ([]float64, error) {
	s.calls++
	s.last = record
	return s.probs, s.err
}
