package domain

import (
	"errors"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble_ExactFieldSet(t *testing.T) {
	record, err := Assemble(Selections{FieldDayOfWeek: "Friday"}, testCatalog())
	require.NoError(t, err)

	got := make([]string, 0, len(record))
	for k := range record {
		got = append(got, k)
	}
	want := FieldNames()
	sort.Strings(got)
	sort.Strings(want)

	assert.Len(t, record, 32)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("field set mismatch (-want +got):\n%s", diff)
	}
}

func TestAssemble_DefaultsFromCatalog(t *testing.T) {
	catalog := testCatalog()
	record, err := Assemble(Selections{}, catalog)
	require.NoError(t, err)

	for _, field := range CategoricalFields() {
		want, err := catalog.Default(field)
		require.NoError(t, err)
		assert.Equal(t, want, record[field], field)
	}
	assert.Equal(t, 18, record[FieldHourOfDay])
	assert.Equal(t, 2, record[FieldNumberOfVehiclesInvolved])
	assert.Equal(t, 1, record[FieldNumberOfCasualties])
	assert.Equal(t, TimeSentinel, record[FieldTime])
}

func TestAssemble_Deterministic(t *testing.T) {
	sel := Selections{FieldWeatherConditions: "Raining", FieldHourOfDay: "7"}

	first, err := Assemble(sel, testCatalog())
	require.NoError(t, err)
	second, err := Assemble(sel, testCatalog())
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(first, second))
}

func TestAssemble_UserValues(t *testing.T) {
	sel := Selections{
		FieldHourOfDay:                "23",
		FieldDayOfWeek:                "Sunday",
		FieldWeatherConditions:        "Fog or mist",
		FieldNumberOfVehiclesInvolved: " 4 ",
		FieldNumberOfCasualties:       "10",
		FieldTypeOfCollision:          "Rollover",
	}
	record, err := Assemble(sel, testCatalog())
	require.NoError(t, err)

	assert.Equal(t, 23, record[FieldHourOfDay])
	assert.Equal(t, "Sunday", record[FieldDayOfWeek])
	assert.Equal(t, "Fog or mist", record[FieldWeatherConditions])
	assert.Equal(t, 4, record[FieldNumberOfVehiclesInvolved])
	assert.Equal(t, 10, record[FieldNumberOfCasualties])
	assert.Equal(t, "Rollover", record[FieldTypeOfCollision])
	// Unset fields still default.
	assert.Equal(t, "18-30", record[FieldAgeBandOfDriver])
}

func TestAssemble_NumericTypes(t *testing.T) {
	record, err := Assemble(Selections{FieldHourOfDay: "0"}, testCatalog())
	require.NoError(t, err)

	for _, f := range Schema() {
		switch f.Kind {
		case Numeric:
			_, ok := record.Int(f.Name)
			assert.True(t, ok, "%s should be int", f.Name)
		default:
			_, ok := record.String(f.Name)
			assert.True(t, ok, "%s should be string", f.Name)
		}
	}
	hour, _ := record.Int(FieldHourOfDay)
	assert.Equal(t, 0, hour)
}

func TestAssemble_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		sel   Selections
		field string
	}{
		{"unknown field", Selections{"Speed_limit": "50"}, "Speed_limit"},
		{"value outside catalog", Selections{FieldWeatherConditions: "Hail"}, FieldWeatherConditions},
		{"hour not an integer", Selections{FieldHourOfDay: "noon"}, FieldHourOfDay},
		{"hour above range", Selections{FieldHourOfDay: "24"}, FieldHourOfDay},
		{"hour below range", Selections{FieldHourOfDay: "-1"}, FieldHourOfDay},
		{"zero vehicles", Selections{FieldNumberOfVehiclesInvolved: "0"}, FieldNumberOfVehiclesInvolved},
		{"too many casualties", Selections{FieldNumberOfCasualties: "11"}, FieldNumberOfCasualties},
		{"time placeholder set", Selections{FieldTime: "17:02:00"}, FieldTime},
		{"unknown reported first", Selections{"b_unknown": "x", "a_unknown": "y"}, "a_unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Assemble(tt.sel, testCatalog())
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "want ValidationError, got %T", err)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestAssemble_SchemaErrors(t *testing.T) {
	t.Run("field missing from catalog", func(t *testing.T) {
		values := testCatalogValues()
		delete(values, FieldPedestrianMovement)

		_, err := Assemble(Selections{}, NewCatalog(values))

		var serr *SchemaError
		require.True(t, errors.As(err, &serr))
		assert.Equal(t, FieldPedestrianMovement, serr.Field)
	})

	t.Run("empty value sequence", func(t *testing.T) {
		values := testCatalogValues()
		values[FieldCasualtyClass] = nil

		_, err := Assemble(Selections{}, NewCatalog(values))

		var serr *SchemaError
		require.True(t, errors.As(err, &serr))
		assert.Equal(t, FieldCasualtyClass, serr.Field)
		assert.Contains(t, err.Error(), "no values")
	})

	t.Run("nil catalog", func(t *testing.T) {
		_, err := Assemble(Selections{}, nil)

		var serr *SchemaError
		require.True(t, errors.As(err, &serr))
	})
}

func TestFeatureRecord_Row(t *testing.T) {
	record, err := Assemble(Selections{FieldHourOfDay: "9"}, testCatalog())
	require.NoError(t, err)

	row := record.Row()
	require.Len(t, row, 32)
	assert.Equal(t, TimeSentinel, row[0])
	assert.Equal(t, 9, row[31])
}
