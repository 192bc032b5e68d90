package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Immutable(t *testing.T) {
	values := map[string][]string{FieldDayOfWeek: {"Monday", "Tuesday"}}
	c := NewCatalog(values)

	values[FieldDayOfWeek][0] = "Sunday"
	got := c.Values(FieldDayOfWeek)
	assert.Equal(t, []string{"Monday", "Tuesday"}, got)

	got[0] = "Friday"
	def, err := c.Default(FieldDayOfWeek)
	require.NoError(t, err)
	assert.Equal(t, "Monday", def)
}

func TestCatalog_Contains(t *testing.T) {
	c := testCatalog()
	assert.True(t, c.Contains(FieldLightConditions, "Daylight"))
	assert.False(t, c.Contains(FieldLightConditions, "daylight"))
	assert.False(t, c.Contains("Unknown_field", "Daylight"))
	assert.Nil(t, c.Values("Unknown_field"))
}

func TestCatalog_Validate(t *testing.T) {
	require.NoError(t, testCatalog().Validate())

	values := testCatalogValues()
	delete(values, FieldRoadAllignment)
	err := NewCatalog(values).Validate()

	var serr *SchemaError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, FieldRoadAllignment, serr.Field)
}

func TestSchema(t *testing.T) {
	names := FieldNames()
	require.Len(t, names, 32)
	assert.Equal(t, FieldTime, names[0])
	assert.Equal(t, FieldHourOfDay, names[len(names)-1])
	assert.Len(t, CategoricalFields(), 28)

	f, ok := LookupField(FieldNumberOfCasualties)
	require.True(t, ok)
	assert.Equal(t, Numeric, f.Kind)
	assert.True(t, f.Range.Contains(10))
	assert.False(t, f.Range.Contains(0))

	_, ok = LookupField("nope")
	assert.False(t, ok)
}
