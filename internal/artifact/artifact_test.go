package artifact

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/couchcryptid/saferoute/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	a, err := Load("testdata/model.yaml", "testdata/catalog.yaml")
	require.NoError(t, err)
	require.NotNil(t, a.Catalog)
	require.NotNil(t, a.Classifier)

	record, err := domain.Assemble(domain.Selections{}, a.Catalog)
	require.NoError(t, err)

	probs, err := a.Classifier.PredictProba(context.Background(), record)
	require.NoError(t, err)
	assert.Len(t, probs, 3)
}

func TestLoad_MissingArtifacts(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.yaml")

	tests := []struct {
		name     string
		model    string
		catalog  string
		artifact string
	}{
		{"model missing", missing, "testdata/catalog.yaml", KindModel},
		{"catalog missing", "testdata/model.yaml", missing, KindCatalog},
		{"both missing reports model", missing, missing, KindModel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Load(tt.model, tt.catalog)
			require.Error(t, err)
			assert.Nil(t, a)

			var ierr *domain.InitializationError
			require.True(t, errors.As(err, &ierr))
			assert.Equal(t, tt.artifact, ierr.Artifact)
			assert.Equal(t, missing, ierr.Path)
			assert.ErrorIs(t, err, fs.ErrNotExist)
		})
	}
}

func TestLoadCatalog(t *testing.T) {
	c, err := LoadCatalog("testdata/catalog.yaml")
	require.NoError(t, err)

	def, err := c.Default(domain.FieldDayOfWeek)
	require.NoError(t, err)
	assert.Equal(t, "Monday", def)

	// Unquoted-looking values survive as strings.
	assert.True(t, c.Contains(domain.FieldDefectOfVehicle, "7"))
	assert.True(t, c.Contains(domain.FieldCasualtySeverity, "3"))
}

func TestLoadCatalog_Incomplete(t *testing.T) {
	_, err := LoadCatalog("testdata/catalog_incomplete.yaml")

	var ierr *domain.InitializationError
	require.True(t, errors.As(err, &ierr))
	assert.Equal(t, KindCatalog, ierr.Artifact)

	var serr *domain.SchemaError
	require.True(t, errors.As(err, &serr))
}

func TestLoadModel_Invalid(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"unknown key", "testdata/model_unknown_key.yaml", "categorcal"},
		{"wrong class count", "testdata/model_two_classes.yaml", "3 classes"},
		{"empty path", "", "no path configured"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadModel(tt.path)
			require.Error(t, err)

			var ierr *domain.InitializationError
			require.True(t, errors.As(err, &ierr))
			assert.Equal(t, KindModel, ierr.Artifact)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadModel_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	_, err := LoadModel(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestLoadModel_JSON(t *testing.T) {
	m, err := LoadModel("testdata/model.json")
	require.NoError(t, err)
	assert.Equal(t, []string{"Fatal injury", "Serious Injury", "Slight Injury"}, m.Classes())
}
