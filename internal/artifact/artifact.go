// Package artifact loads the two startup artifacts: the serialized
// classifier and the domain-values catalog. Both are read once, validated,
// and returned as immutable values; any failure is an
// *domain.InitializationError and the process must not go on to evaluate.
package artifact

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/couchcryptid/saferoute/internal/domain"
	"github.com/couchcryptid/saferoute/internal/model"
)

const (
	KindModel   = "model"
	KindCatalog = "catalog"
)

// Artifacts bundles the loaded, read-only resources shared by every evaluation.
type Artifacts struct {
	Catalog    *domain.Catalog
	Classifier *model.Linear
}

// Load reads the model and catalog artifacts. The model is loaded first so
// a missing model is reported even when the catalog is also absent.
func Load(modelPath, catalogPath string) (*Artifacts, error) {
	m, err := LoadModel(modelPath)
	if err != nil {
		return nil, err
	}
	c, err := LoadCatalog(catalogPath)
	if err != nil {
		return nil, err
	}
	return &Artifacts{Catalog: c, Classifier: m}, nil
}

// LoadCatalog reads a YAML (or JSON) mapping of field name to permitted
// values and checks that every categorical schema field has values.
func LoadCatalog(path string) (*domain.Catalog, error) {
	data, err := readArtifact(KindCatalog, path)
	if err != nil {
		return nil, err
	}

	var values map[string][]string
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, initErr(KindCatalog, path, fmt.Errorf("decode: %w", err))
	}

	catalog := domain.NewCatalog(values)
	if err := catalog.Validate(); err != nil {
		return nil, initErr(KindCatalog, path, err)
	}
	return catalog, nil
}

// LoadModel reads and validates a model artifact. Unknown keys are rejected
// so a misspelled section cannot silently zero out part of the model.
func LoadModel(path string) (*model.Linear, error) {
	data, err := readArtifact(KindModel, path)
	if err != nil {
		return nil, err
	}

	var spec model.Spec
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("artifact is empty")
		}
		return nil, initErr(KindModel, path, fmt.Errorf("decode: %w", err))
	}

	m, err := model.New(spec)
	if err != nil {
		return nil, initErr(KindModel, path, err)
	}
	return m, nil
}

func readArtifact(kind, path string) ([]byte, error) {
	if path == "" {
		return nil, initErr(kind, path, errors.New("no path configured"))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, initErr(kind, path, err)
	}
	return data, nil
}

func initErr(kind, path string, err error) error {
	return &domain.InitializationError{Artifact: kind, Path: path, Err: err}
}
