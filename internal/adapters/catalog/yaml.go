package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/okian/rinkrank/internal/domain/model"
	"github.com/okian/rinkrank/pkg/metrics"
)

// YAMLLoader reads the single-document catalog format: a teams list
// and an events list. Decoding is strict; a misspelled field fails the
// load instead of silently dropping curator data.
type YAMLLoader struct {
	path string
}

// NewYAMLLoader creates a loader for path.
func NewYAMLLoader(path string) *YAMLLoader {
	return &YAMLLoader{path: path}
}

// Load implements Loader.
func (l *YAMLLoader) Load(ctx context.Context) (model.Catalog, error) {
	start := time.Now()

	data, err := os.ReadFile(l.path)
	if err != nil {
		return model.Catalog{}, fmt.Errorf("read catalog: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cat model.Catalog
	if err := dec.Decode(&cat); err != nil {
		if errors.Is(err, io.EOF) {
			return model.Catalog{}, fmt.Errorf("%s: empty catalog: %w", l.path, model.ErrIncompleteData)
		}
		return model.Catalog{}, fmt.Errorf("parse %s: %w", l.path, err)
	}
	if err := cat.ResolveAliases(); err != nil {
		return model.Catalog{}, fmt.Errorf("resolve teams in %s: %w", l.path, err)
	}

	metrics.RecordCatalogLoad(time.Since(start).Seconds())
	metrics.UpdateCatalogSize(len(cat.Events), len(cat.Teams))
	return cat, nil
}
