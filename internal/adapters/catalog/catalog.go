// Package catalog loads the curated event catalog from disk. Two
// formats carry the same content: a single YAML document and the
// curators' XLSX workbook layout. Both loaders resolve successor
// aliases before handing the catalog over, so the computation never
// sees historical codes.
package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/okian/rinkrank/internal/domain/model"
)

// Loader reads, decodes and alias-resolves one catalog file.
type Loader interface {
	Load(ctx context.Context) (model.Catalog, error)
}

// ForPath picks the loader matching a catalog file's extension.
func ForPath(path string) (Loader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return NewYAMLLoader(path), nil
	case ".xlsx":
		return NewXLSXLoader(path), nil
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}
