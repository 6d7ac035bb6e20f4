package out

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"bloom/internal/modules/catalog/domain"
	catalogout "bloom/internal/modules/catalog/port/out"
)

//go:embed data/catalog.yaml
var builtinCatalog []byte

type catalogDocument struct {
	Phrases    []string           `yaml:"phrases"`
	Goals      []domain.Goal      `yaml:"goals"`
	Challenges []domain.Challenge `yaml:"challenges"`
}

// YAMLCatalogSource reads the catalog from a YAML file, or from the copy
// compiled into the binary when no path is given.
type YAMLCatalogSource struct {
	path string
}

func NewEmbeddedCatalogSource() catalogout.CatalogSource {
	return &YAMLCatalogSource{}
}

func NewFileCatalogSource(path string) catalogout.CatalogSource {
	return &YAMLCatalogSource{path: path}
}

func (s *YAMLCatalogSource) Load(_ context.Context) (domain.Catalog, error) {
	raw := builtinCatalog
	if s.path != "" {
		b, err := os.ReadFile(s.path)
		if err != nil {
			return domain.Catalog{}, fmt.Errorf("read catalog: %w", err)
		}
		raw = b
	}
	doc := catalogDocument{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return domain.Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	cat, err := domain.NewCatalog(doc.Challenges, doc.Goals, doc.Phrases)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("validate catalog: %w", err)
	}
	return cat, nil
}
