// Package articles serves the read-only catalog of care guides and articles.
package articles

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/plantpal/internal/models"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Catalog is an immutable, ordered list of articles.
type Catalog struct {
	items []models.Article
}

// Parse decodes a YAML list of articles.
func Parse(data []byte) (*Catalog, error) {
	var items []models.Article
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse articles: %w", err)
	}
	for i, a := range items {
		if a.ID == "" || a.Title == "" {
			return nil, fmt.Errorf("article %d: id and title are required", i)
		}
		if a.Type != models.ArticleGuide && a.Type != models.ArticleArticle {
			return nil, fmt.Errorf("article %s: unknown type %q", a.ID, a.Type)
		}
	}
	return &Catalog{items: items}, nil
}

// Default returns the catalog built into the binary.
func Default() (*Catalog, error) {
	return Parse(catalogYAML)
}

// List returns a copy of every article in catalog order.
func (c *Catalog) List() []models.Article {
	out := make([]models.Article, len(c.items))
	copy(out, c.items)
	return out
}
