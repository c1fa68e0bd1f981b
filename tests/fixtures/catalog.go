// Package fixtures provides reusable catalog test data.
// Fixtures are described in YAML and loaded into a catalog.Catalog so that
// test suites share the same authors, magazines and articles.
package fixtures

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"magazine-catalog/internal/catalog"
	"magazine-catalog/internal/domain/entity"
)

//go:embed testdata/catalog.yaml
var defaultCatalog string

// CatalogFile is the YAML document shape of a catalog fixture.
// Articles refer to authors and magazines by name.
type CatalogFile struct {
	Authors   []string       `yaml:"authors"`
	Magazines []MagazineSpec `yaml:"magazines"`
	Articles  []ArticleSpec  `yaml:"articles"`
}

// MagazineSpec describes one magazine in a fixture.
type MagazineSpec struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

// ArticleSpec describes one article in a fixture.
type ArticleSpec struct {
	Author   string `yaml:"author"`
	Magazine string `yaml:"magazine"`
	Title    string `yaml:"title"`
}

// Seeded gives tests access to the entities a fixture created, keyed by name.
type Seeded struct {
	Catalog   *catalog.Catalog
	Authors   map[string]*entity.Author
	Magazines map[string]*entity.Magazine
	Articles  []*entity.Article
}

// Load decodes a YAML fixture from r and seeds c with it, in document order:
// authors, then magazines, then articles.
//
// Example:
//
//	seeded, err := fixtures.Load(strings.NewReader(doc), catalog.New())
//	vogue := seeded.Magazines["Vogue"]
func Load(r io.Reader, c *catalog.Catalog) (*Seeded, error) {
	var file CatalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode catalog fixture: %w", err)
	}

	seeded := &Seeded{
		Catalog:   c,
		Authors:   make(map[string]*entity.Author, len(file.Authors)),
		Magazines: make(map[string]*entity.Magazine, len(file.Magazines)),
	}

	for _, name := range file.Authors {
		if _, dup := seeded.Authors[name]; dup {
			return nil, fmt.Errorf("duplicate author %q in fixture", name)
		}
		a, err := c.Authors.Create(name)
		if err != nil {
			return nil, fmt.Errorf("seed author %q: %w", name, err)
		}
		seeded.Authors[name] = a
	}

	for _, spec := range file.Magazines {
		if _, dup := seeded.Magazines[spec.Name]; dup {
			return nil, fmt.Errorf("duplicate magazine %q in fixture", spec.Name)
		}
		m, err := c.Magazines.Create(spec.Name, spec.Category)
		if err != nil {
			return nil, fmt.Errorf("seed magazine %q: %w", spec.Name, err)
		}
		seeded.Magazines[spec.Name] = m
	}

	for i, spec := range file.Articles {
		author, ok := seeded.Authors[spec.Author]
		if !ok {
			return nil, fmt.Errorf("article %d: unknown author %q", i, spec.Author)
		}
		magazine, ok := seeded.Magazines[spec.Magazine]
		if !ok {
			return nil, fmt.Errorf("article %d: unknown magazine %q", i, spec.Magazine)
		}
		article, err := c.Authors.AddArticle(author, magazine, spec.Title)
		if err != nil {
			return nil, fmt.Errorf("article %d: %w", i, err)
		}
		seeded.Articles = append(seeded.Articles, article)
	}

	return seeded, nil
}

// Default seeds c with the bundled fixture in testdata/catalog.yaml.
func Default(c *catalog.Catalog) (*Seeded, error) {
	return Load(strings.NewReader(defaultCatalog), c)
}
