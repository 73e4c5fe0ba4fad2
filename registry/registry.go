package registry

import (
	"context"
	"io/fs"
	"log"
	"path/filepath"

	"github.com/kinhub/kinhub/metrics"
)

// Registry searches household files under a root directory. Files are read
// on every search so edits to the directory are picked up immediately.
type Registry struct {
	root    string
	parsers []Parser
}

func New(root string) *Registry {
	return &Registry{
		root:    root,
		parsers: []Parser{JSONParser{}, YAMLParser{}, XMLParser{}},
	}
}

// Households walks the registry root and parses every file a parser claims.
// Files in unknown formats and files that fail to parse are skipped.
func (r *Registry) Households(ctx context.Context) ([]Household, error) {
	var households []Household

	err := filepath.WalkDir(r.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			return nil
		}

		for _, parser := range r.parsers {
			if !parser.Matches(path) {
				continue
			}
			household, err := parser.Parse(path)
			if err != nil {
				log.Printf("skipping unparseable registry file %s: %v", path, err)
				metrics.RegistryParseFailures.Inc()
				return nil
			}
			metrics.RegistryFilesParsed.WithLabelValues(parser.Format()).Inc()
			households = append(households, *household)
			return nil
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return households, nil
}

// FindParents returns the name of every person listing a child with the
// given name, in directory walk order. Duplicates across files are kept.
func (r *Registry) FindParents(ctx context.Context, childName string) ([]string, error) {
	households, err := r.Households(ctx)
	if err != nil {
		return nil, err
	}

	parents := make([]string, 0)
	for _, household := range households {
		for _, person := range household.Persons {
			for _, child := range person.Children {
				if child.Name == childName {
					parents = append(parents, person.Name)
					break
				}
			}
		}
	}
	return parents, nil
}
