package builder

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/comalice/storex/internal/patterns/chain"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type Service struct {
	Name         string      `yaml:"name"`
	Price        float64     `yaml:"price"`
	MinimumSkill chain.Skill `yaml:"minimumSkill"`
}

type Mechanic struct {
	Name  string      `yaml:"name"`
	Skill chain.Skill `yaml:"skill"`
}

// Catalog lists the services offered and the mechanics on staff, in order.
type Catalog struct {
	Services  []Service  `yaml:"services"`
	Mechanics []Mechanic `yaml:"mechanics"`
}

// DefaultCatalog parses the embedded catalog.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalog)
}

func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return &c, nil
}

func (c *Catalog) Service(name string) (Service, bool) {
	for _, s := range c.Services {
		if s.Name == name {
			return s, true
		}
	}
	return Service{}, false
}

func (c *Catalog) Mechanic(name string) (Mechanic, bool) {
	for _, m := range c.Mechanics {
		if m.Name == name {
			return m, true
		}
	}
	return Mechanic{}, false
}
