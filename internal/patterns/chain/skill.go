package chain

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Skill is an ordered mechanic skill level.
type Skill int

const (
	OilChangeOnly Skill = iota
	Junior
	Apprentice
	MasterMechanic
)

var skillNames = [...]string{
	OilChangeOnly:  "OilChangeOnly",
	Junior:         "Junior",
	Apprentice:     "Apprentice",
	MasterMechanic: "MasterMechanic",
}

func (s Skill) String() string {
	if s < 0 || int(s) >= len(skillNames) {
		return fmt.Sprintf("Skill(%d)", int(s))
	}
	return skillNames[s]
}

// ParseSkill maps a case-insensitive name to a Skill.
func ParseSkill(name string) (Skill, error) {
	for i, n := range skillNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Skill(i), nil
		}
	}
	return 0, fmt.Errorf("unknown skill %q", name)
}

// UnmarshalYAML accepts skill names.
func (s *Skill) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseSkill(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*s = parsed
	return nil
}
