package projreport

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed roster.yaml
var defaultRoster []byte

// Roster holds the lookup tables used by the wiki renderer: person names to
// wiki user identifiers and status codes to status markers. Keys are
// lowercased when the roster is parsed.
type Roster struct {
	People         map[string]string `yaml:"people"`
	PersonFallback string            `yaml:"person_fallback"`
	Statuses       map[string]string `yaml:"statuses"`
	StatusFallback string            `yaml:"status_fallback"`
}

// DefaultRoster returns the roster compiled into the binary. It is parsed
// once and shared; callers must not modify it.
func DefaultRoster() *Roster {
	return builtinRoster()
}

var builtinRoster = sync.OnceValue(func() *Roster {
	r, err := ParseRoster(defaultRoster)
	if err != nil {
		panic(fmt.Sprintf("projreport: embedded roster: %v", err))
	}
	return r
})

// LoadRoster reads a YAML roster file.
func LoadRoster(path string) (*Roster, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	r, err := ParseRoster(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// ParseRoster decodes a YAML roster document.
func ParseRoster(b []byte) (*Roster, error) {
	var raw Roster
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRoster, err)
	}
	r := &Roster{
		People:         lowerKeys(raw.People),
		PersonFallback: raw.PersonFallback,
		Statuses:       lowerKeys(raw.Statuses),
		StatusFallback: raw.StatusFallback,
	}
	if r.PersonFallback == "" {
		r.PersonFallback = "unknown"
	}
	if r.StatusFallback == "" {
		r.StatusFallback = "NA"
	}
	return r, nil
}

// Person returns the wiki person reference for name.
func (r *Roster) Person(name string) string {
	id, ok := r.People[strings.ToLower(name)]
	if !ok {
		id = r.PersonFallback
	}
	return "{{#person:" + id + "}}"
}

// Status returns the wiki marker for a status code, or the status fallback
// when the code is not known.
func (r *Roster) Status(code string) string {
	if m, ok := r.Statuses[strings.ToLower(code)]; ok {
		return m
	}
	return r.StatusFallback
}

func lowerKeys(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[strings.ToLower(k)] = v
	}
	return out
}
