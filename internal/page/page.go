package page

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/heartfield/internal/config"
)

var (
	ErrNoSections       = errors.New("page has no sections")
	ErrDuplicateSection = errors.New("duplicate section id")
	ErrMissingSectionID = errors.New("section without id")
)

// Link is a navigation entry. In-page links use "#<section id>".
type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// Section is one block of the page. Reveal marks sections that fade in the
// first time they scroll into view.
type Section struct {
	ID      string   `yaml:"id"`
	Heading string   `yaml:"heading"`
	Lines   []string `yaml:"lines"`
	Reveal  bool     `yaml:"reveal"`
}

// Page is the page content.
type Page struct {
	Title    string    `yaml:"title"`
	Music    string    `yaml:"music"` // default background track path
	Links    []Link    `yaml:"links"`
	Sections []Section `yaml:"sections"`
}

// Load parses page content from YAML.
func Load(data []byte) (*Page, error) {
	var p Page
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal page: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Default returns the page shipped with the binary.
func Default() (*Page, error) {
	return Load(config.PageYAML)
}

func (p *Page) validate() error {
	if len(p.Sections) == 0 {
		return ErrNoSections
	}
	seen := make(map[string]bool, len(p.Sections))
	for i, s := range p.Sections {
		if s.ID == "" {
			return fmt.Errorf("%w at index %d", ErrMissingSectionID, i)
		}
		if seen[s.ID] {
			return fmt.Errorf("%w: %q", ErrDuplicateSection, s.ID)
		}
		seen[s.ID] = true
	}
	return nil
}

// Anchor resolves an in-page href ("#id") to a section index.
func (p *Page) Anchor(href string) (int, bool) {
	id, ok := strings.CutPrefix(href, "#")
	if !ok || id == "" {
		return 0, false
	}
	for i, s := range p.Sections {
		if s.ID == id {
			return i, true
		}
	}
	return 0, false
}
