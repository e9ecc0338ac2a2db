// Package catalog loads card and skill definitions and derives their board
// width and border options.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alexanderramin/lineup/internal/domain"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/cards.toml
var embedded embed.FS

type file struct {
	Items  []Card `json:"items" toml:"items"`
	Skills []Card `json:"skills" toml:"skills"`
}

// Catalog is an immutable, id-indexed set of cards.
type Catalog struct {
	cards []Card
	byID  map[string]int
}

// Default returns the catalog shipped with the binary.
func Default() (*Catalog, error) {
	data, err := embedded.ReadFile("embedded/cards.toml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded catalog: %w", err)
	}
	return Parse(data, "toml")
}

// Load reads a catalog file. Files ending in .toml are TOML, anything else
// is JSON.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	format := "json"
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		format = "toml"
	}
	c, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a catalog in the given format ("json" or "toml").
func Parse(data []byte, format string) (*Catalog, error) {
	var f file
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing TOML: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown catalog format %q", format)
	}

	c := &Catalog{byID: make(map[string]int, len(f.Items)+len(f.Skills))}
	add := func(cards []Card, kind domain.CardKind) error {
		for i, card := range cards {
			if strings.TrimSpace(card.ID) == "" {
				return fmt.Errorf("%ss[%d]: id is required", kind, i)
			}
			if _, dup := c.byID[card.ID]; dup {
				return fmt.Errorf("%ss[%d]: duplicate id %q", kind, i, card.ID)
			}
			card.Kind = kind
			c.byID[card.ID] = len(c.cards)
			c.cards = append(c.cards, card)
		}
		return nil
	}
	if err := add(f.Items, domain.KindItem); err != nil {
		return nil, err
	}
	if err := add(f.Skills, domain.KindSkill); err != nil {
		return nil, err
	}
	return c, nil
}

// Len returns the number of cards.
func (c *Catalog) Len() int {
	return len(c.cards)
}

// Get returns the card with the given id.
func (c *Catalog) Get(id string) (Card, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Card{}, false
	}
	return c.cards[i], true
}

// Search returns cards of the given kind whose id or names contain query,
// case-insensitively, ordered by display name. An empty kind matches both.
func (c *Catalog) Search(query string, kind domain.CardKind) []Card {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []Card
	for _, card := range c.cards {
		if kind != "" && card.Kind != kind {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(card.ID), q) &&
			!strings.Contains(strings.ToLower(card.NameCN), q) &&
			!strings.Contains(strings.ToLower(card.NameEN), q) {
			continue
		}
		out = append(out, card)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DisplayName() < out[j].DisplayName()
	})
	return out
}
