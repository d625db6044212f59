package deck

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed data/jargon.yaml
var defaultData []byte

var validate = validator.New()

// fileSchema is the on-disk shape of a deck file.
type fileSchema struct {
	Terms    []termRecord    `yaml:"terms"`
	Acronyms []acronymRecord `yaml:"acronyms"`
}

type termRecord struct {
	Term       string `yaml:"term" validate:"required"`
	Definition string `yaml:"definition" validate:"required"`
	Category   string `yaml:"category"`
	Example    string `yaml:"example"`
}

type acronymRecord struct {
	Acronym  string `yaml:"acronym" validate:"required"`
	FullName string `yaml:"full_name" validate:"required"`
	Category string `yaml:"category"`
	Example  string `yaml:"example"`
}

// Default returns the decks embedded in the binary.
func Default() (*Set, error) {
	return Parse(defaultData)
}

// LoadFile reads a YAML deck file from disk.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck file: %w", err)
	}
	set, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// Parse decodes YAML deck data and validates every card.
func Parse(data []byte) (*Set, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f fileSchema
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: %w", Terms, ErrEmptyDeck)
		}
		return nil, fmt.Errorf("parse deck file: %w", err)
	}

	terms := Deck{Name: Terms, Cards: make([]Card, 0, len(f.Terms))}
	for i, r := range f.Terms {
		if err := validate.Struct(r); err != nil {
			return nil, fmt.Errorf("terms[%d]: %w", i, err)
		}
		terms.Cards = append(terms.Cards, Card{
			Front:    r.Term,
			Back:     r.Definition,
			Category: r.Category,
			Example:  r.Example,
		})
	}

	acronyms := Deck{Name: Acronyms, Cards: make([]Card, 0, len(f.Acronyms))}
	for i, r := range f.Acronyms {
		if err := validate.Struct(r); err != nil {
			return nil, fmt.Errorf("acronyms[%d]: %w", i, err)
		}
		acronyms.Cards = append(acronyms.Cards, Card{
			Front:    r.Acronym,
			Back:     r.FullName,
			Category: r.Category,
			Example:  r.Example,
		})
	}

	return NewSet(terms, acronyms)
}
