package file

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/whatif-cli/internal/core/domain"
)

// decisionDoc is the on-disk shape of a decision file.
type decisionDoc struct {
	Question        string        `toml:"question"`
	ActualChoice    string        `toml:"actual_choice"`
	AlternateChoice string        `toml:"alternate_choice"`
	Context         string        `toml:"context,omitempty"`
	Categories      []categoryDoc `toml:"categories,omitempty"`
}

type categoryDoc struct {
	ID         string `toml:"id"`
	Name       string `toml:"name,omitempty"`
	Importance int    `toml:"importance"`
}

// LoadDecision reads a decision from a TOML file.
// Unknown keys are rejected. Missing category names are filled from the
// built-in set.
func LoadDecision(path string) (domain.Decision, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Decision{}, fmt.Errorf("reading decision file: %w", err)
	}
	return ParseDecision(data)
}

// ParseDecision decodes a decision from TOML bytes.
func ParseDecision(data []byte) (domain.Decision, error) {
	var doc decisionDoc
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return domain.Decision{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, strict.String())
		}
		return domain.Decision{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	builtin := make(map[domain.CategoryID]string)
	for _, c := range domain.DefaultCategories() {
		builtin[c.ID] = c.Name
	}

	d := domain.Decision{
		Question:        doc.Question,
		ActualChoice:    doc.ActualChoice,
		AlternateChoice: doc.AlternateChoice,
		Context:         doc.Context,
	}
	for _, c := range doc.Categories {
		id := domain.CategoryID(c.ID)
		name := c.Name
		if name == "" {
			name = builtin[id]
		}
		d.Categories = append(d.Categories, domain.Category{ID: id, Name: name, Importance: c.Importance})
	}
	return d, nil
}

// SaveDecision writes a decision to a TOML file.
func SaveDecision(path string, d domain.Decision) error {
	data, err := EncodeDecision(d)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// EncodeDecision encodes a decision as TOML.
func EncodeDecision(d domain.Decision) ([]byte, error) {
	doc := decisionDoc{
		Question:        d.Question,
		ActualChoice:    d.ActualChoice,
		AlternateChoice: d.AlternateChoice,
		Context:         d.Context,
	}
	for _, c := range d.Categories {
		doc.Categories = append(doc.Categories, categoryDoc{
			ID:         string(c.ID),
			Name:       c.Name,
			Importance: c.Importance,
		})
	}
	data, err := toml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding decision: %w", err)
	}
	return data, nil
}
