package itembank

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/mod/semver"
)

// FormatVersion is the bank file format version this build writes and the
// newest it understands. Banks with a different major version are rejected.
const FormatVersion = "v1.0.0"

// Bank is a named collection of items loaded from a bank file.
type Bank struct {
	// FormatVersion is the semver of the bank file format.
	FormatVersion string `json:"format_version"`

	// Name identifies the bank in attempt records.
	Name string `json:"name"`

	// Items is the item pool in authoring order. Order is significant:
	// it is the deterministic tie-break order for item selection.
	Items []Item `json:"items"`
}

// Load reads, validates and parses a bank file.
func Load(path string) (*Bank, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}
	return Parse(raw)
}

// Parse validates raw bank JSON against the embedded schema and decodes it.
func Parse(raw []byte) (*Bank, error) {
	if err := ValidateSchema(raw); err != nil {
		return nil, err
	}

	var bank Bank
	if err := json.Unmarshal(raw, &bank); err != nil {
		return nil, fmt.Errorf("decode bank: %w", err)
	}

	if err := bank.check(); err != nil {
		return nil, err
	}
	return &bank, nil
}

// check enforces the constraints the JSON schema cannot express.
func (b *Bank) check() error {
	if !semver.IsValid(b.FormatVersion) {
		return fmt.Errorf("bank format version %q is not a valid semver", b.FormatVersion)
	}
	if semver.Major(b.FormatVersion) != semver.Major(FormatVersion) {
		return fmt.Errorf("bank format %s is not compatible with %s", b.FormatVersion, FormatVersion)
	}

	seen := make(map[string]bool, len(b.Items))
	for _, it := range b.Items {
		if seen[it.ID] {
			return fmt.Errorf("duplicate item id %q", it.ID)
		}
		seen[it.ID] = true

		if _, err := ParseLevel(string(it.Level)); err != nil {
			return fmt.Errorf("item %q: %w", it.ID, err)
		}
		if _, err := ParseDifficulty(string(it.Difficulty)); err != nil {
			return fmt.Errorf("item %q: %w", it.ID, err)
		}
		if it.AnswerIndex < 0 || it.AnswerIndex >= len(it.Choices) {
			return fmt.Errorf("item %q: answer_index %d out of range for %d choices", it.ID, it.AnswerIndex, len(it.Choices))
		}
	}
	return nil
}
