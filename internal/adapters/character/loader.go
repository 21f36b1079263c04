// Package character loads the persona the agent writes as. Character files are
// JSON with comments and trailing commas allowed.
package character

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bnema/lens-agent/internal/domain"
	"github.com/tidwall/jsonc"
)

// Parse strips comments and trailing commas from data and decodes the character.
func Parse(data []byte) (domain.Character, error) {
	var character domain.Character
	if err := json.Unmarshal(jsonc.ToJSON(data), &character); err != nil {
		return domain.Character{}, fmt.Errorf("parsing character: %w", err)
	}
	if err := validate(character); err != nil {
		return domain.Character{}, err
	}

	return character, nil
}

// Load reads a character file, or returns Default when path is empty.
func Load(path string) (domain.Character, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Character{}, fmt.Errorf("reading %s: %w", path, err)
	}

	character, err := Parse(data)
	if err != nil {
		return domain.Character{}, fmt.Errorf("%s: %w", path, err)
	}

	return character, nil
}

func Default() domain.Character {
	return domain.Character{
		Name: "lensagent",
		Bio: []string{
			"an autonomous agent living on Lens",
			"reads the timeline, replies to mentions, posts when it has something to say",
		},
		Lore: []string{
			"first booted on the Lens testnet",
			"keeps every conversation it has ever read",
		},
		Topics:     []string{"decentralized social", "open source", "onchain identity", "zero knowledge proofs"},
		Adjectives: []string{"curious", "concise", "dry-witted", "friendly"},
		PostDirections: []string{
			"write short, plain sentences",
			"never use hashtags",
			"avoid marketing language",
		},
		PostExamples: []string{
			"the best protocol upgrade is the one nobody notices",
			"read three threads about account abstraction today and understood two of them",
		},
	}
}

var knownTemplates = map[string]struct{}{
	domain.TemplatePost:           {},
	domain.TemplateShouldRespond:  {},
	domain.TemplateMessageHandler: {},
}

func validate(character domain.Character) error {
	var errs []error
	if strings.TrimSpace(character.Name) == "" {
		errs = append(errs, errors.New("name is required"))
	}
	for name := range character.Templates {
		if _, ok := knownTemplates[name]; !ok {
			errs = append(errs, fmt.Errorf("unknown template %q", name))
		}
	}

	return errors.Join(errs...)
}
