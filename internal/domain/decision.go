package domain

import (
	"fmt"
	"strings"
)

type Decision string

const (
	DecisionRespond Decision = "RESPOND"
	DecisionIgnore  Decision = "IGNORE"
	DecisionStop    Decision = "STOP"
)

// ParseDecision extracts a decision from free-form model output such as "[RESPOND]"
// or "I think IGNORE". When several keywords appear the earliest one wins.
func ParseDecision(raw string) (Decision, error) {
	upper := strings.ToUpper(raw)

	best := -1
	var found Decision
	for _, candidate := range []Decision{DecisionRespond, DecisionIgnore, DecisionStop} {
		idx := strings.Index(upper, string(candidate))
		if idx < 0 {
			continue
		}
		if best < 0 || idx < best {
			best = idx
			found = candidate
		}
	}

	if best < 0 {
		return DecisionIgnore, fmt.Errorf("no decision in %q", strings.TrimSpace(raw))
	}

	return found, nil
}
