package classify

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// UnknownService is returned when no rule matches
const UnknownService = "Неизвестный сервис"

// Rule maps a service label to the keywords that identify it
type Rule struct {
	Label    string   `json:"label"`
	Keywords []string `json:"keywords"`
}

// Classifier attributes a message to a service via an ordered rule table.
// Rule order is significant: the first rule with a matching keyword wins.
type Classifier struct {
	rules []Rule
}

// DefaultRules returns the built-in rule table
func DefaultRules() []Rule {
	return []Rule{
		{Label: "AdGuard VPN", Keywords: []string{"adguard"}},
		{Label: "Юбуст", Keywords: []string{"youbust", "юбуст", "ubust"}},
	}
}

// New creates a classifier from an ordered rule table
func New(rules []Rule) (*Classifier, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("rule table must not be empty")
	}
	for i, r := range rules {
		if r.Label == "" || len(r.Keywords) == 0 {
			return nil, fmt.Errorf("rule %d: label and keywords are required", i)
		}
	}
	return &Classifier{rules: rules}, nil
}

// LoadRules reads a rule table from a JSON file
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}
	var rules []Rule
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse rules file: %w", err)
	}
	return rules, nil
}

// Classify returns the label of the first rule with a keyword contained in
// text (case-insensitive), or UnknownService
func (c *Classifier) Classify(text string) string {
	lowered := strings.ToLower(text)
	for _, rule := range c.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lowered, strings.ToLower(kw)) {
				return rule.Label
			}
		}
	}
	return UnknownService
}
