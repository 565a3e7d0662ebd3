// Package classifier assigns canonical categories to free-text product
// names and flags sustainability-signal products.
//
// Matching is case-insensitive substring matching against ordered keyword
// rules: the first rule with any keyword appearing in either the product
// name or the merchant's category hint wins, and anything unmatched lands
// in category.Other. There is no scoring or weighting. The keyword tables
// are plain data so operators can extend coverage from config without
// touching the matching code.
package classifier

import (
	"strings"

	"github.com/ecotrack/ecotrack-backend/internal/domain/category"
)

// Rule binds a category to the keywords that select it. Rules are
// evaluated in slice order.
type Rule struct {
	Category category.Category
	Keywords []string
}

// Classifier matches product text against an ordered rule table.
type Classifier struct {
	rules       []Rule
	sustainable []string
}

// New creates a classifier. Nil rules or keywords fall back to the
// built-in defaults.
func New(rules []Rule, sustainableKeywords []string) *Classifier {
	if rules == nil {
		rules = DefaultRules()
	}
	if sustainableKeywords == nil {
		sustainableKeywords = DefaultSustainableKeywords()
	}
	return &Classifier{rules: rules, sustainable: sustainableKeywords}
}

// Classify returns the canonical category for a product name and an
// optional merchant category hint. Empty inputs are no-matches, not
// errors: the result is category.Other.
func (c *Classifier) Classify(name, categoryHint string) category.Category {
	n := strings.ToLower(name)
	hint := strings.ToLower(categoryHint)

	for _, rule := range c.rules {
		for _, kw := range rule.Keywords {
			if kw == "" {
				continue
			}
			if strings.Contains(n, kw) || (hint != "" && strings.Contains(hint, kw)) {
				return rule.Category
			}
		}
	}
	return category.Other
}

// IsSustainable reports whether the product text carries a sustainability
// signal. It is a substring-OR over name plus description with no negation
// handling: "non-recycled" matches "recycled". That imprecision is a known
// scope limitation of the heuristic, not something to correct here.
func (c *Classifier) IsSustainable(name, description string) bool {
	text := strings.ToLower(name + " " + description)
	for _, kw := range c.sustainable {
		if kw != "" && strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
