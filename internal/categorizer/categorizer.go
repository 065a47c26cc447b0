// Package categorizer assigns spending categories to store names.
//
// Categorization is keyword-driven and deterministic. Custom keyword rules
// loaded from a YAML file are consulted before the built-in table, and an
// optional AI fallback (disabled by default) may refine stores the keyword
// pass left in the catch-all category. The keyword result is always the
// baseline: AI failures never degrade a receipt below it.
package categorizer

import (
	"context"

	"fjacquet/receipt-csv/internal/models"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// CategoryStoreInterface abstracts the source of custom category keyword
// configurations so tests can supply them without touching the filesystem.
type CategoryStoreInterface interface {
	LoadCategories() ([]models.CategoryConfig, error)
}

// Categorizer resolves store names to spending categories.
type Categorizer struct {
	customRules []categoryRule
	ai          *GeminiClient
}

// New creates a Categorizer backed by the built-in keyword table only.
func New() *Categorizer {
	return &Categorizer{}
}

// NewWithStore creates a Categorizer that layers custom keyword rules from
// the store over the built-in table. Custom rules win over built-in ones.
// A store load failure is logged and the built-in table used alone.
func NewWithStore(store CategoryStoreInterface) *Categorizer {
	c := &Categorizer{}

	configs, err := store.LoadCategories()
	if err != nil {
		log.WithError(err).Warn("Failed to load custom category keywords, using built-in table")
		return c
	}

	known := make(map[string]bool, len(defaultRules)+1)
	for _, label := range KnownCategories() {
		known[label] = true
	}

	for _, cfg := range configs {
		if !known[cfg.Name] {
			log.WithField("category", cfg.Name).Warn("Ignoring keyword config for unknown category")
			continue
		}
		c.customRules = append(c.customRules, categoryRule{
			Category: cfg.Name,
			Keywords: cfg.Keywords,
		})
	}

	log.WithField("count", len(c.customRules)).Debug("Loaded custom category keyword rules")
	return c
}

// WithAI attaches an AI fallback used only when the keyword pass returns the
// catch-all category.
func (c *Categorizer) WithAI(client *GeminiClient) *Categorizer {
	c.ai = client
	return c
}

// CategorizeStore maps a store name to one of the fixed category labels.
// Always total: every input yields a label, models.CategoryOther by default.
func (c *Categorizer) CategorizeStore(ctx context.Context, storeName string) string {
	if len(c.customRules) > 0 {
		if category := categorizeWithRules(storeName, c.customRules); category != models.CategoryOther {
			log.WithFields(logrus.Fields{
				"store":    storeName,
				"category": category,
			}).Debug("Store categorized by custom keyword rule")
			return category
		}
	}

	category := Categorize(storeName)
	if category != models.CategoryOther || c.ai == nil {
		return category
	}

	aiCategory, err := c.ai.CategorizeStore(ctx, storeName)
	if err != nil {
		log.WithError(err).WithField("store", storeName).Warn("AI categorization failed, keeping keyword result")
		return category
	}
	return aiCategory
}
