// Package extractor implements the pattern-matching engine that recovers
// structured fields from normalized receipt OCR text. Extraction is
// best-effort: a field that cannot be recovered yields an absent value,
// never an error.
package extractor

import (
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Rule is a single extraction rule: a pattern with exactly one capture group
// and an optional value processor applied to the trimmed capture. A processor
// that cannot produce a valid value reports absent for the whole field.
type Rule struct {
	Pattern   *regexp.Regexp
	Transform func(raw string) (string, bool)
}

// Field is a named field with an ordered rule list and an optional whole-text
// fallback. Rules are evaluated strictly in list order; the first rule whose
// pattern matches wins. The fallback fires only when no pattern matched,
// never when a processor rejected a matched value.
type Field struct {
	Name     string
	Rules    []Rule
	Fallback func(text string) (string, bool)
}

// Extract runs the field's rules against normalized text and returns the
// extracted value and whether one was found.
func (f Field) Extract(text string) (string, bool) {
	for i, rule := range f.Rules {
		matches := rule.Pattern.FindStringSubmatch(text)
		if len(matches) < 2 {
			continue
		}

		value := strings.TrimSpace(matches[1])
		if rule.Transform == nil {
			log.WithFields(logrus.Fields{
				"field": f.Name,
				"rule":  i,
			}).Debug("Field extracted by pattern rule")
			return value, true
		}

		processed, ok := rule.Transform(value)
		if !ok {
			log.WithFields(logrus.Fields{
				"field": f.Name,
				"rule":  i,
				"value": value,
			}).Debug("Matched value rejected by processor, field absent")
		}
		return processed, ok
	}

	if f.Fallback != nil {
		value, ok := f.Fallback(text)
		if ok {
			log.WithField("field", f.Name).Debug("Field recovered by fallback")
		}
		return value, ok
	}

	return "", false
}
