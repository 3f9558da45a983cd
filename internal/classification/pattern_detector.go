// Package classification guesses expense categories from merchant text.
package classification

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/Veraticus/studmoney/internal/model"
)

// Pattern maps merchant text to a category.
type Pattern struct {
	Name     string
	Category model.Category
	Regex    string
	Priority int // Higher priority patterns are checked first
}

// CompiledPattern holds a compiled regex pattern with metadata.
type CompiledPattern struct {
	compiledRegex *regexp.Regexp
	Pattern
}

// PatternDetector matches text against patterns in priority order.
type PatternDetector struct {
	patterns []CompiledPattern
	mu       sync.RWMutex
}

// NewPatternDetector creates a new pattern detector with the given patterns.
func NewPatternDetector(patterns []Pattern) (*PatternDetector, error) {
	compiled, err := compilePatterns(patterns)
	if err != nil {
		return nil, err
	}
	return &PatternDetector{patterns: compiled}, nil
}

// NewDefaultDetector creates a detector over DefaultPatterns.
func NewDefaultDetector() *PatternDetector {
	pd, err := NewPatternDetector(DefaultPatterns())
	if err != nil {
		panic(fmt.Sprintf("invalid default pattern: %v", err))
	}
	return pd
}

func compilePatterns(patterns []Pattern) ([]CompiledPattern, error) {
	compiled := make([]CompiledPattern, 0, len(patterns))

	for _, p := range patterns {
		if !p.Category.Known() {
			return nil, fmt.Errorf("pattern %s: unknown category %q", p.Name, p.Category)
		}

		regexStr := p.Regex
		if !strings.HasPrefix(regexStr, "(?i)") {
			regexStr = "(?i)" + regexStr
		}

		regex, err := regexp.Compile(regexStr)
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern %s: %w", p.Name, err)
		}

		compiled = append(compiled, CompiledPattern{
			Pattern:       p,
			compiledRegex: regex,
		})
	}

	sort.SliceStable(compiled, func(i, j int) bool {
		return compiled[i].Priority > compiled[j].Priority
	})
	return compiled, nil
}

// Match represents a pattern match result.
type Match struct {
	PatternName string
	Category    model.Category
}

// Classify returns the first matching pattern for the given text fields,
// or nil when nothing matches.
func (pd *PatternDetector) Classify(fields ...string) *Match {
	pd.mu.RLock()
	defer pd.mu.RUnlock()

	searchText := strings.Join(fields, " ")

	for _, pattern := range pd.patterns {
		if pattern.compiledRegex.MatchString(searchText) {
			return &Match{
				PatternName: pattern.Name,
				Category:    pattern.Category,
			}
		}
	}
	return nil
}

// CategoryFor returns the matched category, or fallback when nothing matches.
func (pd *PatternDetector) CategoryFor(fallback model.Category, fields ...string) model.Category {
	if m := pd.Classify(fields...); m != nil {
		return m.Category
	}
	return fallback
}

// UpdatePatterns replaces the detector's patterns.
func (pd *PatternDetector) UpdatePatterns(patterns []Pattern) error {
	compiled, err := compilePatterns(patterns)
	if err != nil {
		return err
	}

	pd.mu.Lock()
	pd.patterns = compiled
	pd.mu.Unlock()

	return nil
}

// GetPatternCount returns the number of loaded patterns.
func (pd *PatternDetector) GetPatternCount() int {
	pd.mu.RLock()
	defer pd.mu.RUnlock()
	return len(pd.patterns)
}
