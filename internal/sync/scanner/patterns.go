package scanner

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// PatternMatcher handles pattern matching for file filtering.
type PatternMatcher struct{}

// NewPatternMatcher creates a new pattern matcher.
func NewPatternMatcher() *PatternMatcher {
	return &PatternMatcher{}
}

// ShouldIncludeFile determines if a file should be included based on patterns.
// Excludes take precedence; with no include patterns every file is included.
func (pm *PatternMatcher) ShouldIncludeFile(
	relPath string,
	includePatterns []string,
	excludePatterns []string,
) bool {
	relPath = filepath.ToSlash(relPath)

	for _, pattern := range excludePatterns {
		if pm.matchesPattern(relPath, pattern) {
			return false
		}
	}

	if len(includePatterns) == 0 {
		return true
	}
	for _, pattern := range includePatterns {
		if pm.matchesPattern(relPath, pattern) {
			return true
		}
	}
	return false
}

// matchesPattern checks if a slash-separated path matches a glob pattern.
// It supports *, ?, ** and directory patterns ending with /.
func (pm *PatternMatcher) matchesPattern(relPath, pattern string) bool {
	if strings.HasSuffix(pattern, "/") {
		dir := strings.TrimSuffix(pattern, "/")
		return strings.HasPrefix(relPath, dir+"/")
	}

	if strings.Contains(pattern, "**") {
		return pm.matchesGlobPattern(relPath, pattern)
	}

	if match, err := path.Match(pattern, relPath); err == nil && match {
		return true
	}

	// Patterns without a slash also match the base name, so "*.json"
	// selects nested files in a recursive scan.
	if !strings.Contains(pattern, "/") {
		match, err := path.Match(pattern, path.Base(relPath))
		return err == nil && match
	}
	return false
}

// matchesGlobPattern handles patterns with a single ** (recursive wildcard).
func (pm *PatternMatcher) matchesGlobPattern(relPath, pattern string) bool {
	parts := strings.Split(pattern, "**")
	if len(parts) != 2 {
		return false
	}

	prefix, suffix := parts[0], parts[1]
	if !strings.HasPrefix(relPath, prefix) {
		return false
	}

	rest := strings.TrimPrefix(relPath, prefix)
	suffix = strings.TrimPrefix(suffix, "/")
	if suffix == "" {
		return true
	}

	// The suffix is matched against every trailing segment run of the remainder.
	segments := strings.Split(rest, "/")
	for i := range segments {
		if match, err := path.Match(suffix, strings.Join(segments[i:], "/")); err == nil && match {
			return true
		}
	}
	return false
}

// ValidatePatterns validates that the given patterns are syntactically correct.
func (pm *PatternMatcher) ValidatePatterns(patterns []string) []error {
	var errs []error

	for i, pattern := range patterns {
		if strings.Count(pattern, "**") > 1 {
			errs = append(errs, &PatternError{
				Pattern: pattern,
				Index:   i,
				Err:     fmt.Errorf("only one ** wildcard is supported"),
			})
			continue
		}

		check := strings.ReplaceAll(pattern, "**", "*")
		if _, err := path.Match(check, "dummy"); err != nil {
			errs = append(errs, &PatternError{
				Pattern: pattern,
				Index:   i,
				Err:     err,
			})
		}
	}

	return errs
}

// PatternError represents an error with a pattern.
type PatternError struct {
	Pattern string
	Index   int
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern at index %d '%s': %v", e.Index, e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}
