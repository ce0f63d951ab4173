package filters

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
)

// PathFilter decides if a repository-relative path takes part in the scan.
type PathFilter func(path string) bool

// ParsePathFilter compiles a rule into a PathFilter. Rules are doublestar
// globs and can be combined with | (or), & (and) and negated with !.
// An empty rule matches everything.
func ParsePathFilter(rule string) (PathFilter, error) {
	rule = strings.TrimSpace(rule)

	switch {
	case rule == "":
		return func(path string) bool {
			return true
		}, nil

	case strings.Contains(rule, "|"):
		clauses, err := ParsePathFilterList(strings.Split(rule, "|"))
		if err != nil {
			return nil, err
		}

		return func(path string) bool {
			result := false
			for _, f := range clauses {
				result = result || f(path)
			}
			return result
		}, nil

	case strings.Contains(rule, "&"):
		clauses, err := ParsePathFilterList(strings.Split(rule, "&"))
		if err != nil {
			return nil, err
		}

		return func(path string) bool {
			result := true
			for _, f := range clauses {
				result = result && f(path)
			}
			return result
		}, nil

	case strings.HasPrefix(rule, "!"):
		f, err := ParsePathFilter(rule[1:])
		if err != nil {
			return nil, err
		}

		return func(path string) bool {
			return !f(path)
		}, nil

	default:
		if !doublestar.ValidatePattern(rule) {
			return nil, errors.Errorf("invalid file glob: %v", rule)
		}

		return func(path string) bool {
			m, err := doublestar.Match(rule, path)
			return err == nil && m
		}, nil
	}
}

func ParsePathFilterList(rules []string) ([]PathFilter, error) {
	result := make([]PathFilter, 0, len(rules))

	for _, rule := range rules {
		f, err := ParsePathFilter(rule)
		if err != nil {
			return nil, err
		}

		result = append(result, f)
	}

	return result, nil
}

// Combine builds the effective filter for a scan: a path must match at least
// one include (or there are none) and no exclude.
func Combine(includes, excludes []PathFilter) PathFilter {
	return func(path string) bool {
		if len(includes) > 0 {
			matched := false
			for _, f := range includes {
				matched = matched || f(path)
			}
			if !matched {
				return false
			}
		}

		for _, f := range excludes {
			if f(path) {
				return false
			}
		}

		return true
	}
}
