package model

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// SortKey selects the order of a projected view
type SortKey string

const (
	SortUpdated   SortKey = "updated"    // API order, most recently updated first (default)
	SortStarsDesc SortKey = "stars-desc" // most stars first
	SortStarsAsc  SortKey = "stars-asc"  // fewest stars first
	SortName      SortKey = "name"       // alphabetical by name
)

var _ pflag.Value = (*SortKey)(nil)

// SortKeys returns every sort key in cycle order.
func SortKeys() []SortKey {
	return []SortKey{SortUpdated, SortStarsDesc, SortStarsAsc, SortName}
}

// ParseSortKey converts a string to a SortKey. The empty string maps to SortUpdated.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case "", SortUpdated:
		return SortUpdated, nil
	case SortStarsDesc:
		return SortStarsDesc, nil
	case SortStarsAsc:
		return SortStarsAsc, nil
	case SortName:
		return SortName, nil
	}

	return "", fmt.Errorf("unknown sort key %q (want one of %s)", s, strings.Join(sortKeyNames(), ", "))
}

// Label returns a human readable description of the sort order.
func (k SortKey) Label() string {
	switch k {
	case SortStarsDesc:
		return "Most stars"
	case SortStarsAsc:
		return "Fewest stars"
	case SortName:
		return "Name"
	default:
		return "Recently updated"
	}
}

// Next returns the sort key after k in cycle order.
func (k SortKey) Next() SortKey {
	keys := SortKeys()
	for i, key := range keys {
		if key == k {
			return keys[(i+1)%len(keys)]
		}
	}

	return SortUpdated
}

func (k SortKey) String() string {
	if k == "" {
		return string(SortUpdated)
	}

	return string(k)
}

// Set implements pflag.Value.
func (k *SortKey) Set(s string) error {
	parsed, err := ParseSortKey(s)
	if err != nil {
		return err
	}

	*k = parsed

	return nil
}

// Type implements pflag.Value.
func (k *SortKey) Type() string {
	return "sort"
}

func sortKeyNames() []string {
	keys := SortKeys()

	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}

	return names
}
