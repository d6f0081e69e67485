package configset

import (
	"errors"
	"strings"
)

// The named lists the product configures through settings screens.
const (
	ListSectors     = "sectors"
	ListSupervisors = "supervisors"
	ListCompanies   = "companies"
)

var (
	ErrDuplicate   = errors.New("name already exists in list")
	ErrEmptyName   = errors.New("name is required")
	ErrUnknownList = errors.New("unknown configuration list")
)

func ValidList(list string) bool {
	switch list {
	case ListSectors, ListSupervisors, ListCompanies:
		return true
	}
	return false
}

// Normalize trims the entry name; comparison elsewhere is case-insensitive.
func Normalize(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", ErrEmptyName
	}
	return trimmed, nil
}

// Contains reports a case-insensitive membership test, the duplicate check
// applied before an add.
func Contains(names []string, candidate string) bool {
	folded := strings.ToLower(strings.TrimSpace(candidate))
	for _, name := range names {
		if strings.ToLower(strings.TrimSpace(name)) == folded {
			return true
		}
	}
	return false
}
