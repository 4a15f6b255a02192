package cmd

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

const (
	consoleDirector    = "none"
	randomDirector     = "random"
	constraintDirector = "constraint"
)

var directorNames = map[string]struct{}{
	consoleDirector:    {},
	randomDirector:     {},
	constraintDirector: {},
}

func validateDirector(name string) error {
	if _, isValid := directorNames[name]; isValid {
		return nil
	}

	names := make([]string, 0, len(directorNames))
	for name := range directorNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return errors.Errorf("invalid director %q, expected one of %s", name, strings.Join(names, ", "))
}

// directorValue is a pflag.Value restricting --director to known names
type directorValue string

func newDirectorValue(val string, p *string) *directorValue {
	*p = val
	return (*directorValue)(p)
}

func (dirVal *directorValue) String() string {
	return string(*dirVal)
}

func (dirVal *directorValue) Set(value string) error {
	if err := validateDirector(value); err != nil {
		return err
	}
	*dirVal = directorValue(value)
	return nil
}

func (dirVal *directorValue) Type() string {
	return "director"
}
