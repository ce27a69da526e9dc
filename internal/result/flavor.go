package result

import (
	"fmt"
	"strings"

	"github.com/mrz1836/verdict/internal/errors"
)

// Flavor is a named build configuration under which a module is tested.
// It only labels narratives; it never changes classification.
type Flavor string

// Known flavors.
const (
	FlavorBase      Flavor = "base"
	FlavorIoT       Flavor = "iot"
	FlavorHeroku    Flavor = "heroku"
	FlavorDogstatsd Flavor = "dogstatsd"
	FlavorFIPS      Flavor = "fips"
)

// Flavors returns every known flavor, base first.
func Flavors() []Flavor {
	return []Flavor{FlavorBase, FlavorIoT, FlavorHeroku, FlavorDogstatsd, FlavorFIPS}
}

// ParseFlavor resolves a flavor name case-insensitively.
// An empty name selects FlavorBase.
func ParseFlavor(name string) (Flavor, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return FlavorBase, nil
	}
	for _, f := range Flavors() {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", errors.ErrUnknownFlavor, name)
}

// String returns the flavor name.
func (f Flavor) String() string {
	return string(f)
}

// UnmarshalText implements encoding.TextUnmarshaler so flavors can be decoded
// from configuration files.
func (f *Flavor) UnmarshalText(text []byte) error {
	parsed, err := ParseFlavor(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
