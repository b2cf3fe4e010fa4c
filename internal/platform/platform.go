// Package platform defines per-target size parameters.
//
// The IR's integer widths and pointer shapes are platform parameters fixed
// once per compilation unit: a function selector is 4 bytes on Polkadot and
// 8 bytes on Solana, an address is 20 bytes on EVM and 32 elsewhere. The
// parameter sets are data, not code, and live in an embedded YAML document.
package platform

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed targets.yaml
var targetsYAML []byte

// Target holds the size parameters of one compilation target.
type Target struct {
	Name string `yaml:"name"`

	// AddressLength is the byte length of an account/contract address.
	AddressLength int `yaml:"address_length"`

	// ValueLength is the byte length of the native value (balance) type.
	ValueLength int `yaml:"value_length"`

	// SelectorLength is the byte length of a function selector.
	SelectorLength int `yaml:"selector_length"`

	// PointerWidth is the bit width of a storage slot pointer.
	PointerWidth int `yaml:"pointer_width"`
}

type targetsFile struct {
	Targets []Target `yaml:"targets"`
}

// Targets returns all known compilation targets, in file order.
func Targets() ([]Target, error) {
	var f targetsFile
	if err := yaml.Unmarshal(targetsYAML, &f); err != nil {
		return nil, fmt.Errorf("parse targets.yaml: %w", err)
	}
	return f.Targets, nil
}

// ByName looks up a target by its name.
func ByName(name string) (Target, error) {
	targets, err := Targets()
	if err != nil {
		return Target{}, err
	}
	for _, t := range targets {
		if t.Name == name {
			return t, nil
		}
	}
	return Target{}, fmt.Errorf("unknown target %q", name)
}

// MustByName is like ByName but panics on error. Use only in tests.
func MustByName(name string) Target {
	t, err := ByName(name)
	if err != nil {
		panic(err)
	}
	return t
}
