package agent

import (
	"fmt"
	"reflect"
)

// Config represents a configuration for creating a Learner
type Config interface {
	// CreateAgent creates the Learner that the config describes, which
	// selects between actions actions
	CreateAgent(actions int, seed uint64) (Learner, error)

	// ValidAgent returns whether the argument Learner is valid for the
	// Config
	ValidAgent(Learner) bool

	// Validate returns an error describing whether or not the
	// configuration is valid or not.
	Validate() error

	// Type returns the type of Learner constructed by the Config
	Type() Type
}

// ConfigList implements functionality for storing a number of Configs
// in a simple manner. Instead of storing a slice of Configs, a
// ConfigList stores a slice of values for each field of its Config,
// and the Configs in the list are every combination of field values.
//
// Each field of a ConfigList must be a slice whose element type matches
// the type of the field with the same name in the Config.
type ConfigList interface {
	// Config returns an empty Config of the type stored by the list
	Config() Config

	// Type returns the type of Learner constructed by the list's Configs
	Type() Type

	// NumFields returns the number of settable fields for the ConfigList
	NumFields() int

	// Len returns the number of Configs stored by the list
	Len() int
}

// ConfigAt returns the Config at index i in the ConfigList. Configs are
// ordered such that the last field of the list varies the fastest. For
// example, a list with Epsilon = {0.1, 0.2} and StepSize = {0.5, 0.6}
// stores the Configs (0.1, 0.5), (0.1, 0.6), (0.2, 0.5), (0.2, 0.6).
//
// ConfigAt panics if i is out of range or if the list's fields are not
// slices of the matching Config field types.
func ConfigAt(i int, c ConfigList) Config {
	if i < 0 || i >= c.Len() {
		panic(fmt.Sprintf("configAt: index %v out of range [0, %v)", i,
			c.Len()))
	}

	list := reflect.ValueOf(c)
	config := reflect.New(reflect.TypeOf(c.Config())).Elem()

	for field := list.NumField() - 1; field >= 0; field-- {
		values := list.Field(field)
		name := list.Type().Field(field).Name

		configField := config.FieldByName(name)
		if !configField.IsValid() {
			panic(fmt.Sprintf("configAt: config has no field %v", name))
		}

		configField.Set(values.Index(i % values.Len()))
		i /= values.Len()
	}

	return config.Interface().(Config)
}

// Len returns the number of Configs stored by a ConfigList with
// fields of the argument lengths
func Len(lengths ...int) int {
	n := 1
	for _, length := range lengths {
		n *= length
	}
	return n
}
