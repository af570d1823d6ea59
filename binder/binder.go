// Package binder populates synthesized contract instances from hierarchical
// configuration data. It is the collaborator the proxy facade delegates to
// after validation and synthesis: it owns value resolution, type conversion,
// and default-type selection, and its errors propagate to callers unchanged.
package binder

import (
	"reflect"
	"strings"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/proxy/contract"
	"github.com/ygrebnov/proxy/source"
)

var namespace = errorc.Namespace(Namespace)

const Namespace = "binder"

// Sentinel errors. Use errors.Is to match.
var (
	ErrNilType       = namespace.NewError("nil synthesized type")
	ErrNilSource     = namespace.NewError("nil configuration source")
	ErrCannotConvert = namespace.NewError("cannot convert value")
	ErrNoDefaultType = namespace.NewError("no default type registered for abstract property type")
)

var newKey = errorc.KeyFactory(Namespace)

// Structured error field keys.
var (
	ErrorFieldProperty   = newKey("property")
	ErrorFieldValueType  = newKey("value_type")
	ErrorFieldTargetType = newKey("target_type")
	ErrorFieldCause      = newKey("cause")
)

// ConvertFunc converts a raw configuration value into a target-typed value.
type ConvertFunc func(raw any) (any, error)

// Options carries the two pass-through binding tables. The proxy core never
// interprets them.
type Options struct {
	// DefaultTypes maps an abstract (interface-typed) property type to the
	// concrete type to instantiate for it.
	DefaultTypes map[reflect.Type]reflect.Type
	// Converters maps a target type to a function converting a raw
	// configuration value into that type. A registered converter takes
	// precedence over every built-in conversion.
	Converters map[reflect.Type]ConvertFunc
}

// Binder populates an instance of a synthesized type from a source.
type Binder interface {
	Bind(t contract.Type, src source.Source, opts Options) (contract.Instance, error)
}

type defaultBinder struct{}

// New returns the default binder.
func New() Binder { return defaultBinder{} }

// Bind gathers the immutable property values, constructs the instance
// through the synthesized constructor (positionally, in contract enumeration
// order), then sets every mutable property present in the source. Properties
// absent from the source keep their defaults: zero values for immutables,
// unset for mutables.
func (b defaultBinder) Bind(t contract.Type, src source.Source, opts Options) (contract.Instance, error) {
	if t == nil {
		return nil, ErrNilType
	}
	if src == nil {
		return nil, ErrNilSource
	}

	ctor := t.Immutable()
	args := make([]any, len(ctor))
	for i, p := range ctor {
		raw, ok := lookup(src, p.Name)
		if !ok {
			continue // zero value
		}
		v, err := b.convert(raw, p.Type, opts)
		if err != nil {
			return nil, propertyError(err, p.Name)
		}
		args[i] = v
	}

	inst, err := t.New(args...)
	if err != nil {
		return nil, err
	}

	for _, p := range t.Properties() {
		if !p.Mutable {
			continue
		}
		raw, ok := lookup(src, p.Name)
		if !ok {
			continue
		}
		v, err := b.convert(raw, p.Type, opts)
		if err != nil {
			return nil, propertyError(err, p.Name)
		}
		if err := inst.Set(p.Name, v); err != nil {
			return nil, err
		}
	}
	return inst, nil
}

// lookup resolves a property value by name, falling back to the lower-cased
// name for sources (viper, files) that fold key case.
func lookup(src source.Source, name string) (any, bool) {
	if v, ok := src.Lookup(name); ok {
		return v, true
	}
	if folded := strings.ToLower(name); folded != name {
		return src.Lookup(folded)
	}
	return nil, false
}

func propertyError(err error, name string) error {
	return errorc.With(err, errorc.String(ErrorFieldProperty, name))
}
