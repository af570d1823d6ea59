package core

import (
	"reflect"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/proxy/contract"
	"github.com/ygrebnov/proxy/errors"
)

// Instance is a constructed value of a SynthesizedType. Accessor calls are
// routed by property name through the type's slot index.
type Instance struct {
	typ *SynthesizedType
	// ptr is a pointer to the backing struct; fields are addressable
	// through ptr.Elem().
	ptr reflect.Value
}

// Contract returns the interface type of the instance's contract.
func (in *Instance) Contract() reflect.Type { return in.typ.contractType }

// Properties returns the instance's properties in contract enumeration order.
func (in *Instance) Properties() []contract.Property { return in.typ.Properties() }

// Get returns the current value of the named property.
func (in *Instance) Get(name string) (any, error) {
	i, ok := in.typ.slots[name]
	if !ok {
		return nil, in.unknown(name)
	}
	return in.ptr.Elem().Field(i).Interface(), nil
}

// Set assigns the named mutable property. Immutable properties are fixed at
// construction; setting one fails.
func (in *Instance) Set(name string, value any) error {
	i, ok := in.typ.slots[name]
	if !ok {
		return in.unknown(name)
	}
	p := in.typ.props[i]
	if !p.Mutable {
		return errorc.With(
			errors.ErrImmutableProperty,
			errorc.String(errors.ErrorFieldContract, in.typ.contractType.String()),
			errorc.String(errors.ErrorFieldProperty, name),
		)
	}
	if !assignTo(in.ptr.Elem().Field(i), value) {
		return errorc.With(
			errors.ErrValueType,
			errorc.String(errors.ErrorFieldProperty, name),
			errorc.String(errors.ErrorFieldWantType, p.Type.String()),
			errorc.String(errors.ErrorFieldValueType, typeName(value)),
		)
	}
	return nil
}

// Struct returns a pointer to the backing struct for structural consumers.
func (in *Instance) Struct() any { return in.ptr.Interface() }

// AsMap returns a snapshot of all property values keyed by property name.
func (in *Instance) AsMap() map[string]any {
	out := make(map[string]any, len(in.typ.props))
	sv := in.ptr.Elem()
	for i, p := range in.typ.props {
		out[p.Name] = sv.Field(i).Interface()
	}
	return out
}

func (in *Instance) unknown(name string) error {
	return errorc.With(
		errors.ErrUnknownProperty,
		errorc.String(errors.ErrorFieldContract, in.typ.contractType.String()),
		errorc.String(errors.ErrorFieldProperty, name),
	)
}
