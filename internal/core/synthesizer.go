// Package core builds concrete data-carrying implementations of validated
// property contracts. A synthesized type owns one backing struct field per
// property; mutable properties are settable through accessor dispatch, and
// immutable properties are assigned only by the single constructor.
package core

import (
	"fmt"
	"reflect"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/proxy/contract"
	"github.com/ygrebnov/proxy/errors"
)

// SynthesizedType is a concrete implementation of a contract, produced once
// per contract and owned by the process-wide type cache after publication.
type SynthesizedType struct {
	// contractType is the interface type this implementation was built for.
	contractType reflect.Type
	// backing is the reflect.StructOf product: one exported field per
	// property, field name equal to the property name.
	backing reflect.Type
	props   []contract.Property
	// slots maps property name to its field index in backing.
	slots map[string]int
	// ctor lists the immutable properties in contract enumeration order;
	// this is the constructor parameter list.
	ctor []contract.Property
}

// Synthesize builds a SynthesizedType from a validated, ordered property
// list. It is pure: equivalent descriptor lists produce structurally
// equivalent types (reflect.StructOf canonicalizes identical field sets).
func Synthesize(contractType reflect.Type, props []contract.Property) *SynthesizedType {
	fields := make([]reflect.StructField, len(props))
	slots := make(map[string]int, len(props))
	var ctor []contract.Property
	for i, p := range props {
		fields[i] = reflect.StructField{Name: p.Name, Type: p.Type}
		slots[p.Name] = i
		if !p.Mutable {
			ctor = append(ctor, p)
		}
	}
	return &SynthesizedType{
		contractType: contractType,
		backing:      reflect.StructOf(fields),
		props:        append([]contract.Property(nil), props...),
		slots:        slots,
		ctor:         ctor,
	}
}

// Contract returns the interface type the implementation was built for.
func (t *SynthesizedType) Contract() reflect.Type { return t.contractType }

// Backing returns the synthesized backing struct type.
func (t *SynthesizedType) Backing() reflect.Type { return t.backing }

// Properties returns all properties in contract enumeration order.
func (t *SynthesizedType) Properties() []contract.Property {
	return append([]contract.Property(nil), t.props...)
}

// Immutable returns the constructor parameter list: the immutable properties
// in contract enumeration order.
func (t *SynthesizedType) Immutable() []contract.Property {
	return append([]contract.Property(nil), t.ctor...)
}

// New constructs an instance of the synthesized type. It accepts exactly the
// immutable property values, in contract enumeration order, and assigns each
// to its field; nothing else. A nil argument selects the zero value. Mutable
// properties start at their zero values.
func (t *SynthesizedType) New(immutables ...any) (contract.Instance, error) {
	if len(immutables) != len(t.ctor) {
		return nil, errorc.With(
			errors.ErrArgumentCount,
			errorc.String(errors.ErrorFieldContract, t.contractType.String()),
			errorc.String(errors.ErrorFieldArguments,
				fmt.Sprintf("got %d, want %d", len(immutables), len(t.ctor))),
		)
	}
	pv := reflect.New(t.backing)
	sv := pv.Elem()
	for i, p := range t.ctor {
		if !assignTo(sv.Field(t.slots[p.Name]), immutables[i]) {
			return nil, errorc.With(
				errors.ErrArgumentType,
				errorc.String(errors.ErrorFieldProperty, p.Name),
				errorc.String(errors.ErrorFieldWantType, p.Type.String()),
				errorc.String(errors.ErrorFieldValueType, typeName(immutables[i])),
			)
		}
	}
	return &Instance{typ: t, ptr: pv}, nil
}

// assignTo sets field to value. nil selects the zero value; otherwise value
// must be assignable to the field type.
func assignTo(field reflect.Value, value any) bool {
	if value == nil {
		field.Set(reflect.Zero(field.Type()))
		return true
	}
	rv := reflect.ValueOf(value)
	if !rv.Type().AssignableTo(field.Type()) {
		return false
	}
	field.Set(rv)
	return true
}

func typeName(value any) string {
	if value == nil {
		return "nil"
	}
	return reflect.TypeOf(value).String()
}
