// Package contract inspects property-only interface types and turns them
// into ordered property descriptors consumed by the synthesizer and the
// binder. An interface qualifies as a contract when every method is a plain
// property accessor: a getter `X() T`, optionally paired with a setter
// `SetX(T)`. Anything else (behavioral methods, event registration members,
// parameterized accessors, write-only properties) is rejected.
package contract

import (
	"reflect"
	"strings"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/proxy/errors"
)

// Property describes a single accessor pair of a contract.
//
// A mutable property has both a getter and a setter and is settable at any
// time after construction. An immutable property has a getter only; its value
// is fixed through the synthesized constructor.
type Property struct {
	// Name is the property name, unique within its contract.
	Name string
	// Type is the property value type.
	Type reflect.Type
	// Mutable reports whether the contract declares a setter for the property.
	Mutable bool
}

// Type is a synthesized concrete implementation of a contract. It is an
// opaque handle usable to construct instances and to inspect the shape the
// synthesizer produced.
type Type interface {
	// Contract returns the interface type the implementation was built for.
	Contract() reflect.Type
	// Properties returns all properties in contract enumeration order.
	Properties() []Property
	// Immutable returns the immutable properties in contract enumeration
	// order; this is exactly the constructor parameter list.
	Immutable() []Property
	// New constructs an instance. It accepts exactly the immutable property
	// values, in enumeration order; a nil argument selects the zero value.
	New(immutables ...any) (Instance, error)
}

// Instance is a constructed value of a synthesized type. Accessor calls are
// routed by property name.
type Instance interface {
	Contract() reflect.Type
	Properties() []Property
	// Get returns the current value of the named property.
	Get(name string) (any, error)
	// Set assigns the named mutable property. Setting an immutable property
	// or an unknown property fails.
	Set(name string, value any) error
	// Struct returns a pointer to the backing struct for structural
	// consumers (binders, decoders).
	Struct() any
	// AsMap returns a snapshot of all property values keyed by name.
	AsMap() map[string]any
}

// Describe validates a candidate contract type and returns its ordered
// property descriptors.
//
// Enumeration order is deterministic and stable across repeated inspection of
// the same type: properties appear in the order reflect exposes their getters
// (lexicographic by method name). The synthesized constructor takes immutable
// properties in this order.
func Describe(t reflect.Type) ([]Property, error) {
	if t == nil {
		return nil, errors.ErrNilContract
	}
	if t.Kind() != reflect.Interface {
		return nil, errorc.With(
			errors.ErrNotInterface,
			errorc.String(errors.ErrorFieldContract, t.String()),
		)
	}

	var (
		getters     []Property
		setterOrder []string
		setters     = make(map[string]reflect.Method)
	)

	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		if m.PkgPath != "" {
			// Unexported members cannot form a public property contract.
			return nil, memberError(errors.ErrContainsMethod, t, m)
		}
		ft := m.Type
		if isEventMember(m.Name, ft) {
			return nil, memberError(errors.ErrContainsEvent, t, m)
		}

		switch {
		case ft.NumIn() == 0 && ft.NumOut() == 1:
			// Getter shape: X() T.
			getters = append(getters, Property{Name: m.Name, Type: ft.Out(0)})

		case isSetterName(m.Name) && ft.NumOut() == 0 && ft.NumIn() == 1:
			// Setter shape: SetX(T).
			name := strings.TrimPrefix(m.Name, setterPrefix)
			setters[name] = m
			setterOrder = append(setterOrder, name)

		case isSetterName(m.Name) && ft.NumOut() == 0 && ft.NumIn() > 1:
			// Parameterized setter: SetX(index, value).
			return nil, memberError(errors.ErrContainsIndexer, t, m)

		case !isSetterName(m.Name) && ft.NumOut() == 1 && ft.NumIn() > 0:
			// Parameterized getter: X(index) T.
			return nil, memberError(errors.ErrContainsIndexer, t, m)

		default:
			return nil, memberError(errors.ErrContainsMethod, t, m)
		}
	}

	props := make([]Property, 0, len(getters))
	matched := make(map[string]bool, len(setters))
	for _, g := range getters {
		if sm, ok := setters[g.Name]; ok {
			if sm.Type.In(0) != g.Type {
				// A setter whose parameter type differs from the getter's
				// return type is not an accessor pair.
				return nil, memberError(errors.ErrContainsMethod, t, sm)
			}
			g.Mutable = true
			matched[g.Name] = true
		}
		props = append(props, g)
	}
	for _, name := range setterOrder {
		if !matched[name] {
			return nil, memberError(errors.ErrWriteOnlyProperty, t, setters[name])
		}
	}

	return props, nil
}

const setterPrefix = "Set"

func isSetterName(name string) bool {
	return len(name) > len(setterPrefix) && strings.HasPrefix(name, setterPrefix)
}

// isEventMember reports whether a method looks like event/notification
// registration: an On*, Add*Handler/Listener, or Remove*Handler/Listener
// member taking a callback.
func isEventMember(name string, ft reflect.Type) bool {
	hasFuncParam := false
	for i := 0; i < ft.NumIn(); i++ {
		if ft.In(i).Kind() == reflect.Func {
			hasFuncParam = true
			break
		}
	}
	if !hasFuncParam {
		return false
	}
	switch {
	case strings.HasPrefix(name, "On"):
		return true
	case strings.HasPrefix(name, "Add"), strings.HasPrefix(name, "Remove"):
		return strings.HasSuffix(name, "Handler") || strings.HasSuffix(name, "Listener")
	}
	return false
}

func memberError(sentinel error, t reflect.Type, m reflect.Method) error {
	return errorc.With(
		sentinel,
		errorc.String(errors.ErrorFieldContract, t.String()),
		errorc.String(errors.ErrorFieldMember, m.Name),
		errorc.String(errors.ErrorFieldSignature, Signature(m)),
	)
}

// Signature renders an interface method as `Name(in...) out...` for error
// reporting.
func Signature(m reflect.Method) string {
	return m.Name + strings.TrimPrefix(m.Type.String(), "func")
}
