package proxy

import (
	"reflect"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/proxy/contract"
	"github.com/ygrebnov/proxy/errors"
	"github.com/ygrebnov/proxy/source"
)

// CreateProxy binds configuration data into an instance of the contract type
// TContract. The returned proxy is statically associated with the contract;
// values are read through Get / the typed GetAs helper and written through
// Set for mutable properties.
func CreateProxy[TContract any](src source.Source, opts ...Option) (*Proxy[TContract], error) {
	contractType := reflect.TypeOf((*TContract)(nil)).Elem()
	inst, err := CreateProxyType(src, contractType, opts...)
	if err != nil {
		return nil, err
	}
	return &Proxy[TContract]{Instance: inst}, nil
}

// CreateProxyType is the non-generic form of CreateProxy: the contract is
// supplied as a reflect.Type and the result is an opaque Instance.
//
// Flow: nil preconditions fail fast; the contract is validated and validator
// errors propagate unchanged; the synthesized implementation is obtained from
// the process-wide cache, building it on first use; population is delegated
// to the binder, whose errors also propagate unchanged.
func CreateProxyType(src source.Source, contractType reflect.Type, opts ...Option) (Instance, error) {
	if src == nil {
		return nil, errors.ErrNilSource
	}
	if contractType == nil {
		return nil, errors.ErrNilContract
	}
	cfg := newConfig(opts)

	props, err := contract.Describe(contractType)
	if err != nil {
		return nil, err
	}

	st := typeFor(contractType, props, cfg.logger)
	return cfg.binder.Bind(st, src, cfg.options)
}

// GetAs returns the named property value typed as TValue.
func GetAs[TValue any](in Instance, name string) (TValue, error) {
	var zero TValue
	raw, err := in.Get(name)
	if err != nil {
		return zero, err
	}
	if raw == nil {
		return zero, nil
	}
	v, ok := raw.(TValue)
	if !ok {
		return zero, errorc.With(
			errors.ErrValueType,
			errorc.String(errors.ErrorFieldProperty, name),
			errorc.String(errors.ErrorFieldWantType, reflect.TypeOf((*TValue)(nil)).Elem().String()),
			errorc.String(errors.ErrorFieldValueType, reflect.TypeOf(raw).String()),
		)
	}
	return v, nil
}
