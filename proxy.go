// Package proxy materializes concrete data-carrying implementations of
// property-only interface contracts, so hierarchical configuration data can
// be bound into strongly-typed objects without hand-written backing types.
//
// A contract is an interface declaring only property accessors: a getter
// `X() T`, optionally paired with a setter `SetX(T)`. CreateProxy validates
// the contract, obtains its synthesized implementation from a process-wide
// cache (building it on first use), and delegates population to a binder.
// Properties with both accessors are mutable; getter-only properties are
// immutable and receive their values exclusively through the synthesized
// constructor, positionally in contract enumeration order.
package proxy

import (
	"reflect"

	"go.uber.org/zap"

	"github.com/ygrebnov/proxy/binder"
	"github.com/ygrebnov/proxy/contract"
)

// Instance is a bound value of a synthesized contract implementation.
type Instance = contract.Instance

// Property describes a single accessor pair of a contract.
type Property = contract.Property

// Proxy wraps a bound instance with its static contract association.
type Proxy[TContract any] struct {
	Instance
}

type config struct {
	binder  binder.Binder
	options binder.Options
	logger  *zap.Logger
}

func newConfig(opts []Option) *config {
	c := &config{
		binder: binder.New(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Option configures a single CreateProxy call.
type Option func(*config)

// WithDefaultType registers a concrete type to instantiate for an abstract
// (interface-typed) property type. The table is forwarded verbatim to the
// binder.
func WithDefaultType(abstract, concrete reflect.Type) Option {
	return func(c *config) {
		if c.options.DefaultTypes == nil {
			c.options.DefaultTypes = make(map[reflect.Type]reflect.Type)
		}
		c.options.DefaultTypes[abstract] = concrete
	}
}

// WithConverter registers a function converting raw configuration values
// into the target type. The table is forwarded verbatim to the binder.
func WithConverter(target reflect.Type, fn binder.ConvertFunc) Option {
	return func(c *config) {
		if c.options.Converters == nil {
			c.options.Converters = make(map[reflect.Type]binder.ConvertFunc)
		}
		c.options.Converters[target] = fn
	}
}

// WithBinder substitutes the binder the facade delegates to.
func WithBinder(b binder.Binder) Option {
	return func(c *config) {
		if b != nil {
			c.binder = b
		}
	}
}

// WithLogger enables structured debug logging. Without it, logging is a
// no-op.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
