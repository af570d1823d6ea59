package errors

import (
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/proxy/constants"
)

var namespace = errorc.Namespace(constants.Namespace)

// Precondition errors raised by the facade before any validation,
// synthesis, or binding takes place. Use errors.Is to match.
var (
	ErrNilSource   = namespace.NewError("nil configuration source")
	ErrNilContract = namespace.NewError("nil contract type")
)

// Contract errors raised by the validator when a candidate contract is not a
// pure property-only interface. Each is raised with the offending member's
// name and signature attached as structured fields.
var (
	ErrNotInterface      = namespace.NewError("contract is not an interface")
	ErrContainsMethod    = namespace.NewError("contract contains method")
	ErrContainsEvent     = namespace.NewError("contract contains event")
	ErrContainsIndexer   = namespace.NewError("contract contains indexer")
	ErrWriteOnlyProperty = namespace.NewError("contract contains write-only property")
)

// Accessor and constructor misuse errors raised by synthesized instances.
var (
	ErrUnknownProperty   = namespace.NewError("unknown property")
	ErrImmutableProperty = namespace.NewError("property is immutable")
	ErrArgumentCount     = namespace.NewError("wrong number of constructor arguments")
	ErrArgumentType      = namespace.NewError("constructor argument has wrong type")
	ErrValueType         = namespace.NewError("value has wrong type for property")
)

var newKey = errorc.KeyFactory(constants.ErrorFieldNamespace)

// Internal hierarchical segments used to build dotted keys.
const (
	keySegmentContract = "contract"
	keySegmentMember   = "member"
	keySegmentProperty = "property"
)

// Exported structured error field keys.
var (
	ErrorFieldContract  = newKey("type", keySegmentContract)       // proxy.contract.type
	ErrorFieldMember    = newKey("name", keySegmentMember)         // proxy.member.name
	ErrorFieldSignature = newKey("signature", keySegmentMember)    // proxy.member.signature
	ErrorFieldProperty  = newKey("name", keySegmentProperty)       // proxy.property.name
	ErrorFieldValueType = newKey("value_type", keySegmentProperty) // proxy.property.value_type
	ErrorFieldWantType  = newKey("want_type", keySegmentProperty)  // proxy.property.want_type
)

var (
	ErrorFieldArguments = newKey("arguments")
	ErrorFieldCause     = newKey("cause")
)
