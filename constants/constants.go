package constants

const Namespace = "proxy"

// ErrorFieldNamespace for all exported error field keys.
const ErrorFieldNamespace = Namespace
