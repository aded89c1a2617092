package classify

import "strings"

// Kind identifies the kind of a failure, e.g. KindDivideByZero.
// Kinds are compared case-insensitively.
type Kind string

// Kinds recognized by the built-in table.
const (
	KindUnknown         Kind = "unknown"
	KindDivideByZero    Kind = "divide_by_zero"
	KindOverflow        Kind = "overflow"
	KindIndexOutOfRange Kind = "index_out_of_range"
	KindSliceBounds     Kind = "slice_bounds_out_of_range"
	KindNilPointer      Kind = "nil_pointer_dereference"
	KindNilMap          Kind = "assignment_to_nil_map"
	KindTypeAssertion   Kind = "type_assertion"
	KindUnmarshalType   Kind = "unmarshal_type"
	KindSyntax          Kind = "syntax"
	// A missing map key is not a failure in Go, so KindOf never returns
	// KindMissingKey. It comes from explicit classification or a Kinded error.
	KindMissingKey      Kind = "missing_key"
	KindInvalidValue    Kind = "invalid_value"
	KindOutOfRange      Kind = "out_of_range"
	KindNotExist        Kind = "not_exist"
	KindExist           Kind = "already_exists"
	KindUnexpectedEOF   Kind = "unexpected_eof"
	KindPermission      Kind = "permission_denied"
	KindTimeout         Kind = "timeout"
	KindCanceled        Kind = "canceled"
	KindNetwork         Kind = "network"
	KindClosedChannel   Kind = "closed_channel"
)

// Normalize folds k to its canonical lowercase form.
func (k Kind) Normalize() Kind {
	return Kind(strings.ToLower(strings.TrimSpace(string(k))))
}

// String returns the kind identifier
func (k Kind) String() string {
	return string(k)
}

// Kinded is implemented by errors or panic values that know their own kind.
type Kinded interface {
	RoastKind() Kind
}
