package classify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"net"
	"os"
	"regexp/syntax"
	"runtime"
	"strconv"
	"strings"
)

// runtimeMessages maps fragments of runtime panic messages to kinds.
// Order matters: the first fragment found wins.
var runtimeMessages = []struct {
	fragment string
	kind     Kind
}{
	{"integer divide by zero", KindDivideByZero},
	{"integer overflow", KindOverflow},
	{"index out of range", KindIndexOutOfRange},
	{"slice bounds out of range", KindSliceBounds},
	{"nil pointer dereference", KindNilPointer},
	{"invalid memory address", KindNilPointer},
	{"assignment to entry in nil map", KindNilMap},
	{"send on closed channel", KindClosedChannel},
	{"close of closed channel", KindClosedChannel},
	{"close of nil channel", KindClosedChannel},
	{"hash of unhashable type", KindTypeAssertion},
	{"len out of range", KindOutOfRange},
	{"cap out of range", KindOutOfRange},
}

// KindOf names the kind of a panic value or error. Wrapped errors are
// inspected through errors.Is / errors.As. Values nobody recognizes,
// including nil and plain string panics, are KindUnknown.
func KindOf(v any) Kind {
	switch x := v.(type) {
	case nil:
		return KindUnknown
	case error:
		return kindOfError(x)
	case Kinded:
		return x.RoastKind().Normalize()
	default:
		return KindUnknown
	}
}

func kindOfError(err error) Kind {
	var kinded Kinded
	if errors.As(err, &kinded) {
		return kinded.RoastKind().Normalize()
	}

	var typeAssertion *runtime.TypeAssertionError
	if errors.As(err, &typeAssertion) {
		return KindTypeAssertion
	}

	var rtErr runtime.Error
	if errors.As(err, &rtErr) {
		return kindOfRuntimeError(rtErr)
	}

	var jsonSyntax *json.SyntaxError
	var regexpSyntax *syntax.Error
	if errors.As(err, &jsonSyntax) || errors.As(err, &regexpSyntax) {
		return KindSyntax
	}

	var unmarshalType *json.UnmarshalTypeError
	if errors.As(err, &unmarshalType) {
		return KindUnmarshalType
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		if errors.Is(numErr.Err, strconv.ErrRange) {
			return KindOutOfRange
		}
		return KindInvalidValue
	}

	switch {
	case errors.Is(err, strconv.ErrSyntax):
		return KindSyntax
	case errors.Is(err, strconv.ErrRange):
		return KindOutOfRange
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, os.ErrDeadlineExceeded):
		return KindTimeout
	case errors.Is(err, context.Canceled):
		return KindCanceled
	case errors.Is(err, fs.ErrNotExist):
		return KindNotExist
	case errors.Is(err, fs.ErrExist):
		return KindExist
	case errors.Is(err, fs.ErrPermission):
		return KindPermission
	case errors.Is(err, io.ErrUnexpectedEOF):
		return KindUnexpectedEOF
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return KindTimeout
		}
		return KindNetwork
	}

	return KindUnknown
}

func kindOfRuntimeError(err runtime.Error) Kind {
	msg := err.Error()
	for _, m := range runtimeMessages {
		if strings.Contains(msg, m.fragment) {
			return m.kind
		}
	}
	return KindUnknown
}
