package speedtest

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

var (
	// ErrUnresolvedReference marks a failure caused by a missing name or
	// value, typically an input argument of the wrong shape.
	ErrUnresolvedReference = errors.New("unresolved reference")

	// ErrTypeMismatch marks a failure caused by an operation that is
	// invalid for the actual type of a value.
	ErrTypeMismatch = errors.New("type mismatch")
)

// FailureKind categorizes a failure raised by a unit-under-test. The kind
// only selects the wording of the diagnostic line.
type FailureKind int

const (
	Other FailureKind = iota
	UnresolvedReference
	TypeMismatch
)

var failureKinds = [...]struct {
	name string
	hint string
}{
	Other:               {"other", "something is wrong with the passed-in function"},
	UnresolvedReference: {"unresolved reference", "check your passed-in params or function"},
	TypeMismatch:        {"type mismatch", "check for an overwrite"},
}

func (k FailureKind) String() string {
	if k < 0 || int(k) >= len(failureKinds) {
		return fmt.Sprintf("FailureKind(%d)", int(k))
	}
	return failureKinds[k].name
}

// Hint is the fixed advice printed alongside failures of this kind.
func (k FailureKind) Hint() string {
	if k < 0 || int(k) >= len(failureKinds) {
		return failureKinds[Other].hint
	}
	return failureKinds[k].hint
}

// Runtime panics whose message identifies a missing value rather than a
// misused one.
var unresolvedRuntimeErrors = []string{
	"index out of range",
	"slice bounds out of range",
	"nil pointer dereference",
	"nil map",
}

// Classify reports the FailureKind of err.
func Classify(err error) FailureKind {
	if err == nil {
		return Other
	}
	if errors.Is(err, ErrUnresolvedReference) {
		return UnresolvedReference
	}
	var (
		assertErr *runtime.TypeAssertionError
		valueErr  *reflect.ValueError
	)
	if errors.Is(err, ErrTypeMismatch) || errors.As(err, &assertErr) || errors.As(err, &valueErr) {
		return TypeMismatch
	}
	var rtErr runtime.Error
	if errors.As(err, &rtErr) {
		msg := rtErr.Error()
		for _, s := range unresolvedRuntimeErrors {
			if strings.Contains(msg, s) {
				return UnresolvedReference
			}
		}
	}
	return Other
}

// PanicError is returned in place of a panic raised by a unit-under-test.
type PanicError struct {
	Value any
}

func (p *PanicError) Error() string { return fmt.Sprintf("panic: %v", p.Value) }

// Unwrap exposes the panic value when it is itself an error, so runtime
// errors can be inspected with errors.As.
func (p *PanicError) Unwrap() error {
	err, _ := p.Value.(error)
	return err
}
