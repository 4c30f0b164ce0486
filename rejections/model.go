package rejections

import (
	"fmt"
	"runtime/debug"
	"strconv"

	uuid "github.com/satori/go.uuid"
	"golang.org/x/xerrors"
)

/*
RejectionType defines a KIND of negotiation failure the engine can report.
Each kind carries the HTTP status code the boundary should answer with.

Since types are declared as pointers, to protect against accidental mutation
by other packages, the underlying fields of this struct are private and
accessed through functions. Define new rejection types using
NewRejectionType().
*/
type RejectionType struct {
	// Unique human-readable name of the rejection kind.
	name string

	// Unique number identifying the rejection kind. Codes 2000-2999 are
	// reserved for the engine's built-in kinds.
	apiCode int

	// HTTP status code the boundary maps this kind to.
	httpCode int
}

// NewRejectionType declares a rejection kind.
func NewRejectionType(name string, apiCode int, httpCode int) *RejectionType {
	return &RejectionType{
		name:     name,
		apiCode:  apiCode,
		httpCode: httpCode,
	}
}

// New returns a rejection instance of this kind to be handed back to the
// boundary. source may be nil when the failure has no underlying error.
func (rejectionType *RejectionType) New(message string, source error) *Rejection {
	return &Rejection{
		RejectionType: rejectionType,
		Message:       message,
		ID:            uuid.NewV4(),
		sourceErr:     source,
		sourceStack:   debug.Stack(),
		frame:         xerrors.Caller(1),
	}
}

// Unique human-readable name of the rejection kind.
func (rejectionType *RejectionType) Name() string {
	return rejectionType.name
}

// Unique number identifying the rejection kind.
func (rejectionType *RejectionType) APICode() int {
	return rejectionType.apiCode
}

// HTTP status code the boundary maps this kind to.
func (rejectionType *RejectionType) HTTPCode() int {
	return rejectionType.httpCode
}

// Allows the kind definition itself to act as an error for equality checks
// in tests and errors.Is chains.
func (rejectionType *RejectionType) Error() string {
	return rejectionType.name + " (" + strconv.Itoa(rejectionType.apiCode) + ")"
}

// Rejection is a specific negotiation failure, constructed at the failure
// site and propagated unchanged to the HTTP boundary.
type Rejection struct {
	// The kind of failure.
	*RejectionType

	// A message detailing what was sent and what is supported. Safe to echo
	// to the client for 4xx kinds.
	Message string

	// An id for this rejection instance, for correlating client responses
	// with operator logs.
	ID uuid.UUID

	// If this rejection was caused by another error (a codec diagnostic,
	// a transport read failure), the original error is stored here.
	sourceErr error

	// The debug.Stack() from where this rejection was instantiated.
	sourceStack []byte

	// The xerrors.Frame from where this rejection was instantiated.
	frame xerrors.Frame
}

// IsType returns true if the underlying kind of this rejection is the same
// as rejectionType.
func (rejection *Rejection) IsType(rejectionType *RejectionType) bool {
	return rejection.RejectionType.Error() == rejectionType.Error()
}

// Error string to conform to the builtin error interface.
func (rejection *Rejection) Error() string {
	return rejection.RejectionType.Error() + " - " + rejection.Message
}

// Implements xerrors.Wrapper.
func (rejection *Rejection) Unwrap() error {
	return rejection.sourceErr
}

// More verbose message that includes the source error and a stack trace.
// Not part of Error() or Message since it may contain information that
// should reach the operator log but never the client.
func (rejection *Rejection) LogMessage() string {
	return fmt.Sprint(
		"\nMESSAGE: ",
		rejection.Error(),
		"\nORIGINAL: ",
		rejection.sourceErr,
		"\nSTACK:\n",
		string(rejection.sourceStack),
	)
}
