package errors

import (
	"github.com/pkg/errors"
)

// Process exit codes, one per fault class.
const (
	ExitOK            = 0
	ExitUnclassified  = 1
	ExitConfiguration = 2
	ExitConnectivity  = 3
)

// Fault classifies a run-aborting failure. Every command maps the Fault it
// receives to a distinct exit code with ExitCode.
type Fault struct {
	Code    ErrorCode
	Message string
	Err     error
}

// NewConfigurationFault creates a Fault for a missing or invalid configuration value.
func NewConfigurationFault(message string, err error) *Fault {
	return newFault(ConfigurationFault, message, err)
}

// NewConnectivityFault creates a Fault for an unreachable store.
func NewConnectivityFault(message string, err error) *Fault {
	return newFault(ConnectivityFault, message, err)
}

// NewUnclassifiedFault creates a Fault for any other failure.
func NewUnclassifiedFault(message string, err error) *Fault {
	return newFault(UnclassifiedFault, message, err)
}

func newFault(code ErrorCode, message string, err error) *Fault {
	if err != nil {
		if _, ok := err.(StackTracer); !ok {
			err = errors.WithStack(err)
		}
	}
	return &Fault{Code: code, Message: message, Err: err}
}

func (f *Fault) Error() string {
	if f.Err == nil {
		return f.Message
	}
	return f.Message + ": " + f.Err.Error()
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// StackTrace returns the stack trace of the underlying error, if any.
func (f *Fault) StackTrace() errors.StackTrace {
	var tracer StackTracer
	if f.Err != nil && errors.As(f.Err, &tracer) {
		return tracer.StackTrace()
	}
	return nil
}

// CodeOf returns the code of the outermost Fault or ErrorDetails in err's chain.
// Empty when err carries no code.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}

	var fault *Fault
	if errors.As(err, &fault) {
		return fault.Code
	}

	var details *ErrorDetails
	if errors.As(err, &details) {
		return ErrorCode(details.Code)
	}

	return ""
}

// Classify returns the fault class of err. Errors without a Fault in their
// chain are unclassified.
func Classify(err error) ErrorCode {
	var fault *Fault
	if errors.As(err, &fault) {
		return fault.Code
	}
	return UnclassifiedFault
}

// ExitCode maps err to the documented process exit code:
//
//	0 success, 1 unclassified, 2 configuration, 3 connectivity
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	switch Classify(err) {
	case ConfigurationFault:
		return ExitConfiguration
	case ConnectivityFault:
		return ExitConnectivity
	default:
		return ExitUnclassified
	}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
