package helpers

import (
	"errors"

	"github.com/ztrue/tracerr"
)

type Error struct {
	errs []tracerr.Error
}

func (e *Error) IsNil() bool {
	return IsNil(e)
}

var NilError = Error{nil}

func IsNil(err error) bool {
	if traceableErr, ok := err.(Error); ok {
		return traceableErr.First() == nil
	}
	if traceableErr, ok := err.(*Error); ok {
		return traceableErr == nil || traceableErr.First() == nil
	}
	return err == nil
}

const _errorIndent = ".  "

func (e Error) Error() string {
	result := ""
	for _, err := range e.errs {
		result += Indent(tracerr.Sprint(err), _errorIndent) + "\n"
	}
	return result
}

// Message returns the wrapped messages without stack frames.
func (e Error) Message() string {
	result := ""
	for i, err := range e.errs {
		if i > 0 {
			result += "; "
		}
		result += err.Error()
	}
	return result
}

func (e Error) String() string {
	result := ""
	for _, err := range e.errs {
		result += "-------------------------------------------------------------------------------\n"
		result += tracerr.SprintSourceColor(err, 3) + "\n"
	}
	return result
}

func (e Error) First() tracerr.Error {
	if e.errs == nil {
		return nil
	} else {
		return e.errs[0]
	}
}

// Is lets errors.Is see through every accumulated error.
func (e Error) Is(target error) bool {
	for _, err := range e.errs {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (e Error) Unwrap() []error {
	return MapSlice(e.errs, func(err tracerr.Error) error { return err })
}

func Wrap(err error) Error {
	if IsNil(err) {
		return NilError
	}
	if traceableErr, ok := err.(Error); ok {
		return traceableErr
	}
	return Error{[]tracerr.Error{tracerr.Wrap(err)}}
}

func WrapReturn[T any](x T, err error) (T, Error) {
	return x, Wrap(err)
}

func Join(others ...Error) Error {
	others = FilterSlice(others, func(err Error) bool {
		return !IsNil(err)
	})
	if len(others) == 0 {
		return NilError
	}
	if len(others) == 1 {
		return others[0]
	}

	result := Error{}
	for _, o := range others {
		result.errs = append(result.errs, o.errs...)
	}
	return result
}

func (err Error) NumErrors() int {
	if IsNil(err) {
		return 0
	}

	num := 0
	for _, e := range err.errs {
		if e != nil {
			num++
		}
	}
	return num
}

// nested keeps the stack of an inner Error out of the outer message.
type nested struct {
	err Error
}

func (n nested) Error() string {
	return n.err.Message()
}

func (n nested) Unwrap() error {
	return n.err
}

// Errorf supports %w, so sentinel errors survive into errors.Is.
func Errorf(format string, args ...interface{}) Error {
	args = MapSlice(args, func(arg interface{}) interface{} {
		if err, ok := arg.(Error); ok {
			return nested{err}
		}
		return arg
	})
	return Error{[]tracerr.Error{tracerr.Errorf(format, args...)}}
}
