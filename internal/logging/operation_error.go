package logging

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// OperationError records which step of the scale pipeline failed and for
// which request.
type OperationError struct {
	Operation string
	RequestID string
	Err       error
}

func (e *OperationError) Error() string {
	if e == nil || e.Err == nil {
		return ""
	}
	if e.RequestID == "" {
		return fmt.Sprintf("%s: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("%s (request_id=%s): %v", e.Operation, e.RequestID, e.Err)
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewOperationError tags err with the operation that produced it. A nil err
// stays nil.
func NewOperationError(operation, requestID string, err error) error {
	if err == nil {
		return nil
	}
	return &OperationError{Operation: operation, RequestID: requestID, Err: err}
}

// FailedOperation returns the innermost operation recorded in err's chain,
// which is where the failure started.
func FailedOperation(err error) (string, bool) {
	var (
		op    *OperationError
		found string
		ok    bool
	)
	for errors.As(err, &op) {
		found, ok = op.Operation, true
		err = op.Err
	}
	return found, ok
}

// ErrorFields renders err for a log entry, adding the failing operation when
// the chain carries one.
func ErrorFields(err error) []zap.Field {
	fields := []zap.Field{zap.Error(err)}
	if op, ok := FailedOperation(err); ok {
		fields = append(fields, zap.String("failed_operation", op))
	}
	return fields
}
