package supabase

import "fmt"

type OperationError struct {
	Operation  string
	StatusCode int
	Message    string
	Cause      error
}

func (e *OperationError) Error() string {
	if e == nil {
		return "supabase operation failed"
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return fmt.Sprintf("supabase operation failed (op=%s status=%d)", e.Operation, e.StatusCode)
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func opErr(op string, status int, msg string, cause error) error {
	return &OperationError{
		Operation:  op,
		StatusCode: status,
		Message:    msg,
		Cause:      cause,
	}
}
