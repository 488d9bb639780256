package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/goaltrack/goaltrack/internal/logger"
)

// ErrAuthRequired blocks every store and notification operation when no user
// is signed in.
var ErrAuthRequired = errors.New("authentication required")

// StoreError wraps a failure from the backing database. Callers surface the
// message and leave prior in-memory state unchanged.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Store wraps err as a StoreError for the given operation. Returns nil for nil.
func Store(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

// EmailSendError is a per-recipient failure during notification fan-out. One
// bad send never aborts the remaining rows of the batch.
type EmailSendError struct {
	To  string
	Err error
}

func (e *EmailSendError) Error() string {
	return fmt.Sprintf("send email to %s: %v", e.To, e.Err)
}

func (e *EmailSendError) Unwrap() error { return e.Err }

// UpstreamSyncError is a third-party API failure in the sync proxy. It aborts
// only the request that hit it, carrying the upstream error text.
type UpstreamSyncError struct {
	Service string
	Status  int
	Message string
}

func (e *UpstreamSyncError) Error() string {
	return fmt.Sprintf("%s error: %d - %s", e.Service, e.Status, e.Message)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
