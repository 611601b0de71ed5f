package command

import (
	"errors"
	"fmt"
)

// Error categories. Typed errors match these through errors.Is.
var (
	ErrInvalidValue       = errors.New("invalid value")
	ErrInvalidAction      = errors.New("invalid action")
	ErrDeviceUnavailable  = errors.New("device unavailable")
	ErrDeviceUpdateFailed = errors.New("device update failed")
)

// InvalidValueError reports input that fails validation. Nothing was sent
// to the device.
type InvalidValueError struct {
	Setting string
	Value   any
	Reason  string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %v for %s: %s", e.Value, e.Setting, e.Reason)
}

// Is matches ErrInvalidValue.
func (e *InvalidValueError) Is(target error) bool { return target == ErrInvalidValue }

// InvalidActionError reports a failed precondition or capability gate.
// Nothing was sent to the device.
type InvalidActionError struct {
	Action string
	Reason string
}

func (e *InvalidActionError) Error() string {
	return fmt.Sprintf("cannot %s: %s", e.Action, e.Reason)
}

// Is matches ErrInvalidAction.
func (e *InvalidActionError) Is(target error) bool { return target == ErrInvalidAction }

// DeviceUnavailableError reports that no transport connection exists. The
// command was aborted before any local state changed.
type DeviceUnavailableError struct {
	Action string
}

func (e *DeviceUnavailableError) Error() string {
	return fmt.Sprintf("cannot %s: device unavailable", e.Action)
}

// Is matches ErrDeviceUnavailable.
func (e *DeviceUnavailableError) Is(target error) bool { return target == ErrDeviceUnavailable }

// DeviceUpdateFailedError reports a transport failure or non-zero result
// after local state was already changed. The change has been rolled back.
type DeviceUpdateFailedError struct {
	Action string
	Err    error
}

func (e *DeviceUpdateFailedError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Action, e.Err)
}

// Is matches ErrDeviceUpdateFailed.
func (e *DeviceUpdateFailedError) Is(target error) bool { return target == ErrDeviceUpdateFailed }

func (e *DeviceUpdateFailedError) Unwrap() error { return e.Err }

// Retryable reports whether err came from the transport and may succeed
// when repeated. Validation errors are permanent.
func Retryable(err error) bool {
	return errors.Is(err, ErrDeviceUpdateFailed) || errors.Is(err, ErrDeviceUnavailable)
}

func invalidValue(setting string, v any, format string, args ...any) error {
	return &InvalidValueError{Setting: setting, Value: v, Reason: fmt.Sprintf(format, args...)}
}

func invalidAction(action, reason string) error {
	return &InvalidActionError{Action: action, Reason: reason}
}
