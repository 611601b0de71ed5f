package transport

import (
	"context"
	"errors"
	"fmt"
)

// Result codes reported per property or action.
const (
	CodeOK          = 0
	CodeNotReadable = -4001
	CodeNotWritable = -4002
	CodeNotFound    = -4003
	CodeOffline     = -704042011
)

// Push methods.
const (
	MethodPropertiesChanged = "properties_changed"
	MethodEventOccurred     = "event_occured"
)

// Transport errors.
var (
	ErrNotConnected = errors.New("transport not connected")
	ErrTimeout      = errors.New("transport timeout")
)

// PropertyRequest addresses one property to read.
type PropertyRequest struct {
	DID  string `json:"did"`
	Siid int    `json:"siid"`
	Piid int    `json:"piid"`
}

// PropertyResult is one read result. Value is only meaningful when Code
// is CodeOK.
type PropertyResult struct {
	DID   string `json:"did"`
	Siid  int    `json:"siid"`
	Piid  int    `json:"piid"`
	Code  int    `json:"code"`
	Value any    `json:"value,omitempty"`
}

// SetResult is the outcome of a property write.
type SetResult struct {
	Siid int `json:"siid"`
	Piid int `json:"piid"`
	Code int `json:"code"`
}

// ActionParam is one input or output argument of an action.
type ActionParam struct {
	Piid  int `json:"piid"`
	Value any `json:"value"`
}

// ActionResult is the outcome of an action call.
type ActionResult struct {
	Code int           `json:"code"`
	Out  []ActionParam `json:"out,omitempty"`
}

// PushParam is one entry of a pushed message.
type PushParam struct {
	DID   string `json:"did"`
	Siid  int    `json:"siid"`
	Piid  int    `json:"piid"`
	Value any    `json:"value"`
}

// PushHandler receives pushed messages.
type PushHandler func(method string, params []PushParam)

// Transport is the device protocol client.
type Transport interface {
	// Connected reports whether requests can currently be sent.
	Connected() bool

	// GetProperties reads a batch of properties.
	GetProperties(ctx context.Context, reqs []PropertyRequest) ([]PropertyResult, error)

	// SetProperty writes one property, retrying up to retries times.
	SetProperty(ctx context.Context, siid, piid int, value any, retries int) ([]SetResult, error)

	// CallAction invokes an action.
	CallAction(ctx context.Context, siid, aiid int, params []ActionParam) (ActionResult, error)
}

// CodeError wraps a non-zero device result code.
type CodeError struct {
	Op   string
	Code int
}

func (e *CodeError) Error() string {
	return fmt.Sprintf("%s failed with code %d", e.Op, e.Code)
}

// CheckSet returns a CodeError for the first failed write result.
func CheckSet(results []SetResult) error {
	if len(results) == 0 {
		return &CodeError{Op: "set_properties", Code: CodeNotFound}
	}
	for _, r := range results {
		if r.Code != CodeOK {
			return &CodeError{Op: fmt.Sprintf("set %d.%d", r.Siid, r.Piid), Code: r.Code}
		}
	}
	return nil
}
