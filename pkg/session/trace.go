package session

import (
	"sync/atomic"

	"github.com/vacsync/vacsync-go/pkg/log"
)

// stampedLogger fills in the session fields of every event before passing
// it on. A nil next logger discards events.
type stampedLogger struct {
	next      log.Logger
	sessionID string
	deviceID  string
	model     atomic.Pointer[string]
}

func (l *stampedLogger) setModel(model string) { l.model.Store(&model) }

// Log implements log.Logger.
func (l *stampedLogger) Log(ev log.Event) {
	if l.next == nil {
		return
	}
	ev.SessionID = l.sessionID
	ev.DeviceID = l.deviceID
	if m := l.model.Load(); m != nil {
		ev.Model = *m
	}
	l.next.Log(ev)
}

var _ log.Logger = (*stampedLogger)(nil)
