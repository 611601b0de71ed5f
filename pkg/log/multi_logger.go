package log

// MultiLogger fans each event out to several sinks, typically a SlogAdapter
// for the console and a FileLogger for the .vlog trace.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger combines loggers. Nil entries and NoopLoggers are dropped
// and nested MultiLoggers are flattened.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	m := &MultiLogger{}
	for _, l := range loggers {
		m.add(l)
	}
	return m
}

func (m *MultiLogger) add(l Logger) {
	switch v := l.(type) {
	case nil, NoopLogger:
	case *MultiLogger:
		if v != nil {
			m.loggers = append(m.loggers, v.loggers...)
		}
	default:
		m.loggers = append(m.loggers, l)
	}
}

// Len reports how many sinks receive events.
func (m *MultiLogger) Len() int { return len(m.loggers) }

// Log forwards the event to every sink in order.
func (m *MultiLogger) Log(event Event) {
	for _, l := range m.loggers {
		l.Log(event)
	}
}

var _ Logger = (*MultiLogger)(nil)
