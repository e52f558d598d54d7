package observer

import (
	"context"
	"fmt"
	"log"
	"os"
)

// NoOpObserver ignores every event. Useful as a default when no observer is
// configured.
type NoOpObserver struct{}

func (o *NoOpObserver) OnEvent(ctx context.Context, event Event) {}

// ConsoleObserver prints events via a Logger, defaulting to stdout/stderr.
type ConsoleObserver struct {
	logger Logger
}

// NewConsoleObserver creates a ConsoleObserver with the default logger.
func NewConsoleObserver() *ConsoleObserver {
	return &ConsoleObserver{logger: NewDefaultLogger()}
}

// NewConsoleObserverWithLogger creates a ConsoleObserver with a custom logger.
func NewConsoleObserverWithLogger(logger Logger) *ConsoleObserver {
	return &ConsoleObserver{logger: logger}
}

func (o *ConsoleObserver) OnEvent(ctx context.Context, event Event) {
	fields := map[string]interface{}{"type": event.Type, "status": event.Status}
	if event.FunctionName != "" {
		fields["function_name"] = event.FunctionName
	}
	if event.ElapsedTime > 0 {
		fields["elapsed_time"] = event.ElapsedTime.String()
	}

	msg := fmt.Sprintf("[%s] %s", event.Type, event.Status)

	if event.Status == StatusFailure {
		if event.Error != nil {
			fields["error"] = event.Error.Error()
		}
		o.logger.Error(msg, fields)
		return
	}
	if event.Status == StatusStarted {
		o.logger.Debug(msg, fields)
		return
	}
	o.logger.Info(msg, fields)
}

// NoOpLogger ignores every log message.
type NoOpLogger struct{}

func (l *NoOpLogger) Debug(msg string, fields map[string]interface{}) {}
func (l *NoOpLogger) Info(msg string, fields map[string]interface{})  {}
func (l *NoOpLogger) Warn(msg string, fields map[string]interface{})  {}
func (l *NoOpLogger) Error(msg string, fields map[string]interface{}) {}

// DefaultLogger writes to stdout/stderr via the standard library's log package.
type DefaultLogger struct {
	infoLogger  *log.Logger
	errorLogger *log.Logger
}

func NewDefaultLogger() *DefaultLogger {
	return &DefaultLogger{
		infoLogger:  log.New(os.Stdout, "[INFO] ", log.LstdFlags),
		errorLogger: log.New(os.Stderr, "[ERROR] ", log.LstdFlags),
	}
}

func (l *DefaultLogger) Debug(msg string, fields map[string]interface{}) {
	l.infoLogger.Printf("[DEBUG] %s %v", msg, fields)
}

func (l *DefaultLogger) Info(msg string, fields map[string]interface{}) {
	l.infoLogger.Printf("%s %v", msg, fields)
}

func (l *DefaultLogger) Warn(msg string, fields map[string]interface{}) {
	l.infoLogger.Printf("[WARN] %s %v", msg, fields)
}

func (l *DefaultLogger) Error(msg string, fields map[string]interface{}) {
	l.errorLogger.Printf("%s %v", msg, fields)
}

// Manager fans a single Notify call out to every registered observer,
// each run in its own goroutine so a slow or panicking observer can't
// affect the synchronous serialize/deserialize call it's watching.
type Manager struct {
	observers []Observer
}

func NewManager() *Manager { return &Manager{} }

func NewManagerWithObservers(observers ...Observer) *Manager {
	return &Manager{observers: observers}
}

func (m *Manager) Register(o Observer) {
	if o != nil {
		m.observers = append(m.observers, o)
	}
}

func (m *Manager) Notify(ctx context.Context, event Event) {
	for _, o := range m.observers {
		obs := o
		go func() {
			defer func() { recover() }()
			obs.OnEvent(ctx, event)
		}()
	}
}

func (m *Manager) HasObservers() bool { return len(m.observers) > 0 }

func (m *Manager) Count() int { return len(m.observers) }
