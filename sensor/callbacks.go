package sensor

import "time"

// Mode identifies the workflow context the driver is in when it calls a
// collaborator. Timeout and notification implementations can key
// per-context policy off it.
type Mode int

const (
	// ModeIdle: no workflow in progress
	ModeIdle Mode = iota

	// ModeIdentify: open identification against all enrolled slots
	ModeIdentify

	// ModeVerify: verification against one caller-supplied slot
	ModeVerify

	// ModeCapture: standalone fingerprint capture
	ModeCapture

	// ModeEnroll: three-step enrollment
	ModeEnroll
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeIdentify:
		return "identify"
	case ModeVerify:
		return "verify"
	case ModeCapture:
		return "capture"
	case ModeEnroll:
		return "enroll"
	default:
		return "unknown"
	}
}

// UIEvent is a notification emitted at defined points of a workflow.
// Events are purely informational; the driver never waits on the notifier.
type UIEvent int

const (
	// UIPress: the user should place a finger on the sensor
	UIPress UIEvent = iota

	// UIRelease: the user should lift the finger off the sensor
	UIRelease

	// UITimeout: a press or release wait timed out
	UITimeout

	// UIAccept: the workflow completed successfully
	UIAccept

	// UIReject: the fingerprint was rejected by the sensor
	UIReject

	// UIError: a processing error occurred
	UIError
)

func (e UIEvent) String() string {
	switch e {
	case UIPress:
		return "press"
	case UIRelease:
		return "release"
	case UITimeout:
		return "timeout"
	case UIAccept:
		return "accept"
	case UIReject:
		return "reject"
	case UIError:
		return "error"
	default:
		return "unknown"
	}
}

// Notifier receives user-interaction events during workflows.
// Implementations must not block indefinitely; the driver is synchronous
// and calls Notify inline.
//
// Example:
//
//	s := sensor.New(port, sensor.WithNotifier(
//	    sensor.NotifierFunc(func(mode sensor.Mode, event sensor.UIEvent) {
//	        fmt.Printf("[%s] %s\n", mode, event)
//	    }),
//	))
type Notifier interface {
	Notify(mode Mode, event UIEvent)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(mode Mode, event UIEvent)

func (f NotifierFunc) Notify(mode Mode, event UIEvent) { f(mode, event) }

// TimeoutPolicy bounds the touch-wait loops. The driver arms the policy
// once before a wait and then polls Expired on every loop iteration; the
// duration semantics are entirely owned by the implementation.
type TimeoutPolicy interface {
	// Arm starts a new timeout window for the given mode.
	Arm(mode Mode)

	// Expired reports whether the armed window has elapsed.
	Expired(mode Mode) bool
}

// ModeTimeouts is a deadline-based TimeoutPolicy with a per-mode duration
// table. A duration of zero (or a mode missing from the table with a zero
// Default) means the wait is unbounded.
type ModeTimeouts struct {
	// Durations maps a mode to its wait duration
	Durations map[Mode]time.Duration

	// Default is used for modes missing from Durations
	Default time.Duration

	deadline time.Time
}

func (t *ModeTimeouts) Arm(mode Mode) {
	d := t.Default
	if md, ok := t.Durations[mode]; ok {
		d = md
	}
	if d <= 0 {
		t.deadline = time.Time{}
		return
	}
	t.deadline = time.Now().Add(d)
}

func (t *ModeTimeouts) Expired(mode Mode) bool {
	return !t.deadline.IsZero() && time.Now().After(t.deadline)
}

// Logger is an optional logging interface that can be provided to the
// driver. This allows integration with any logging framework.
//
// Example with standard log package:
//
//	type StdLogger struct{}
//	func (l *StdLogger) Debug(msg string, kv ...interface{}) { log.Println(msg, kv) }
//	func (l *StdLogger) Info(msg string, kv ...interface{})  { log.Println(msg, kv) }
//	func (l *StdLogger) Error(msg string, kv ...interface{}) { log.Println(msg, kv) }
//
//	s := sensor.New(port, sensor.WithLogger(&StdLogger{}))
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
