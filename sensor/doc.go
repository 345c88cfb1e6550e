// Package sensor provides a high-level driver for GT-511 optical
// fingerprint sensors.
//
// # Overview
//
// This package turns high-level intents ("enroll a fingerprint", "identify
// the current touch") into sequences of command/response exchanges with
// the sensor, coordinating with the human user through pluggable timeout
// and notification hooks:
//   - One method per sensor command (Open, SetLED, CaptureFinger, ...)
//   - Touch-wait primitives bridging sensor polling and user timeouts
//   - Workflow composites: RunEnroll, RunIdentify, RunVerify
//   - Slot discovery against the sensor's own template database
//
// # Basic Usage
//
// The simplest identification flow:
//
//	// User provides hardware communication (io.ReadWriter)
//	port, err := serialport.Open(serialport.Config{Device: "/dev/ttyUSB0"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
//
//	s := sensor.New(port)
//
//	info, err := s.Open(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("firmware 0x%08X\n", info.FirmwareVersion)
//
//	id, err := s.RunIdentify(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("matched slot %d\n", id)
//
// # User Interaction
//
// Workflows prompt the user through a Notifier: press the sensor, release
// it, and the final accept/reject outcome. Wire one up to drive whatever
// UI the application has:
//
//	s := sensor.New(port, sensor.WithNotifier(
//	    sensor.NotifierFunc(func(mode sensor.Mode, event sensor.UIEvent) {
//	        fmt.Printf("[%s] %s\n", mode, event)
//	    }),
//	))
//
// How long the driver waits for the user is owned by a TimeoutPolicy; the
// default bounds every wait at ten seconds. Per-mode policy:
//
//	s := sensor.New(port, sensor.WithTimeoutPolicy(&sensor.ModeTimeouts{
//	    Durations: map[sensor.Mode]time.Duration{
//	        sensor.ModeEnroll:   30 * time.Second,
//	        sensor.ModeIdentify: 10 * time.Second,
//	    },
//	}))
//
// # Error Handling
//
// Local failures and sensor-reported failures are distinct types and never
// collide:
//   - *CommError: transport send/receive failure or a malformed response
//   - *TimeoutError: a touch wait exhausted its timeout policy
//   - *NoSlotError: slot discovery found every slot enrolled
//   - *protocol.SensorError: a NACK, with the sensor's code verbatim
//
// Use errors.As, or protocol.SensorCode for NACK codes:
//
//	if code, ok := protocol.SensorCode(err); ok && code == protocol.CodeIdentifyFailed {
//	    // finger read fine but matched nothing
//	}
//
// No error is retried or suppressed: each primitive is exactly one
// request/response round trip, and composites surface the first failure
// unchanged.
//
// # Concurrency
//
// The driver is strictly synchronous and single-threaded: it owns no
// goroutines and suspends only inside the touch-wait loops, which poll the
// sensor once per iteration without sleeping. A Sensor must not be shared
// between goroutines. The backlight is sensor-side state toggled
// best-effort around workflows; an early return can leave it lit, so
// callers needing strict guarantees should douse it themselves.
//
// # Hardware Independence
//
// This package does NOT implement hardware communication. Any io.ReadWriter
// works as the transport: the serialport package for a real UART, or a mock
// for testing.
package sensor
