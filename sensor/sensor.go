package sensor

import (
	"context"
	"fmt"
	"io"

	"github.com/fpscan/go-gt511/protocol"
)

// Sensor drives a GT-511 fingerprint sensor over a half-duplex transport.
// It owns no goroutines and no timers: every operation is a blocking,
// synchronous call, and at most one packet exchange is in flight at a time.
//
// A Sensor must not be used from multiple goroutines concurrently; the
// underlying link is half-duplex and exchanges cannot interleave.
type Sensor struct {
	transport io.ReadWriter
	config    Config
}

// New creates a Sensor over the given transport. The transport must
// implement io.ReadWriter for communication with the sensor, typically a
// serial port.
//
// Example:
//
//	port, _ := serialport.Open(serialport.Config{Device: "/dev/ttyUSB0"})
//	s := sensor.New(port,
//	    sensor.WithNotifier(myPromptUI),
//	    sensor.WithTimeout(15*time.Second),
//	)
func New(transport io.ReadWriter, opts ...Option) *Sensor {
	if transport == nil {
		panic("transport cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Sensor{
		transport: transport,
		config:    cfg,
	}
}

// issue performs one command/response round trip: build the packet, send
// it, read back exactly one response packet, and validate it.
//
// The parameter is used both ways. If non-nil, its value is placed in the
// command parameter field and, on ACK, overwritten with the response
// parameter; callers must treat it as undefined until success is confirmed.
// If nil, the command parameter is zero and no response value is returned.
//
// Each call is exactly one round trip: no retries, no backoff. Retry
// policy, where wanted, belongs to the caller.
func (s *Sensor) issue(ctx context.Context, cmd protocol.Command, parameter *uint32) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var parm uint32
	if parameter != nil {
		parm = *parameter
	}

	frame := protocol.BuildCommand(cmd, parm)
	if _, err := s.transport.Write(frame); err != nil {
		return &CommError{Op: cmd.String(), Err: fmt.Errorf("send: %w", err)}
	}

	resp := make([]byte, protocol.PacketSize)
	if _, err := io.ReadFull(s.transport, resp); err != nil {
		return &CommError{Op: cmd.String(), Err: fmt.Errorf("receive: %w", err)}
	}

	ack, value, err := protocol.ParseResponse(resp)
	if err != nil {
		return &CommError{Op: cmd.String(), Err: err}
	}

	if !ack {
		return &protocol.SensorError{
			Operation: cmd.String(),
			Code:      protocol.ErrorCode(value),
		}
	}

	if parameter != nil {
		*parameter = value
	}
	return nil
}

// Open initializes the sensor session and returns its info record.
// This should be the first command of a session.
func (s *Sensor) Open(ctx context.Context) (*protocol.Info, error) {
	parm := uint32(1) // request the info data packet
	if err := s.issue(ctx, protocol.CmdOpen, &parm); err != nil {
		return nil, err
	}

	// The ACK is followed by a separate data packet carrying the info.
	frame := make([]byte, protocol.InfoPacketSize)
	if _, err := io.ReadFull(s.transport, frame); err != nil {
		return nil, &CommError{Op: protocol.CmdOpen.String(), Err: fmt.Errorf("receive info: %w", err)}
	}

	info, err := protocol.ParseInfo(frame)
	if err != nil {
		return nil, &CommError{Op: protocol.CmdOpen.String(), Err: err}
	}

	s.logDebug("sensor opened",
		"firmware", fmt.Sprintf("0x%08X", info.FirmwareVersion),
		"iso_area_max", info.IsoAreaMaxSize,
		"serial", fmt.Sprintf("%X", info.SerialNumber),
	)
	return info, nil
}

// Close ends the sensor session.
func (s *Sensor) Close(ctx context.Context) error {
	return s.issue(ctx, protocol.CmdClose, nil)
}

// SetLED turns the CMOS LED backlight on or off. The sensor cannot capture
// without the backlight lit.
func (s *Sensor) SetLED(ctx context.Context, on bool) error {
	parm := uint32(0)
	if on {
		parm = 1
	}
	return s.issue(ctx, protocol.CmdCmosLED, &parm)
}

// IsFingerPressed reports whether a finger is currently on the sensor
// window.
func (s *Sensor) IsFingerPressed(ctx context.Context) (bool, error) {
	parm := uint32(0)
	if err := s.issue(ctx, protocol.CmdIsPressFinger, &parm); err != nil {
		return false, err
	}

	// The response parameter is 0 when a finger is on the window, so the
	// raw bit is inverted here. Observed on the GT-511C1R; unconfirmed for
	// other sensor revisions.
	return parm == 0, nil
}

// CaptureFinger captures the fingerprint currently on the window. Per the
// data sheet, enrollment should use a high quality capture and
// identification a normal one.
func (s *Sensor) CaptureFinger(ctx context.Context, highQuality bool) error {
	parm := uint32(0)
	if highQuality {
		parm = 1
	}
	return s.issue(ctx, protocol.CmdCaptureFinger, &parm)
}

// Identify matches the captured fingerprint against every enrolled slot
// and returns the matching slot id. A NACK with CodeIdentifyFailed means
// the capture matched nothing.
func (s *Sensor) Identify(ctx context.Context) (uint32, error) {
	parm := uint32(0)
	if err := s.issue(ctx, protocol.CmdIdentify, &parm); err != nil {
		return 0, err
	}
	return parm, nil
}

// Verify matches the captured fingerprint against the single slot id.
// A NACK with CodeVerifyFailed means the capture did not match that slot.
func (s *Sensor) Verify(ctx context.Context, id uint32) error {
	return s.issue(ctx, protocol.CmdVerify, &id)
}

// EnrollStart begins the enrollment sequence for the given slot id. The
// slot must be free; use CheckEnrolled or FindAvailable first.
func (s *Sensor) EnrollStart(ctx context.Context, id uint32) error {
	return s.issue(ctx, protocol.CmdEnrollStart, &id)
}

// Enroll1 performs the first enrollment step on the captured fingerprint.
func (s *Sensor) Enroll1(ctx context.Context) error {
	return s.issue(ctx, protocol.CmdEnroll1, nil)
}

// Enroll2 performs the second enrollment step on the captured fingerprint.
func (s *Sensor) Enroll2(ctx context.Context) error {
	return s.issue(ctx, protocol.CmdEnroll2, nil)
}

// Enroll3 performs the third and final enrollment step on the captured
// fingerprint.
func (s *Sensor) Enroll3(ctx context.Context) error {
	return s.issue(ctx, protocol.CmdEnroll3, nil)
}

// CheckEnrolled queries whether the given slot holds an enrollment.
// It returns nil if the slot is in use and a protocol.SensorError with
// CodeIsNotUsed if it is free. Any other error indicates a failure.
func (s *Sensor) CheckEnrolled(ctx context.Context, id uint32) error {
	return s.issue(ctx, protocol.CmdCheckEnrolled, &id)
}

// EnrollCount returns the number of enrolled templates in the sensor
// database.
func (s *Sensor) EnrollCount(ctx context.Context) (uint32, error) {
	parm := uint32(0)
	if err := s.issue(ctx, protocol.CmdGetEnrollCount, &parm); err != nil {
		return 0, err
	}
	return parm, nil
}

// DeleteID deletes the enrollment in the given slot.
func (s *Sensor) DeleteID(ctx context.Context, id uint32) error {
	return s.issue(ctx, protocol.CmdDeleteID, &id)
}

// DeleteAll deletes every enrollment in the sensor database.
func (s *Sensor) DeleteAll(ctx context.Context) error {
	return s.issue(ctx, protocol.CmdDeleteAll, nil)
}

// notify calls the configured notifier, if any.
func (s *Sensor) notify(mode Mode, event UIEvent) {
	if s.config.Notifier != nil {
		s.config.Notifier.Notify(mode, event)
	}
}

// logDebug logs a debug message if a logger is configured.
func (s *Sensor) logDebug(msg string, keysAndValues ...interface{}) {
	if s.config.Logger != nil {
		s.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (s *Sensor) logInfo(msg string, keysAndValues ...interface{}) {
	if s.config.Logger != nil {
		s.config.Logger.Info(msg, keysAndValues...)
	}
}

// logError logs an error message if a logger is configured.
func (s *Sensor) logError(msg string, keysAndValues ...interface{}) {
	if s.config.Logger != nil {
		s.config.Logger.Error(msg, keysAndValues...)
	}
}
