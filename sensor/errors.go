package sensor

import "fmt"

// CommError indicates a transport or framing failure: a send error, a short
// read, or an invalid response packet. These are indistinguishable from the
// sensor's perspective and collapse into this one local cause, kept distinct
// from the sensor-reported NACK codes in protocol.SensorError.
type CommError struct {
	// Op is the command being exchanged when the failure occurred
	Op string

	// Err is the underlying transport or validation error
	Err error
}

func (e *CommError) Error() string {
	return fmt.Sprintf("%s: communication failure: %v", e.Op, e.Err)
}

func (e *CommError) Unwrap() error { return e.Err }

// TimeoutError indicates that a touch-wait loop exhausted its timeout
// policy before the expected press or release was observed.
type TimeoutError struct {
	// Mode is the workflow context the wait belonged to
	Mode Mode
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out waiting for touch during %s", e.Mode)
}

// NoSlotError indicates that slot discovery scanned every slot without
// finding a free one.
type NoSlotError struct {
	// Slots is the number of slots that were scanned
	Slots int
}

func (e *NoSlotError) Error() string {
	return fmt.Sprintf("no available slot: all %d slots are enrolled", e.Slots)
}
