package protocol

import (
	"errors"
	"fmt"
)

// SensorError represents a NACK response from the sensor.
// The code is passed through verbatim from the response parameter field.
type SensorError struct {
	// Operation is the command that was NACKed
	Operation string

	// Code is the error code reported by the sensor
	Code ErrorCode
}

func (e *SensorError) Error() string {
	return fmt.Sprintf("%s failed: %s (0x%04X)", e.Operation, e.Code, uint16(e.Code))
}

// IsSensorError returns true if the error is a SensorError.
func IsSensorError(err error) bool {
	var se *SensorError
	return errors.As(err, &se)
}

// SensorCode extracts the sensor-reported error code from an error chain.
// The second return value is false if the error is not a SensorError.
func SensorCode(err error) (ErrorCode, bool) {
	var se *SensorError
	if errors.As(err, &se) {
		return se.Code, true
	}
	return 0, false
}
