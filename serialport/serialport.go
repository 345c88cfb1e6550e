// Package serialport adapts a UART to the transport expected by the
// sensor driver.
//
// The GT-511 ships talking 9600 8N1. go.bug.st/serial reports an expired
// read timeout as a zero-byte read with a nil error, which would make a
// fixed-length packet read spin forever; Port maps that case to
// ErrReadTimeout so the driver fails fast with a communication error
// instead.
package serialport

import (
	"errors"
	"fmt"
	"time"

	"go.bug.st/serial"
)

// DefaultBaudRate is the GT-511 factory baud rate.
const DefaultBaudRate = 9600

// ErrReadTimeout is returned when the port produces no data within the
// configured read timeout.
var ErrReadTimeout = errors.New("serialport: read timeout")

// Config describes the serial device to open.
type Config struct {
	// Device is the serial device path, e.g. /dev/ttyUSB0
	Device string

	// BaudRate is the line speed; zero means DefaultBaudRate
	BaudRate int

	// ReadTimeout bounds each read; zero means block indefinitely
	ReadTimeout time.Duration
}

// Port is an open serial connection to the sensor.
type Port struct {
	port serial.Port
}

// Open opens and configures the serial device for sensor traffic: 8 data
// bits, no parity, one stop bit. Stale input from a previous session is
// flushed.
func Open(cfg Config) (*Port, error) {
	baud := cfg.BaudRate
	if baud == 0 {
		baud = DefaultBaudRate
	}

	port, err := serial.Open(cfg.Device, &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, fmt.Errorf("opening serial port %s: %w", cfg.Device, err)
	}

	if cfg.ReadTimeout > 0 {
		if err := port.SetReadTimeout(cfg.ReadTimeout); err != nil {
			port.Close()
			return nil, fmt.Errorf("setting read timeout: %w", err)
		}
	}

	if err := port.ResetInputBuffer(); err != nil {
		port.Close()
		return nil, fmt.Errorf("flushing input: %w", err)
	}

	return &Port{port: port}, nil
}

// Wrap adapts an already-open serial.Port. Useful for tests and for
// applications that configure the port themselves.
func Wrap(port serial.Port) *Port {
	return &Port{port: port}
}

// Read reads from the port. A zero-byte read with no error means the
// read timeout elapsed with nothing received and is reported as
// ErrReadTimeout.
func (p *Port) Read(buf []byte) (int, error) {
	n, err := p.port.Read(buf)
	if err == nil && n == 0 {
		return 0, ErrReadTimeout
	}
	return n, err
}

// Write writes to the port.
func (p *Port) Write(buf []byte) (int, error) {
	return p.port.Write(buf)
}

// Close closes the underlying serial device.
func (p *Port) Close() error {
	return p.port.Close()
}
