package serialport

import (
	"errors"
	"testing"

	"go.bug.st/serial"
)

// stubPort implements only the serial.Port methods the wrapper uses; the
// embedded interface panics if anything else is called.
type stubPort struct {
	serial.Port
	reads  [][]byte
	err    error
	closed bool
}

func (p *stubPort) Read(buf []byte) (int, error) {
	if p.err != nil {
		return 0, p.err
	}
	if len(p.reads) == 0 {
		return 0, nil // timeout: zero bytes, nil error
	}
	n := copy(buf, p.reads[0])
	p.reads = p.reads[1:]
	return n, nil
}

func (p *stubPort) Write(buf []byte) (int, error) {
	return len(buf), nil
}

func (p *stubPort) Close() error {
	p.closed = true
	return nil
}

func TestReadTimeoutMapped(t *testing.T) {
	port := Wrap(&stubPort{})

	n, err := port.Read(make([]byte, 12))
	if n != 0 {
		t.Errorf("Read() n = %d, want 0", n)
	}
	if !errors.Is(err, ErrReadTimeout) {
		t.Errorf("Read() err = %v, want ErrReadTimeout", err)
	}
}

func TestReadPassthrough(t *testing.T) {
	port := Wrap(&stubPort{reads: [][]byte{{0x55, 0xAA}}})

	buf := make([]byte, 12)
	n, err := port.Read(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 || buf[0] != 0x55 || buf[1] != 0xAA {
		t.Errorf("Read() = %d bytes % 02X", n, buf[:n])
	}
}

func TestReadErrorPassthrough(t *testing.T) {
	readErr := errors.New("device gone")
	port := Wrap(&stubPort{err: readErr})

	if _, err := port.Read(make([]byte, 1)); !errors.Is(err, readErr) {
		t.Errorf("Read() err = %v, want %v", err, readErr)
	}
}

func TestClose(t *testing.T) {
	stub := &stubPort{}
	port := Wrap(stub)

	if err := port.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !stub.closed {
		t.Error("Close() did not reach the underlying port")
	}
}
