package sensor

import (
	"context"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/fpscan/go-gt511/protocol"
)

// mockTransport is a scripted io.ReadWriter. Writes are recorded, reads are
// served from a queue of canned frames. An empty queue reads as io.EOF.
type mockTransport struct {
	writes    [][]byte
	responses [][]byte
	writeErr  error
	readErr   error
}

func (m *mockTransport) Write(p []byte) (int, error) {
	if m.writeErr != nil {
		return 0, m.writeErr
	}
	frame := make([]byte, len(p))
	copy(frame, p)
	m.writes = append(m.writes, frame)
	return len(p), nil
}

func (m *mockTransport) Read(p []byte) (int, error) {
	if m.readErr != nil {
		return 0, m.readErr
	}
	if len(m.responses) == 0 {
		return 0, io.EOF
	}
	n := copy(p, m.responses[0])
	if n == len(m.responses[0]) {
		m.responses = m.responses[1:]
	} else {
		m.responses[0] = m.responses[0][n:]
	}
	return n, nil
}

func (m *mockTransport) queue(frame []byte) {
	m.responses = append(m.responses, frame)
}

func (m *mockTransport) ack(parameter uint32) {
	m.queue(respFrame(protocol.RespAck, parameter))
}

func (m *mockTransport) nack(code protocol.ErrorCode) {
	m.queue(respFrame(protocol.RespNack, uint32(code)))
}

func respFrame(resp uint16, parameter uint32) []byte {
	frame := make([]byte, protocol.PacketSize)
	frame[0] = protocol.Start1
	frame[1] = protocol.Start2
	binary.LittleEndian.PutUint16(frame[2:4], protocol.DeviceID)
	binary.LittleEndian.PutUint32(frame[4:8], parameter)
	binary.LittleEndian.PutUint16(frame[8:10], resp)
	binary.LittleEndian.PutUint16(frame[10:12], protocol.Checksum(frame[:10]))
	return frame
}

func infoFrame(firmware, isoMax uint32, serial string) []byte {
	frame := make([]byte, protocol.InfoPacketSize)
	frame[0], frame[1] = 0x5A, 0xA5
	binary.LittleEndian.PutUint16(frame[2:4], protocol.DeviceID)
	binary.LittleEndian.PutUint32(frame[4:8], firmware)
	binary.LittleEndian.PutUint32(frame[8:12], isoMax)
	copy(frame[12:28], serial)
	binary.LittleEndian.PutUint16(frame[28:30], protocol.Checksum(frame[:28]))
	return frame
}

// writtenCommands decodes the command code of every frame written so far.
func writtenCommands(t *testing.T, m *mockTransport) []protocol.Command {
	t.Helper()
	cmds := make([]protocol.Command, 0, len(m.writes))
	for _, frame := range m.writes {
		if len(frame) != protocol.PacketSize {
			t.Fatalf("written frame has %d bytes, want %d", len(frame), protocol.PacketSize)
		}
		cmds = append(cmds, protocol.Command(binary.LittleEndian.Uint16(frame[8:10])))
	}
	return cmds
}

func writtenParameter(t *testing.T, m *mockTransport, i int) uint32 {
	t.Helper()
	if i >= len(m.writes) {
		t.Fatalf("only %d frames written, want index %d", len(m.writes), i)
	}
	return binary.LittleEndian.Uint32(m.writes[i][4:8])
}

// notification is one recorded Notify call.
type notification struct {
	Mode  Mode
	Event UIEvent
}

type eventRecorder struct {
	events []notification
}

func (r *eventRecorder) Notify(mode Mode, event UIEvent) {
	r.events = append(r.events, notification{Mode: mode, Event: event})
}

func (r *eventRecorder) assert(t *testing.T, want ...UIEvent) {
	t.Helper()
	if len(r.events) != len(want) {
		t.Fatalf("got %d events %v, want %d", len(r.events), r.events, len(want))
	}
	for i, e := range want {
		if r.events[i].Event != e {
			t.Errorf("event %d = %s, want %s", i, r.events[i].Event, e)
		}
	}
}

// neverExpires is a TimeoutPolicy whose window never closes.
type neverExpires struct{}

func (neverExpires) Arm(Mode)          {}
func (neverExpires) Expired(Mode) bool { return false }

// expiresImmediately is a TimeoutPolicy whose window is already closed when
// armed.
type expiresImmediately struct{}

func (expiresImmediately) Arm(Mode)          {}
func (expiresImmediately) Expired(Mode) bool { return true }

func TestNewNilTransportPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New(nil) did not panic")
		}
	}()
	New(nil)
}

func TestIdentifyRoundTrip(t *testing.T) {
	m := &mockTransport{}
	m.ack(7)
	s := New(m)

	id, err := s.Identify(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 7 {
		t.Errorf("Identify() = %d, want 7", id)
	}

	if got := writtenCommands(t, m); len(got) != 1 || got[0] != protocol.CmdIdentify {
		t.Errorf("written commands = %v, want [Identify]", got)
	}

	// The command frame itself must be well formed.
	frame := m.writes[0]
	if frame[0] != protocol.Start1 || frame[1] != protocol.Start2 {
		t.Errorf("start markers = %02X %02X", frame[0], frame[1])
	}
	wantSum := protocol.Checksum(frame[:10])
	if got := binary.LittleEndian.Uint16(frame[10:12]); got != wantSum {
		t.Errorf("frame checksum = 0x%04X, want 0x%04X", got, wantSum)
	}
}

func TestNackBecomesSensorError(t *testing.T) {
	m := &mockTransport{}
	m.nack(protocol.CodeVerifyFailed)
	s := New(m)

	err := s.Verify(context.Background(), 3)
	if err == nil {
		t.Fatal("expected an error")
	}

	var se *protocol.SensorError
	if !errors.As(err, &se) {
		t.Fatalf("error is %T, want *protocol.SensorError", err)
	}
	if se.Code != protocol.CodeVerifyFailed {
		t.Errorf("Code = %s, want %s", se.Code, protocol.CodeVerifyFailed)
	}
	if se.Operation != "Verify" {
		t.Errorf("Operation = %q, want %q", se.Operation, "Verify")
	}

	if writtenParameter(t, m, 0) != 3 {
		t.Errorf("verify parameter = %d, want 3", writtenParameter(t, m, 0))
	}
}

func TestCommErrors(t *testing.T) {
	sendErr := errors.New("device unplugged")

	tests := []struct {
		name      string
		transport *mockTransport
	}{
		{
			name:      "send failure",
			transport: &mockTransport{writeErr: sendErr},
		},
		{
			name:      "no response",
			transport: &mockTransport{},
		},
		{
			name: "short response",
			transport: func() *mockTransport {
				m := &mockTransport{}
				m.queue(respFrame(protocol.RespAck, 0)[:5])
				return m
			}(),
		},
		{
			name: "corrupt response",
			transport: func() *mockTransport {
				m := &mockTransport{}
				frame := respFrame(protocol.RespAck, 0)
				frame[10] ^= 0xFF
				m.queue(frame)
				return m
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.transport)
			err := s.Close(context.Background())
			if err == nil {
				t.Fatal("expected an error")
			}

			var ce *CommError
			if !errors.As(err, &ce) {
				t.Fatalf("error is %T, want *CommError", err)
			}
			if protocol.IsSensorError(err) {
				t.Error("CommError misreported as SensorError")
			}
		})
	}
}

func TestOpen(t *testing.T) {
	m := &mockTransport{}
	m.ack(0)
	m.queue(infoFrame(0x00010061, 2058, "0123456789ABCDEF"))
	s := New(m)

	info, err := s.Open(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if info.FirmwareVersion != 0x00010061 {
		t.Errorf("FirmwareVersion = 0x%08X, want 0x00010061", info.FirmwareVersion)
	}
	if info.IsoAreaMaxSize != 2058 {
		t.Errorf("IsoAreaMaxSize = %d, want 2058", info.IsoAreaMaxSize)
	}
	if got := string(info.SerialNumber[:]); got != "0123456789ABCDEF" {
		t.Errorf("SerialNumber = %q", got)
	}

	// Open must request the info data packet.
	if writtenParameter(t, m, 0) != 1 {
		t.Errorf("open parameter = %d, want 1", writtenParameter(t, m, 0))
	}
}

func TestOpenInfoTruncated(t *testing.T) {
	m := &mockTransport{}
	m.ack(0)
	m.queue(infoFrame(1, 1, "X")[:10])
	s := New(m)

	_, err := s.Open(context.Background())
	var ce *CommError
	if !errors.As(err, &ce) {
		t.Fatalf("error is %T, want *CommError", err)
	}
}

func TestIsFingerPressedPolarity(t *testing.T) {
	// The sensor answers 0 when a finger is on the window.
	tests := []struct {
		name      string
		parameter uint32
		want      bool
	}{
		{name: "finger on window", parameter: 0, want: true},
		{name: "window clear", parameter: 1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mockTransport{}
			m.ack(tt.parameter)
			s := New(m)

			pressed, err := s.IsFingerPressed(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if pressed != tt.want {
				t.Errorf("IsFingerPressed() = %v, want %v", pressed, tt.want)
			}
		})
	}
}

func TestSetLED(t *testing.T) {
	m := &mockTransport{}
	m.ack(0)
	m.ack(0)
	s := New(m)

	if err := s.SetLED(context.Background(), true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.SetLED(context.Background(), false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := writtenCommands(t, m); got[0] != protocol.CmdCmosLED || got[1] != protocol.CmdCmosLED {
		t.Errorf("written commands = %v, want [CmosLED CmosLED]", got)
	}
	if writtenParameter(t, m, 0) != 1 {
		t.Error("LED on frame does not carry parameter 1")
	}
	if writtenParameter(t, m, 1) != 0 {
		t.Error("LED off frame does not carry parameter 0")
	}
}

func TestCheckEnrolledFreeSlot(t *testing.T) {
	m := &mockTransport{}
	m.nack(protocol.CodeIsNotUsed)
	s := New(m)

	err := s.CheckEnrolled(context.Background(), 4)
	code, ok := protocol.SensorCode(err)
	if !ok || code != protocol.CodeIsNotUsed {
		t.Errorf("CheckEnrolled() = %v, want IS_NOT_USED sensor error", err)
	}
}

func TestEnrollCount(t *testing.T) {
	m := &mockTransport{}
	m.ack(12)
	s := New(m)

	count, err := s.EnrollCount(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 12 {
		t.Errorf("EnrollCount() = %d, want 12", count)
	}
}

func TestCancelledContext(t *testing.T) {
	m := &mockTransport{}
	m.ack(0)
	s := New(m)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Close(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Close() = %v, want context.Canceled", err)
	}
	if len(m.writes) != 0 {
		t.Errorf("%d frames written after cancellation, want 0", len(m.writes))
	}
}
