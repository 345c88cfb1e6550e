package sensor

import (
	"context"
	"encoding/binary"
	"testing"
	"time"

	"github.com/fpscan/go-gt511/protocol"
)

func TestWaitFingerPressTimeout(t *testing.T) {
	m := &mockTransport{}
	rec := &eventRecorder{}
	s := New(m,
		WithNotifier(rec),
		WithTimeoutPolicy(expiresImmediately{}),
	)

	err := s.WaitFingerPress(context.Background(), ModeIdentify)

	te, ok := err.(*TimeoutError)
	if !ok {
		t.Fatalf("error is %T, want *TimeoutError", err)
	}
	if te.Mode != ModeIdentify {
		t.Errorf("Mode = %s, want %s", te.Mode, ModeIdentify)
	}

	rec.assert(t, UIPress, UITimeout)

	// An expired wait must not touch the sensor at all.
	if len(m.writes) != 0 {
		t.Errorf("%d frames written during expired wait, want 0", len(m.writes))
	}
}

func TestWaitFingerPressPolls(t *testing.T) {
	m := &mockTransport{}
	m.ack(1) // clear
	m.ack(1) // still clear
	m.ack(0) // pressed
	rec := &eventRecorder{}
	s := New(m,
		WithNotifier(rec),
		WithTimeoutPolicy(neverExpires{}),
	)

	if err := s.WaitFingerPress(context.Background(), ModeEnroll); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec.assert(t, UIPress)

	cmds := writtenCommands(t, m)
	if len(cmds) != 3 {
		t.Fatalf("wrote %d frames, want 3", len(cmds))
	}
	for i, cmd := range cmds {
		if cmd != protocol.CmdIsPressFinger {
			t.Errorf("frame %d command = %s, want IsPressFinger", i, cmd)
		}
	}
}

func TestWaitFingerRelease(t *testing.T) {
	m := &mockTransport{}
	m.ack(0) // pressed
	m.ack(1) // released
	rec := &eventRecorder{}
	s := New(m,
		WithNotifier(rec),
		WithTimeoutPolicy(neverExpires{}),
	)

	if err := s.WaitFingerRelease(context.Background(), ModeVerify); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec.assert(t, UIRelease)
}

func TestWaitFingerQueryError(t *testing.T) {
	m := &mockTransport{}
	m.nack(protocol.CodeCommErr) // touch query fails
	m.ack(0)                     // backlight off
	rec := &eventRecorder{}
	s := New(m,
		WithNotifier(rec),
		WithTimeoutPolicy(neverExpires{}),
	)

	err := s.WaitFingerPress(context.Background(), ModeIdentify)
	if code, ok := protocol.SensorCode(err); !ok || code != protocol.CodeCommErr {
		t.Errorf("error = %v, want COMM_ERR sensor error", err)
	}

	rec.assert(t, UIPress, UIError)

	// The failed wait turns the backlight off before returning.
	cmds := writtenCommands(t, m)
	last := cmds[len(cmds)-1]
	if last != protocol.CmdCmosLED {
		t.Errorf("last command = %s, want CmosLED", last)
	}
	if p := binary.LittleEndian.Uint32(m.writes[len(m.writes)-1][4:8]); p != 0 {
		t.Errorf("backlight parameter = %d, want 0", p)
	}
}

func TestWaitFingerCancelled(t *testing.T) {
	m := &mockTransport{}
	s := New(m, WithTimeoutPolicy(neverExpires{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.WaitFingerPress(ctx, ModeIdentify)
	if err != context.Canceled {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if len(m.writes) != 0 {
		t.Errorf("%d frames written after cancellation, want 0", len(m.writes))
	}
}

func TestModeTimeoutsDeadline(t *testing.T) {
	p := &ModeTimeouts{Default: time.Nanosecond}

	p.Arm(ModeIdentify)
	time.Sleep(time.Millisecond)
	if !p.Expired(ModeIdentify) {
		t.Error("Expired() = false after the deadline passed")
	}
}

func TestModeTimeoutsZeroIsUnbounded(t *testing.T) {
	p := &ModeTimeouts{}

	p.Arm(ModeEnroll)
	if p.Expired(ModeEnroll) {
		t.Error("Expired() = true with a zero duration")
	}
}

func TestModeTimeoutsPerMode(t *testing.T) {
	p := &ModeTimeouts{
		Durations: map[Mode]time.Duration{ModeEnroll: time.Hour},
		Default:   time.Nanosecond,
	}

	p.Arm(ModeEnroll)
	if p.Expired(ModeEnroll) {
		t.Error("enroll window expired despite a one hour duration")
	}

	p.Arm(ModeIdentify)
	time.Sleep(time.Millisecond)
	if !p.Expired(ModeIdentify) {
		t.Error("identify window did not fall back to the default duration")
	}
}
