package sensor

import (
	"context"
	"errors"

	"github.com/fpscan/go-gt511/protocol"
)

// FindAvailable scans slot indices in order and returns the first one that
// holds no enrollment. The scan is an authoritative round trip per slot;
// the driver keeps no local copy of slot state.
//
// If every slot is enrolled, a *NoSlotError is returned. Any failure other
// than the sensor's "not used" answer aborts the scan as-is.
func (s *Sensor) FindAvailable(ctx context.Context) (uint32, error) {
	for i := uint32(0); i < uint32(s.config.Slots); i++ {
		err := s.CheckEnrolled(ctx, i)
		if err == nil {
			continue // slot is in use, keep scanning
		}

		if code, ok := protocol.SensorCode(err); ok && code == protocol.CodeIsNotUsed {
			s.logDebug("found available slot", "slot", i)
			return i, nil
		}

		return 0, err
	}

	return 0, &NoSlotError{Slots: s.config.Slots}
}

// captureStep runs the capture skeleton shared by every workflow:
// illuminate, wait for a press, capture, run the sensor op, wait for the
// release, douse. The op is the per-workflow sensor command (Identify,
// Verify, or an enrollment step).
//
// On any failure the backlight is forced off best-effort and the first
// error wins. A capture failure notifies UIError; an op failure notifies
// UIReject. The wait primitives emit their own events.
func (s *Sensor) captureStep(ctx context.Context, mode Mode, highQuality bool, op func(context.Context) error) error {
	if err := s.SetLED(ctx, true); err != nil {
		_ = s.SetLED(ctx, false)
		return err
	}

	if err := s.WaitFingerPress(ctx, mode); err != nil {
		_ = s.SetLED(ctx, false)
		return err
	}

	if err := s.CaptureFinger(ctx, highQuality); err != nil {
		_ = s.SetLED(ctx, false)
		s.logError("capture failed", "mode", mode.String(), "err", err)
		s.notify(mode, UIError)
		return err
	}

	if err := op(ctx); err != nil {
		_ = s.SetLED(ctx, false)
		s.notify(mode, UIReject)
		return err
	}

	if err := s.WaitFingerRelease(ctx, mode); err != nil {
		_ = s.SetLED(ctx, false)
		return err
	}

	return s.SetLED(ctx, false)
}

// RunIdentify performs a complete identification: prompt for a touch,
// capture at normal quality, match against all enrolled slots, and wait
// for the release. On success the matching slot id is returned and the
// notifier receives UIAccept.
//
// A capture that matches no slot surfaces as a protocol.SensorError with
// CodeIdentifyFailed, after a UIReject notification.
func (s *Sensor) RunIdentify(ctx context.Context) (uint32, error) {
	s.logDebug("identify workflow started")

	var id uint32
	err := s.captureStep(ctx, ModeIdentify, false, func(ctx context.Context) error {
		matched, err := s.Identify(ctx)
		if err != nil {
			return err
		}
		id = matched
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logInfo("identify ok", "slot", id)
	s.notify(ModeIdentify, UIAccept)
	return id, nil
}

// RunVerify performs a complete verification against the given slot id:
// prompt for a touch, capture at normal quality, match against that slot,
// and wait for the release. On success the notifier receives UIAccept.
//
// A capture that does not match the slot surfaces as a
// protocol.SensorError with CodeVerifyFailed, after a UIReject
// notification.
func (s *Sensor) RunVerify(ctx context.Context, id uint32) error {
	s.logDebug("verify workflow started", "slot", id)

	err := s.captureStep(ctx, ModeVerify, false, func(ctx context.Context) error {
		return s.Verify(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logInfo("verify ok", "slot", id)
	s.notify(ModeVerify, UIAccept)
	return nil
}

// RunEnroll performs a complete enrollment: discover a free slot, start
// enrollment there, then run three high quality capture steps in strict
// order, each bracketed by a press and a release. On success the enrolled
// slot id is returned and the notifier receives UIAccept.
//
// The first failing step aborts the whole enrollment and its error is
// surfaced unchanged. No sensor-side rollback is attempted; a partially
// started enrollment is left as-is, which matches the sensor firmware's
// own behavior.
func (s *Sensor) RunEnroll(ctx context.Context) (uint32, error) {
	s.logDebug("enroll workflow started")

	id, err := s.FindAvailable(ctx)
	if err != nil {
		s.logError("no slot for enrollment", "err", err)
		s.notify(ModeEnroll, UIError)
		return 0, err
	}

	if err := s.EnrollStart(ctx, id); err != nil {
		return 0, err
	}

	steps := []func(context.Context) error{s.Enroll1, s.Enroll2, s.Enroll3}
	for i, step := range steps {
		s.logDebug("enroll step", "step", i+1, "slot", id)
		if err := s.captureStep(ctx, ModeEnroll, true, step); err != nil {
			s.logError("enrollment failed", "step", i+1, "err", err)
			return 0, err
		}
	}

	s.logInfo("enroll ok", "slot", id)
	s.notify(ModeEnroll, UIAccept)
	return id, nil
}

// IsTimeout reports whether the error chain contains a touch-wait timeout.
func IsTimeout(err error) bool {
	var te *TimeoutError
	return errors.As(err, &te)
}
