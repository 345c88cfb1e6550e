package sensor

import "context"

// WaitFingerPress blocks until a finger is placed on the sensor window,
// the timeout policy expires, or a touch query fails.
//
// The notifier is told to prompt for a press before the wait starts, and
// receives UITimeout or UIError on the corresponding failure paths. A
// timeout surfaces as *TimeoutError.
func (s *Sensor) WaitFingerPress(ctx context.Context, mode Mode) error {
	return s.waitFinger(ctx, mode, true)
}

// WaitFingerRelease blocks until the finger is lifted off the sensor
// window, the timeout policy expires, or a touch query fails.
//
// The notifier is told to prompt for a release before the wait starts, and
// receives UITimeout or UIError on the corresponding failure paths. A
// timeout surfaces as *TimeoutError.
func (s *Sensor) WaitFingerRelease(ctx context.Context, mode Mode) error {
	return s.waitFinger(ctx, mode, false)
}

// waitFinger polls the touch state until it matches the target. Each
// iteration is one timeout check plus one sensor round trip; the loop
// never sleeps, so pacing comes from the transport's own read timing.
func (s *Sensor) waitFinger(ctx context.Context, mode Mode, pressed bool) error {
	prompt := UIRelease
	if pressed {
		prompt = UIPress
	}
	s.notify(mode, prompt)
	s.logDebug("waiting for touch change", "mode", mode.String(), "pressed", pressed)

	s.config.Timeout.Arm(mode)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if s.config.Timeout.Expired(mode) {
			s.logDebug("touch wait timeout", "mode", mode.String())
			s.notify(mode, UITimeout)
			return &TimeoutError{Mode: mode}
		}

		isPressed, err := s.IsFingerPressed(ctx)
		if err != nil {
			// Douse the backlight before bailing; the disable result is
			// deliberately discarded.
			_ = s.SetLED(ctx, false)
			s.logError("touch query failed", "mode", mode.String(), "err", err)
			s.notify(mode, UIError)
			return err
		}

		if isPressed == pressed {
			s.logDebug("touch change detected", "mode", mode.String(), "pressed", pressed)
			return nil
		}
	}
}
