package sensor

import "time"

// DefaultSlots is the template capacity of the GT-511C1R.
// The GT-511C3 variant holds 200; override with WithSlots.
const DefaultSlots = 20

// Config holds the driver configuration.
type Config struct {
	// Slots is the number of template slots the sensor holds
	Slots int

	// Notifier receives workflow UI events (optional)
	Notifier Notifier

	// Timeout bounds the touch-wait loops
	Timeout TimeoutPolicy

	// Logger is used for logging operations (optional)
	Logger Logger
}

// defaultConfig returns the default configuration: GT-511C1R capacity and
// a ten second wait bound for every mode.
func defaultConfig() Config {
	return Config{
		Slots:   DefaultSlots,
		Timeout: &ModeTimeouts{Default: 10 * time.Second},
	}
}

// Option is a functional option for configuring the Sensor.
type Option func(*Config)

// WithSlots sets the number of template slots to scan during slot
// discovery. Default is DefaultSlots (20, the GT-511C1R capacity).
//
// Example:
//
//	s := sensor.New(port, sensor.WithSlots(200)) // GT-511C3
func WithSlots(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.Slots = n
		}
	}
}

// WithNotifier sets the notifier that receives workflow UI events.
//
// Example:
//
//	s := sensor.New(port, sensor.WithNotifier(myPromptUI))
func WithNotifier(n Notifier) Option {
	return func(c *Config) {
		c.Notifier = n
	}
}

// WithTimeoutPolicy sets the policy that bounds the touch-wait loops.
//
// Example:
//
//	s := sensor.New(port, sensor.WithTimeoutPolicy(&sensor.ModeTimeouts{
//	    Durations: map[sensor.Mode]time.Duration{
//	        sensor.ModeEnroll:   30 * time.Second,
//	        sensor.ModeIdentify: 10 * time.Second,
//	    },
//	}))
func WithTimeoutPolicy(p TimeoutPolicy) Option {
	return func(c *Config) {
		if p != nil {
			c.Timeout = p
		}
	}
}

// WithTimeout sets a deadline-based timeout policy with the same duration
// for every mode. Zero means the waits are unbounded.
//
// Example:
//
//	s := sensor.New(port, sensor.WithTimeout(15*time.Second))
func WithTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Timeout = &ModeTimeouts{Default: d}
	}
}

// WithLogger sets a logger for driver operations.
//
// Example:
//
//	s := sensor.New(port, sensor.WithLogger(myLogger))
func WithLogger(l Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}
