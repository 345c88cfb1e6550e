package main

import (
	"context"
	"fmt"
	golog "log"
	"os"
	"os/signal"

	"github.com/fpscan/go-gt511/protocol"
	"github.com/fpscan/go-gt511/sensor"
	"github.com/fpscan/go-gt511/serialport"
)

// session is an open serial link with an initialized sensor on it.
type session struct {
	port   *serialport.Port
	Sensor *sensor.Sensor
	Info   *protocol.Info
}

// openSession opens the configured serial device and starts a sensor
// session on it.
func openSession() (*session, error) {
	port, err := serialport.Open(serialport.Config{
		Device:      device,
		BaudRate:    baudRate,
		ReadTimeout: readTimeout,
	})
	if err != nil {
		return nil, err
	}

	opts := []sensor.Option{
		sensor.WithNotifier(sensor.NotifierFunc(prompt)),
		sensor.WithTimeout(touchWait),
	}
	if verbose {
		opts = append(opts, sensor.WithLogger(newStdLogger()))
	}

	s := sensor.New(port, opts...)
	info, err := s.Open(context.Background())
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("opening sensor: %w", err)
	}

	return &session{port: port, Sensor: s, Info: info}, nil
}

// Close ends the sensor session and releases the serial device.
func (s *session) Close() {
	_ = s.Sensor.Close(context.Background())
	s.port.Close()
}

// interruptContext is cancelled on SIGINT so a workflow stuck waiting for
// a touch can be abandoned from the terminal.
func interruptContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// prompt renders driver UI events as console messages.
func prompt(mode sensor.Mode, event sensor.UIEvent) {
	switch event {
	case sensor.UIPress:
		fmt.Println("place your finger on the sensor")
	case sensor.UIRelease:
		fmt.Println("lift your finger off the sensor")
	case sensor.UITimeout:
		fmt.Printf("timed out waiting during %s\n", mode)
	case sensor.UIAccept:
		fmt.Printf("%s accepted\n", mode)
	case sensor.UIReject:
		fmt.Printf("%s rejected\n", mode)
	case sensor.UIError:
		fmt.Printf("%s error\n", mode)
	}
}

// stdLogger adapts the standard log package to the driver's Logger
// interface.
type stdLogger struct {
	debug *golog.Logger
	info  *golog.Logger
	err   *golog.Logger
}

func newStdLogger() *stdLogger {
	return &stdLogger{
		debug: golog.New(os.Stderr, "DEBUG - ", golog.Ltime),
		info:  golog.New(os.Stderr, "INFO  - ", golog.Ltime),
		err:   golog.New(os.Stderr, "ERROR - ", golog.Ltime),
	}
}

func (l *stdLogger) Debug(msg string, kv ...interface{}) { l.debug.Println(append([]interface{}{msg}, kv...)...) }
func (l *stdLogger) Info(msg string, kv ...interface{})  { l.info.Println(append([]interface{}{msg}, kv...)...) }
func (l *stdLogger) Error(msg string, kv ...interface{}) { l.err.Println(append([]interface{}{msg}, kv...)...) }
