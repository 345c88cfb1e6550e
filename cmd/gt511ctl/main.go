// Command gt511ctl drives a GT-511 fingerprint sensor over a serial port.
package main

import (
	"log"
	"time"

	"github.com/spf13/cobra"
)

var (
	device      = "/dev/ttyUSB0"
	baudRate    = 9600
	touchWait   = 10 * time.Second
	readTimeout = 2 * time.Second
	verbose     = false
)

func main() {
	cmd := &cobra.Command{
		Use:  "gt511ctl",
		Args: cobra.ExactArgs(0),
	}

	cmd.PersistentFlags().StringVar(&device, "device", device, "Serial device the sensor is attached to")
	cmd.PersistentFlags().IntVar(&baudRate, "baud", baudRate, "Serial baud rate")
	cmd.PersistentFlags().DurationVar(&touchWait, "wait", touchWait, "How long to wait for a finger press or release")
	cmd.PersistentFlags().DurationVar(&readTimeout, "read-timeout", readTimeout, "Serial read timeout per response")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", verbose, "Log driver operations")

	cmd.AddCommand(infoCommand())
	cmd.AddCommand(ledCommand())
	cmd.AddCommand(listCommand())
	cmd.AddCommand(countCommand())
	cmd.AddCommand(deleteCommand())
	cmd.AddCommand(enrollCommand())
	cmd.AddCommand(identifyCommand())
	cmd.AddCommand(verifyCommand())

	if err := cmd.Execute(); err != nil {
		log.Fatalln(err)
	}
}
