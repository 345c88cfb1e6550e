package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fpscan/go-gt511/protocol"
	"github.com/fpscan/go-gt511/sensor"
)

func infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print sensor identification and enrollment count",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			sess, err := openSession()
			if err != nil {
				return err
			}
			defer sess.Close()

			count, err := sess.Sensor.EnrollCount(context.Background())
			if err != nil {
				return err
			}

			fmt.Printf("firmware version:  0x%08X\n", sess.Info.FirmwareVersion)
			fmt.Printf("iso area max size: %d\n", sess.Info.IsoAreaMaxSize)
			fmt.Printf("serial number:     %X\n", sess.Info.SerialNumber)
			fmt.Printf("enrolled:          %d\n", count)
			return nil
		},
	}
}

func ledCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "led on|off",
		Short:     "Switch the sensor backlight",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(_ *cobra.Command, args []string) error {
			sess, err := openSession()
			if err != nil {
				return err
			}
			defer sess.Close()

			return sess.Sensor.SetLED(context.Background(), args[0] == "on")
		},
	}
}

func listCommand() *cobra.Command {
	slots := sensor.DefaultSlots
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the enrollment state of every slot",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			sess, err := openSession()
			if err != nil {
				return err
			}
			defer sess.Close()

			ctx := context.Background()
			for i := uint32(0); i < uint32(slots); i++ {
				err := sess.Sensor.CheckEnrolled(ctx, i)
				switch code, ok := protocol.SensorCode(err); {
				case err == nil:
					fmt.Printf("slot %2d: enrolled\n", i)
				case ok && code == protocol.CodeIsNotUsed:
					fmt.Printf("slot %2d: free\n", i)
				default:
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&slots, "slots", slots, "Number of slots to scan")

	return cmd
}

func countCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the number of enrolled fingerprints",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			sess, err := openSession()
			if err != nil {
				return err
			}
			defer sess.Close()

			count, err := sess.Sensor.EnrollCount(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(count)
			return nil
		},
	}
}

func deleteCommand() *cobra.Command {
	all := false
	cmd := &cobra.Command{
		Use:   "delete [ID]",
		Short: "Delete one enrollment, or all of them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if all == (len(args) == 1) {
				return fmt.Errorf("specify either an ID or --all")
			}

			sess, err := openSession()
			if err != nil {
				return err
			}
			defer sess.Close()

			ctx := context.Background()
			if all {
				return sess.Sensor.DeleteAll(ctx)
			}

			id, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid slot id %q: %w", args[0], err)
			}
			return sess.Sensor.DeleteID(ctx, uint32(id))
		},
	}
	cmd.Flags().BoolVar(&all, "all", all, "Delete every enrollment")

	return cmd
}

func enrollCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "enroll",
		Short: "Enroll a new fingerprint in the first free slot",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			sess, err := openSession()
			if err != nil {
				return err
			}
			defer sess.Close()

			ctx, cancel := interruptContext()
			defer cancel()

			id, err := sess.Sensor.RunEnroll(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("enrolled in slot %d\n", id)
			return nil
		},
	}
}

func identifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "identify",
		Short: "Identify the fingerprint on the sensor",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			sess, err := openSession()
			if err != nil {
				return err
			}
			defer sess.Close()

			ctx, cancel := interruptContext()
			defer cancel()

			id, err := sess.Sensor.RunIdentify(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("matched slot %d\n", id)
			return nil
		},
	}
}

func verifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify ID",
		Short: "Verify the fingerprint on the sensor against one slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid slot id %q: %w", args[0], err)
			}

			sess, err := openSession()
			if err != nil {
				return err
			}
			defer sess.Close()

			ctx, cancel := interruptContext()
			defer cancel()

			if err := sess.Sensor.RunVerify(ctx, uint32(id)); err != nil {
				return err
			}
			fmt.Printf("slot %d verified\n", id)
			return nil
		},
	}
}
