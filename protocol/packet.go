package protocol

import (
	"encoding/binary"
	"fmt"
)

// BuildCommand constructs a command packet for the given command code and
// parameter.
//
// Packet structure (little-endian):
//
//	[0x55][0xAA][ID(2)][PARAMETER(4)][COMMAND(2)][CHECKSUM(2)]
//
// The device id is fixed at 1 and the checksum covers the first ten bytes.
// A fresh slice is returned for every call; packets are never reused.
func BuildCommand(cmd Command, parameter uint32) []byte {
	frame := make([]byte, PacketSize)

	frame[0] = Start1
	frame[1] = Start2
	binary.LittleEndian.PutUint16(frame[2:4], DeviceID)
	binary.LittleEndian.PutUint32(frame[4:8], parameter)
	binary.LittleEndian.PutUint16(frame[8:10], uint16(cmd))
	binary.LittleEndian.PutUint16(frame[10:12], Checksum(frame[:10]))

	return frame
}

// ParseResponse validates a response packet and extracts its payload.
//
// Response packets share the command packet layout; the command field is
// repurposed as an ACK/NACK discriminator. On ACK the parameter field is a
// return value, on NACK it is a sensor error code.
//
// A response is rejected if its length is not exactly PacketSize, the
// checksum does not match, the start markers are wrong, the device id is
// not 1, or the discriminator is neither ACK nor NACK.
func ParseResponse(frame []byte) (ack bool, parameter uint32, err error) {
	if len(frame) != PacketSize {
		return false, 0, fmt.Errorf("response length %d, expected %d", len(frame), PacketSize)
	}

	expected := binary.LittleEndian.Uint16(frame[10:12])
	if actual := Checksum(frame[:10]); actual != expected {
		return false, 0, fmt.Errorf("checksum mismatch: computed 0x%04X, packet has 0x%04X", actual, expected)
	}

	if frame[0] != Start1 || frame[1] != Start2 {
		return false, 0, fmt.Errorf("invalid start markers: got 0x%02X 0x%02X, expected 0x%02X 0x%02X",
			frame[0], frame[1], Start1, Start2)
	}

	if id := binary.LittleEndian.Uint16(frame[2:4]); id != DeviceID {
		return false, 0, fmt.Errorf("invalid device id: got %d, expected %d", id, DeviceID)
	}

	parameter = binary.LittleEndian.Uint32(frame[4:8])
	switch binary.LittleEndian.Uint16(frame[8:10]) {
	case RespAck:
		return true, parameter, nil
	case RespNack:
		return false, parameter, nil
	default:
		return false, 0, fmt.Errorf("response code 0x%04X is neither ACK nor NACK",
			binary.LittleEndian.Uint16(frame[8:10]))
	}
}

// ParseInfo extracts the sensor info record from the data packet that the
// sensor sends after acknowledging an Open command.
//
// Data packet structure (little-endian):
//
//	[START(2)][ID(2)][FW_VERSION(4)][ISO_AREA_MAX(4)][SERIAL(16)][CHECKSUM(2)]
//
// Only the length is validated. The GT-511C1R is known to pad the data
// packet checksum inconsistently across firmware revisions, so the trailing
// checksum is not enforced.
func ParseInfo(frame []byte) (*Info, error) {
	if len(frame) != InfoPacketSize {
		return nil, fmt.Errorf("info packet length %d, expected %d", len(frame), InfoPacketSize)
	}

	info := &Info{
		FirmwareVersion: binary.LittleEndian.Uint32(frame[4:8]),
		IsoAreaMaxSize:  binary.LittleEndian.Uint32(frame[8:12]),
	}
	copy(info.SerialNumber[:], frame[12:28])

	return info, nil
}
