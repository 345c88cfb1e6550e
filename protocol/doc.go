// Package protocol implements the GT-511 fingerprint sensor wire protocol.
//
// This package provides functions to build command packets and parse
// response packets for the GT-511 family of optical fingerprint sensors.
//
// # Protocol Overview
//
// The sensor speaks a fixed-format packet protocol over a half-duplex
// serial link. Command and response packets share one 12-byte layout:
//
//	Command:  [0x55][0xAA][ID(2)][PARAMETER(4)][COMMAND(2)][CHECKSUM(2)]
//	Response: [0x55][0xAA][ID(2)][PARAMETER(4)][ACK/NACK(2)][CHECKSUM(2)]
//
// Where:
//   - ID = device/session id, always 1
//   - PARAMETER = 32-bit command argument, return value, or error code
//   - CHECKSUM = 16-bit byte sum over all preceding bytes (little-endian)
//
// In a response the command field carries RespAck (0x30) or RespNack
// (0x31). An ACK's parameter is the command return value; a NACK's
// parameter is an ErrorCode.
//
// # Usage
//
// Build a command packet and parse the reply:
//
//	frame := protocol.BuildCommand(protocol.CmdCmosLED, 1)
//	// ... exchange frame over the transport ...
//	ack, param, err := protocol.ParseResponse(reply)
//	if err != nil {
//	    // malformed response
//	}
//	if !ack {
//	    return &protocol.SensorError{
//	        Operation: protocol.CmdCmosLED.String(),
//	        Code:      protocol.ErrorCode(param),
//	    }
//	}
//
// The Open command is the one exception to the fixed layout: after the ACK
// the sensor sends a 30-byte data packet carrying the Info record, parsed
// with ParseInfo.
//
// # Reference
//
// GT-511C1R/GT-511C3 data sheet (ADH Technology), "Smack Finger 3.0"
// command protocol.
package protocol
