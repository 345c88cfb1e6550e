package protocol

import "fmt"

// Frame structure constants per the GT-511 serial protocol.
const (
	// Start1 is the first start marker byte of every packet (0x55)
	Start1 = 0x55

	// Start2 is the second start marker byte of every packet (0xAA)
	Start2 = 0xAA

	// DeviceID is the fixed session id carried by every packet.
	// The GT-511 is a single-session device; the id is always 1.
	DeviceID = 1

	// PacketSize is the fixed size of command and response packets:
	// START(2) + ID(2) + PARAMETER(4) + COMMAND(2) + CHECKSUM(2)
	PacketSize = 12

	// InfoPacketSize is the size of the data packet that follows an
	// acknowledged Open command:
	// START(2) + ID(2) + INFO(24) + CHECKSUM(2)
	InfoPacketSize = 30
)

// Response discriminator codes. The command field of a response packet
// carries one of these instead of a command code.
const (
	// RespAck indicates success; the parameter field holds a return value
	RespAck = 0x30

	// RespNack indicates failure; the parameter field holds an error code
	RespNack = 0x31
)

// Command is a GT-511 command code.
type Command uint16

// Command codes per the GT-511 data sheet. Not every command is still
// supported by shipping sensor firmware.
const (
	CmdOpen             Command = 0x01
	CmdClose            Command = 0x02
	CmdUsbInternalCheck Command = 0x03
	CmdChangeBaudrate   Command = 0x04
	CmdSetIAPMode       Command = 0x05
	CmdCmosLED          Command = 0x12
	CmdGetEnrollCount   Command = 0x20
	CmdCheckEnrolled    Command = 0x21
	CmdEnrollStart      Command = 0x22
	CmdEnroll1          Command = 0x23
	CmdEnroll2          Command = 0x24
	CmdEnroll3          Command = 0x25
	CmdIsPressFinger    Command = 0x26
	CmdDeleteID         Command = 0x40
	CmdDeleteAll        Command = 0x41
	CmdVerify           Command = 0x50
	CmdIdentify         Command = 0x51
	CmdVerifyTemplate   Command = 0x52
	CmdIdentifyTemplate Command = 0x53
	CmdCaptureFinger    Command = 0x60
	CmdMakeTemplate     Command = 0x61
	CmdGetImage         Command = 0x62
	CmdGetRawImage      Command = 0x63
	CmdGetTemplate      Command = 0x70
	CmdSetTemplate      Command = 0x71
	CmdUpgradeFirmware  Command = 0x80
)

// String returns the data-sheet name of the command code.
func (c Command) String() string {
	switch c {
	case CmdOpen:
		return "Open"
	case CmdClose:
		return "Close"
	case CmdUsbInternalCheck:
		return "UsbInternalCheck"
	case CmdChangeBaudrate:
		return "ChangeBaudrate"
	case CmdSetIAPMode:
		return "SetIAPMode"
	case CmdCmosLED:
		return "CmosLED"
	case CmdGetEnrollCount:
		return "GetEnrollCount"
	case CmdCheckEnrolled:
		return "CheckEnrolled"
	case CmdEnrollStart:
		return "EnrollStart"
	case CmdEnroll1:
		return "Enroll1"
	case CmdEnroll2:
		return "Enroll2"
	case CmdEnroll3:
		return "Enroll3"
	case CmdIsPressFinger:
		return "IsPressFinger"
	case CmdDeleteID:
		return "DeleteID"
	case CmdDeleteAll:
		return "DeleteAll"
	case CmdVerify:
		return "Verify"
	case CmdIdentify:
		return "Identify"
	case CmdVerifyTemplate:
		return "VerifyTemplate"
	case CmdIdentifyTemplate:
		return "IdentifyTemplate"
	case CmdCaptureFinger:
		return "CaptureFinger"
	case CmdMakeTemplate:
		return "MakeTemplate"
	case CmdGetImage:
		return "GetImage"
	case CmdGetRawImage:
		return "GetRawImage"
	case CmdGetTemplate:
		return "GetTemplate"
	case CmdSetTemplate:
		return "SetTemplate"
	case CmdUpgradeFirmware:
		return "UpgradeFirmware"
	default:
		return fmt.Sprintf("Command(0x%02X)", uint16(c))
	}
}

// ErrorCode is a GT-511 NACK error code.
type ErrorCode uint16

// Error codes reported by the sensor in NACK responses, per the data sheet.
// Codes marked obsolete are no longer produced by current firmware but are
// kept so responses from old firmware still decode.
const (
	// CodeTimeout: obsolete; timeout during capture
	CodeTimeout ErrorCode = 0x1001

	// CodeInvalidBaudrate: obsolete; invalid baud rate
	CodeInvalidBaudrate ErrorCode = 0x1002

	// CodeInvalidPos: the specified slot index is out of range
	CodeInvalidPos ErrorCode = 0x1003

	// CodeIsNotUsed: the specified slot holds no enrollment
	CodeIsNotUsed ErrorCode = 0x1004

	// CodeIsAlreadyUsed: the specified slot already holds an enrollment
	CodeIsAlreadyUsed ErrorCode = 0x1005

	// CodeCommErr: communication error reported by the sensor
	CodeCommErr ErrorCode = 0x1006

	// CodeVerifyFailed: fingerprint did not match the given slot
	CodeVerifyFailed ErrorCode = 0x1007

	// CodeIdentifyFailed: fingerprint matched no enrolled slot
	CodeIdentifyFailed ErrorCode = 0x1008

	// CodeDBIsFull: the template database is full
	CodeDBIsFull ErrorCode = 0x1009

	// CodeDBIsEmpty: the template database is empty
	CodeDBIsEmpty ErrorCode = 0x100A

	// CodeTurnErr: obsolete; enrollment steps issued out of order
	CodeTurnErr ErrorCode = 0x100B

	// CodeBadFinger: the captured fingerprint is too poor to use
	CodeBadFinger ErrorCode = 0x100C

	// CodeEnrollFailed: enrollment failed
	CodeEnrollFailed ErrorCode = 0x100D

	// CodeIsNotSupported: the command is not supported
	CodeIsNotSupported ErrorCode = 0x100E

	// CodeDevErr: hardware device error
	CodeDevErr ErrorCode = 0x100F

	// CodeCaptureCanceled: obsolete; capture was cancelled
	CodeCaptureCanceled ErrorCode = 0x1010

	// CodeInvalidParam: invalid command parameter
	CodeInvalidParam ErrorCode = 0x1011

	// CodeFingerNotPressed: no finger on the sensor window
	CodeFingerNotPressed ErrorCode = 0x1012

	// CodeOtherError is reserved for driver-local failures and is never
	// produced by the sensor itself.
	CodeOtherError ErrorCode = 0xFFFF
)

// String returns the data-sheet name of the error code.
func (c ErrorCode) String() string {
	switch c {
	case CodeTimeout:
		return "TIMEOUT"
	case CodeInvalidBaudrate:
		return "INVALID_BAUDRATE"
	case CodeInvalidPos:
		return "INVALID_POS"
	case CodeIsNotUsed:
		return "IS_NOT_USED"
	case CodeIsAlreadyUsed:
		return "IS_ALREADY_USED"
	case CodeCommErr:
		return "COMM_ERR"
	case CodeVerifyFailed:
		return "VERIFY_FAILED"
	case CodeIdentifyFailed:
		return "IDENTIFY_FAILED"
	case CodeDBIsFull:
		return "DB_IS_FULL"
	case CodeDBIsEmpty:
		return "DB_IS_EMPTY"
	case CodeTurnErr:
		return "TURN_ERR"
	case CodeBadFinger:
		return "BAD_FINGER"
	case CodeEnrollFailed:
		return "ENROLL_FAILED"
	case CodeIsNotSupported:
		return "IS_NOT_SUPPORTED"
	case CodeDevErr:
		return "DEV_ERR"
	case CodeCaptureCanceled:
		return "CAPTURE_CANCELED"
	case CodeInvalidParam:
		return "INVALID_PARAM"
	case CodeFingerNotPressed:
		return "FINGER_IS_NOT_PRESSED"
	case CodeOtherError:
		return "OTHER_ERROR"
	default:
		return fmt.Sprintf("UNKNOWN(0x%04X)", uint16(c))
	}
}
