package protocol

// Info contains the sensor identification data returned by the Open command.
type Info struct {
	// FirmwareVersion is the sensor firmware version
	FirmwareVersion uint32

	// IsoAreaMaxSize is the maximum size of the ISO template area in bytes
	IsoAreaMaxSize uint32

	// SerialNumber is the 16-byte sensor serial number
	SerialNumber [16]byte
}
