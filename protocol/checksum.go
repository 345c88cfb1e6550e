package protocol

// Checksum computes the 16-bit checksum used by the GT-511 packet format.
// It is the unsigned sum of all bytes, truncated to 16 bits.
//
// For command and response packets the checksum covers every byte up to but
// excluding the two checksum bytes themselves.
func Checksum(data []byte) uint16 {
	var sum uint16
	for _, b := range data {
		sum += uint16(b)
	}
	return sum
}
