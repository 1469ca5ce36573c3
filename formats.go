package wave

import "fmt"

// WAVE format tags as stored in the fmt chunk's audio format field.
// PCM = 1 (linear quantization); other values indicate some form of
// compression or an extended layout.
const (
	FormatPCM        = 1
	FormatIEEEFloat  = 3
	FormatALaw       = 6
	FormatMuLaw      = 7
	FormatGSM610     = 0x31
	FormatMP3        = 0x55
	FormatExtensible = 0xFFFE
)

// FormatName returns a human readable name for a WAVE format tag.
func FormatName(tag uint16) string {
	switch tag {
	case FormatPCM:
		return "PCM"
	case FormatIEEEFloat:
		return "IEEE float"
	case FormatALaw:
		return "A-law"
	case FormatMuLaw:
		return "mu-law"
	case FormatGSM610:
		return "GSM 6.10"
	case FormatMP3:
		return "MP3"
	case FormatExtensible:
		return "extensible"
	default:
		return fmt.Sprintf("format tag %d", tag)
	}
}
