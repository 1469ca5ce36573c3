package wave

import "encoding/binary"

// hostLittle caches the host byte order, probed once at init.
var hostLittle = probeHostLittleEndian()

// probeHostLittleEndian encodes the integer 1 through the native byte
// order and checks whether its least significant byte sits at index 0.
func probeHostLittleEndian() bool {
	var probe [2]byte

	binary.NativeEndian.PutUint16(probe[:], 1)

	return probe[0] == 1
}

// HostLittleEndian reports whether the running host stores integers
// least significant byte first.
func HostLittleEndian() bool {
	return hostLittle
}

// ToHostUint converts an on-disk little-endian field of up to 4 bytes
// into a host-native unsigned integer. On a little-endian host input
// byte i maps to output byte i; on a big-endian host it maps to output
// byte len(b)-1-i. Callers narrow the result to the field's declared
// width.
func ToHostUint(b []byte) uint32 {
	n := len(b)
	if n > 4 {
		n = 4
	}

	var native [4]byte

	for i := 0; i < n; i++ {
		if hostLittle {
			native[i] = b[i]
		} else {
			native[n-1-i] = b[i]
		}
	}

	v := binary.NativeEndian.Uint32(native[:])
	if !hostLittle {
		// the value occupies the first n bytes of the native layout
		v >>= 8 * uint(4-n)
	}

	return v
}
