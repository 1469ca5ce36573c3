package wave

import (
	"encoding/binary"
	"testing"
)

func TestToHostUint32(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want uint32
	}{
		{"zero", []byte{0, 0, 0, 0}, 0},
		{"one", []byte{1, 0, 0, 0}, 1},
		{"ascending", []byte{0x78, 0x56, 0x34, 0x12}, 0x12345678},
		{"max", []byte{0xFF, 0xFF, 0xFF, 0xFF}, 0xFFFFFFFF},
		{"high byte only", []byte{0, 0, 0, 0x80}, 0x80000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToHostUint(tt.in)
			if got != tt.want {
				t.Fatalf("ToHostUint(% X)=%#x, want %#x", tt.in, got, tt.want)
			}

			// the result must match the canonical little-endian
			// interpretation regardless of the host byte order
			if canon := binary.LittleEndian.Uint32(tt.in); got != canon {
				t.Fatalf("ToHostUint(% X)=%#x, LittleEndian says %#x", tt.in, got, canon)
			}
		})
	}
}

func TestToHostUint16(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want uint32
	}{
		{"zero", []byte{0, 0}, 0},
		{"one", []byte{1, 0}, 1},
		{"mixed", []byte{0x34, 0x12}, 0x1234},
		{"max", []byte{0xFF, 0xFF}, 0xFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToHostUint(tt.in)
			if got != tt.want {
				t.Fatalf("ToHostUint(% X)=%#x, want %#x", tt.in, got, tt.want)
			}

			if canon := uint32(binary.LittleEndian.Uint16(tt.in)); got != canon {
				t.Fatalf("ToHostUint(% X)=%#x, LittleEndian says %#x", tt.in, got, canon)
			}
		})
	}
}

func TestToHostUintShortWidths(t *testing.T) {
	// widths outside {2,4} are not produced by the decoder but the
	// conversion stays total over any buffer up to 4 bytes
	if got := ToHostUint(nil); got != 0 {
		t.Fatalf("ToHostUint(nil)=%#x, want 0", got)
	}

	if got := ToHostUint([]byte{0xAB}); got != 0xAB {
		t.Fatalf("ToHostUint(1 byte)=%#x, want 0xAB", got)
	}

	if got := ToHostUint([]byte{0x56, 0x34, 0x12}); got != 0x123456 {
		t.Fatalf("ToHostUint(3 bytes)=%#x, want 0x123456", got)
	}
}

func TestHostByteOrderProbe(t *testing.T) {
	var probe [4]byte

	binary.NativeEndian.PutUint32(probe[:], 1)

	wantLittle := probe[0] == 1
	if HostLittleEndian() != wantLittle {
		t.Fatalf("HostLittleEndian()=%t, native probe says %t", HostLittleEndian(), wantLittle)
	}
}
