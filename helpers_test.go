package wave

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// makePCMWave assembles a minimal canonical WAV buffer: a 44-byte
// header followed by the payload bytes.
func makePCMWave(t *testing.T, channels, bitDepth uint16, sampleRate uint32, payload []byte) []byte {
	t.Helper()

	var b bytes.Buffer
	b.WriteString("RIFF")

	err := binary.Write(&b, binary.LittleEndian, uint32(0))
	if err != nil {
		t.Fatalf("write riff size placeholder: %v", err)
	}

	b.WriteString("WAVE")
	writeTestChunk(t, &b, "fmt ", makeFmtPayload(channels, bitDepth, sampleRate, nil))
	writeTestChunk(t, &b, "data", payload)

	return patchRiffSize(b.Bytes())
}

func makeFmtPayload(channels, bitDepth uint16, sampleRate uint32, extra []byte) []byte {
	payload := make([]byte, 16)
	binary.LittleEndian.PutUint16(payload[0:2], FormatPCM)
	binary.LittleEndian.PutUint16(payload[2:4], channels)
	binary.LittleEndian.PutUint32(payload[4:8], sampleRate)
	binary.LittleEndian.PutUint32(payload[8:12], sampleRate*uint32(channels)*uint32(bitDepth)/8)
	binary.LittleEndian.PutUint16(payload[12:14], channels*bitDepth/8)
	binary.LittleEndian.PutUint16(payload[14:16], bitDepth)

	return append(payload, extra...)
}

func writeTestChunk(t *testing.T, b *bytes.Buffer, id string, payload []byte) {
	t.Helper()

	if len(id) != 4 {
		t.Fatalf("chunk id must be 4 bytes, got %q", id)
	}

	b.WriteString(id)

	err := binary.Write(b, binary.LittleEndian, uint32(len(payload)))
	if err != nil {
		t.Fatalf("write chunk size for %q: %v", id, err)
	}

	if _, err := b.Write(payload); err != nil {
		t.Fatalf("write chunk payload for %q: %v", id, err)
	}

	if len(payload)%2 == 1 {
		err := b.WriteByte(0)
		if err != nil {
			t.Fatalf("write chunk pad for %q: %v", id, err)
		}
	}
}

func patchRiffSize(out []byte) []byte {
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(out)-8))

	return out
}
