package wave

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-audio/audio"
)

var (
	// ErrInvalidFormat is returned when a magic tag does not match the
	// RIFF/WAVE layout, or when a mandatory chunk is missing or
	// undersized. The input is not a WAV file.
	ErrInvalidFormat = errors.New("invalid wave format")
	// ErrTruncatedInput is returned when the stream ends before a field
	// or the payload is fully read. The wrapped message names the field
	// that was being read.
	ErrTruncatedInput = errors.New("truncated wave input")
	// ErrUnsupportedFormat is returned by ValidatePCM for files whose
	// audio format is not linear PCM. Decode never returns it: non-PCM
	// containers still parse and expose their format tag.
	ErrUnsupportedFormat = errors.New("unsupported wave format")

	errNilWaveFile = errors.New("nil wave file")
)

// WaveFile is the parsed form of one RIFF/WAVE container. All
// multi-byte fields are stored in host byte order after conversion
// from the on-disk little-endian layout. The record is populated once
// by Decode and owned by the caller; the payload buffer is released
// with the record.
type WaveFile struct {
	// ChunkID holds "RIFF".
	ChunkID [4]byte
	// ChunkSize is the byte count following this field, i.e. the file
	// size minus 8.
	ChunkSize uint32
	// FormatID holds "WAVE".
	FormatID [4]byte

	// Subchunk1ID holds "fmt ".
	Subchunk1ID [4]byte
	// Subchunk1Size is the fmt chunk payload size, 16 for plain PCM.
	Subchunk1Size uint32
	// AudioFormat is the WAVE format tag, FormatPCM for uncompressed
	// linear samples.
	AudioFormat uint16
	NumChannels uint16
	SampleRate  uint32
	// ByteRate is SampleRate * NumChannels * BitsPerSample/8.
	ByteRate uint32
	// BlockAlign is the byte size of one multi-channel sample frame.
	BlockAlign    uint16
	BitsPerSample uint16

	// Subchunk2ID holds "data".
	Subchunk2ID [4]byte
	// Subchunk2Size is the payload length; len(Data) always equals it.
	Subchunk2Size uint32
	// Data is the raw sample payload, not interpreted.
	Data []byte

	// Skipped inventories the non-core chunks encountered before the
	// data chunk. Only identity and size are kept; the payload bytes of
	// skipped chunks are discarded during decode.
	Skipped []SkippedChunk
}

// SkippedChunk records a chunk that the parser passed over on its way
// to the data chunk.
type SkippedChunk struct {
	ID   [4]byte
	Size uint32
}

// Format returns the audio format descriptor of the parsed content.
func (w *WaveFile) Format() *audio.Format {
	if w == nil {
		return nil
	}

	return &audio.Format{
		NumChannels: int(w.NumChannels),
		SampleRate:  int(w.SampleRate),
	}
}

// FormatName returns a human readable name for the file's format tag.
func (w *WaveFile) FormatName() string {
	if w == nil {
		return ""
	}

	return FormatName(w.AudioFormat)
}

// PCM reports whether the payload is uncompressed linear PCM.
func (w *WaveFile) PCM() bool {
	return w != nil && w.AudioFormat == FormatPCM
}

// ValidatePCM returns ErrUnsupportedFormat when the file's audio
// format is not linear PCM. Callers that can only handle raw PCM
// payloads use it to reject compressed containers after a successful
// parse.
func (w *WaveFile) ValidatePCM() error {
	if w == nil {
		return errNilWaveFile
	}

	if w.AudioFormat != FormatPCM {
		return fmt.Errorf("%w: %s (format tag %d)", ErrUnsupportedFormat, FormatName(w.AudioFormat), w.AudioFormat)
	}

	return nil
}

// BytesPerFrame returns the byte size of one multi-channel sample
// frame, derived from bit depth and channel count.
func (w *WaveFile) BytesPerFrame() int {
	if w == nil {
		return 0
	}

	return int(w.NumChannels) * bytesPerSample(int(w.BitsPerSample))
}

// FrameCount returns the number of sample frames held in Data.
func (w *WaveFile) FrameCount() int {
	if w == nil {
		return 0
	}

	frameSize := w.BytesPerFrame()
	if frameSize == 0 {
		return 0
	}

	return len(w.Data) / frameSize
}

// Duration returns the play time of the payload.
func (w *WaveFile) Duration() (time.Duration, error) {
	if w == nil {
		return 0, errNilWaveFile
	}

	if w.SampleRate == 0 {
		return 0, fmt.Errorf("%w: zero sample rate", ErrInvalidFormat)
	}

	return time.Duration(w.FrameCount()) * time.Second / time.Duration(w.SampleRate), nil
}

// String implements the Stringer interface.
func (w *WaveFile) String() string {
	if w == nil {
		return ""
	}

	return fmt.Sprintf("%s - %d Hz @ %d bits, %d channel(s), %d bytes of samples",
		w.FormatName(), w.SampleRate, w.BitsPerSample, w.NumChannels, w.Subchunk2Size)
}

func bytesPerSample(bitDepth int) int {
	if bitDepth <= 0 {
		return 0
	}

	return (bitDepth-1)/8 + 1
}
