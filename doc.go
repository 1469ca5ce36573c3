// Package wave parses RIFF/WAVE containers into an in-memory record.
//
// The package reads the chunk sequence of a WAV file, validates the
// structural invariants of the container, and returns a WaveFile
// holding the format metadata (sample rate, channel count, bit depth)
// together with the raw sample payload. Non-core chunks that appear
// before the data chunk are skipped and inventoried.
//
// The package does not decode samples, write WAV files, or support
// compressed codecs: its responsibility ends at producing a populated
// record plus the payload bytes. Non-PCM files still parse; callers
// can branch on AudioFormat or use ValidatePCM.
package wave
