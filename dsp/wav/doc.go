// Package wav reads and writes the minimal WAV subset the wavetable
// importer needs: RIFF/WAVE containers with 16-bit PCM or 32-bit float
// samples. Unknown chunks are skipped; anything outside that subset is
// rejected with [ErrUnsupportedFormat]. Stereo sources are averaged to
// mono by [File.Mono] before import.
package wav
