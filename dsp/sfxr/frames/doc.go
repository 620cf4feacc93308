// Package frames adapts a sample source to interleaved PCM buffers.
//
// The producers pull one sample per frame from a Source, typically a
// *decoder.Decoder, and stop the moment the source goes idle. They return the
// number of frames actually written, which may be less than requested; the
// slots past that count are left untouched. Integer output scales by 32767
// and truncates toward zero. Stereo output duplicates the mono sample.
//
// Reader wraps the same producers as an io.Reader of little-endian bytes for
// piping raw PCM into files or audio sinks, and Render collects a whole note
// into a float32 slice for offline use.
package frames
