package bench

import "time"

const mebibyte = 1024 * 1024

// Result holds the measurements of a single benchmark run.
type Result struct {
	Algorithm     string        // Label of the codec that produced the file
	Path          string        // Artifact path
	WriteDuration time.Duration // Elapsed time of the write phase, including finalization and close
	ReadDuration  time.Duration // Elapsed time of the read phase
	FileSize      int64         // Bytes on disk after the write phase
	Records       int           // Records written
	RecordsRead   int           // Records decoded in the read phase
	Digest        uint64        // xxHash64 of the uncompressed CSV stream, zero unless verification ran
}

// Throughput returns size bytes per d in MiB/s.
//
// The rate uses the full precision of d. A zero or negative duration yields 0
// instead of an infinite rate.
func Throughput(size int64, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}

	return float64(size) / d.Seconds() / mebibyte
}

// WriteThroughput returns the file size divided by the write duration, in MiB/s.
func (r Result) WriteThroughput() float64 {
	return Throughput(r.FileSize, r.WriteDuration)
}

// ReadThroughput returns the file size divided by the read duration, in MiB/s.
func (r Result) ReadThroughput() float64 {
	return Throughput(r.FileSize, r.ReadDuration)
}

// TotalDuration returns the sum of both phases.
func (r Result) TotalDuration() time.Duration {
	return r.WriteDuration + r.ReadDuration
}

// FileSizeMiB returns the file size in MiB.
func (r Result) FileSizeMiB() float64 {
	return float64(r.FileSize) / mebibyte
}
