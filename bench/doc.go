// Package bench runs the write-then-read benchmark of one codec against a file.
//
// A Runner takes a Benchmark (label, file path, codec) and the in-memory
// record sequence, then:
//
//  1. creates the file and writes every record as CSV through a fixed-size
//     bufio buffer and the codec's encoding stream, finalizing the stream and
//     closing the file (timed as the write phase),
//  2. stats the file for its size,
//  3. opens the file and decodes every record through the codec's decoding
//     stream, discarding each one (timed as the read phase).
//
// The file is left on disk. Any error aborts the benchmark, and RunSuite stops
// at the first failing entry after handing the earlier results to its callback.
//
// Example:
//
//	runner, _ := bench.NewRunner(bench.WithVerify(true))
//	suite, _ := bench.DefaultSuite(".")
//	err := runner.RunSuite(suite, records, func(res bench.Result) error {
//	    return table.WriteRow(res)
//	})
package bench
