package logtee

import (
	"io"
	"testing"
)

func newBenchLogger(sinks int, min Level) *Logger {
	l := New()
	for i := 0; i < sinks; i++ {
		l.TeeWriter(io.Discard, min)
	}
	return l
}

func BenchmarkInfof_SingleSink(b *testing.B) {
	l := newBenchLogger(1, LevelDebug)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Infof("request %d handled\n", i)
	}
}

func BenchmarkInfof_ThreeSinks(b *testing.B) {
	l := newBenchLogger(3, LevelDebug)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Infof("request %d handled\n", i)
	}
}

func BenchmarkInfof_NoSinks(b *testing.B) {
	// Early exit: no formatting at all.
	l := New()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Infof("request %d handled\n", i)
	}
}

func BenchmarkInfof_Filtered(b *testing.B) {
	// Formats, then finds no eligible sink.
	l := newBenchLogger(1, LevelError)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Infof("request %d handled\n", i)
	}
}

func BenchmarkInfof_WithPrefixCallback(b *testing.B) {
	l := newBenchLogger(1, LevelDebug)
	l.SetPrefixFunc(func() string { return "H|" })
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Infof("request %d handled\n", i)
	}
}
