package ctxfst_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/katalvlaran/ctxfst"
	"github.com/katalvlaran/ctxfst/symbol"
)

// benchVocabulary covers the lowercase Latin alphabet.
func benchVocabulary() *symbol.Table {
	tab := symbol.NewTable()
	for r := 'a'; r <= 'z'; r++ {
		tab.Add(string(r))
	}

	return tab
}

// benchPhrases generates n synthetic phrases of the given token length.
func benchPhrases(n, length int) []string {
	phrases := make([]string, n)
	for i := 0; i < n; i++ {
		buf := make([]rune, length)
		for j := range buf {
			buf[j] = rune('a' + (i+j)%26)
		}
		phrases[i] = string(buf)
	}

	return phrases
}

// benchBuild compiles n phrases of the given length, failing the
// benchmark on any error.
func benchBuild(b *testing.B, n, length int) *ctxfst.Graph {
	b.Helper()
	opts := ctxfst.DefaultOptions()
	opts.MaxContexts = n
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	g, err := ctxfst.Build(benchPhrases(n, length), benchVocabulary(), &opts)
	if err != nil {
		b.Fatalf("Build failed: %v", err)
	}

	return g
}

// BenchmarkBuild_SmallSession compiles 50 phrases of 8 tokens.
func BenchmarkBuild_SmallSession(b *testing.B) {
	phrases := benchPhrases(50, 8)
	vocab := benchVocabulary()
	opts := ctxfst.DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ctxfst.Build(phrases, vocab, &opts); err != nil {
			b.Fatalf("Build failed: %v", err)
		}
	}
}

// BenchmarkBuild_LargeSession compiles 1000 phrases of 12 tokens.
func BenchmarkBuild_LargeSession(b *testing.B) {
	phrases := benchPhrases(1000, 12)
	vocab := benchVocabulary()
	opts := ctxfst.DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ctxfst.Build(phrases, vocab, &opts); err != nil {
			b.Fatalf("Build failed: %v", err)
		}
	}
}

// BenchmarkStep_HotPath measures the per-frame matcher over a stream of
// tokens, threading the active map as a decoder would.
func BenchmarkStep_HotPath(b *testing.B) {
	g := benchBuild(b, 200, 8)
	vocab := g.Symbols()

	// A token stream that keeps several states active.
	stream := make([]int, 0, 64)
	for _, r := range "abcdefghabcdabcdefabghijabcdefgh" {
		stream = append(stream, vocab.Find(string(r)))
	}

	b.ReportAllocs()
	b.ResetTimer()
	active := g.NewActiveStates()
	for i := 0; i < b.N; i++ {
		var partial, full float64
		partial, full, active = g.Step(active, stream[i%len(stream)])
		_ = partial
		_ = full
		if len(active) == 0 {
			active = g.NewActiveStates()
		}
	}
}
