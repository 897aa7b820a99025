// Concurrency tests: a built Graph is read-only and must support
// unsynchronized parallel Step calls from many hypotheses.
package ctxfst_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/ctxfst"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// TestStep_ConcurrentReaders runs many goroutines, each threading its own
// hypothesis through the same shared graph, and checks every one of them
// observes the single-threaded scores.
func TestStep_ConcurrentReaders(t *testing.T) {
	tab := letters()
	opts := unitOptions()
	g, err := ctxfst.Build([]string{"cat", "car", "cargo", "dog"}, tab, &opts)
	require.NoError(t, err)

	phrases := []string{"cat", "car", "cargo", "dog"}

	// Reference scores, computed single-threaded.
	want := make(map[string]float64, len(phrases))
	for _, phrase := range phrases {
		_, full, _ := feed(t, g, tab, phrase)
		want[phrase] = full
	}

	var eg errgroup.Group
	const readers = 16
	for i := 0; i < readers; i++ {
		phrase := phrases[i%len(phrases)]
		eg.Go(func() error {
			for round := 0; round < 200; round++ {
				active := g.NewActiveStates()
				var full float64
				for _, r := range phrase {
					_, full, active = g.Step(active, tab.Find(string(r)))
				}
				if full != want[phrase] {
					return fmt.Errorf("score mismatch for %q: got %v, want %v", phrase, full, want[phrase])
				}
			}

			return nil
		})
	}
	require.NoError(t, eg.Wait())
}
