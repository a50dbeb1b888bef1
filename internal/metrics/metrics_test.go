package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"findaword/internal/ga"
)

func TestObserve(t *testing.T) {
	r := NewRecorder()
	report := &ga.Report{
		Generation: 1,
		Strategies: "hamming/rank/random/uniform/swap",
		Fitness:    "hamming",
		Selection:  "rank",
		BestScore:  0.25,
		Children:   3,
		Refilled:   2,
	}
	r.Observe(report, 10*time.Millisecond)
	r.Observe(report, 20*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.generations.WithLabelValues("hamming", "rank")))
	assert.Equal(t, 0.25, testutil.ToFloat64(r.bestScore))
	assert.Equal(t, 6.0, testutil.ToFloat64(r.children))
	assert.Equal(t, 4.0, testutil.ToFloat64(r.refilled))
	assert.Equal(t, 1, testutil.CollectAndCount(r.duration))

	expected := `
# HELP findaword_refilled_total Random individuals added to complete a generation
# TYPE findaword_refilled_total counter
findaword_refilled_total 4
`
	require.NoError(t, testutil.CollectAndCompare(r.refilled, strings.NewReader(expected)))
}

func TestWriteTextfile(t *testing.T) {
	r := NewRecorder()
	r.Observe(&ga.Report{Fitness: "jaccard", Selection: "roulette", BestScore: 0.5}, time.Millisecond)

	path := filepath.Join(t.TempDir(), "out", "findaword.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `findaword_generations_total{fitness="jaccard",selection="roulette"} 1`)
	assert.Contains(t, string(data), "findaword_best_score 0.5")
}
