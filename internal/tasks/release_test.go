package tasks

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsReleaseRequested(t *testing.T) {
	tests := []struct {
		name  string
		tasks []string
		want  bool
	}{
		{"no tasks", nil, false},
		{"debug only", []string{"assembleDebug"}, false},
		{"assemble release", []string{"assembleRelease"}, true},
		{"bundle release", []string{"bundleRelease"}, true},
		{"upper case", []string{"ASSEMBLERELEASE"}, true},
		{"project qualified", []string{":app:bundleRelease"}, true},
		{"substring anywhere", []string{"releaseNotes"}, true},
		{"mixed set", []string{"clean", "assembleDebug", "bundleRelease"}, true},
		{"near miss", []string{"assembleReleas", "elease"}, false},
		{"empty name", []string{""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsReleaseRequested(tt.tasks))
		})
	}
}

func TestReleaseTasksPreservesOrder(t *testing.T) {
	got := ReleaseTasks([]string{"bundleRelease", "assembleDebug", "assembleRelease"})
	assert.Equal(t, []string{"bundleRelease", "assembleRelease"}, got)
}

// Task names drawn from an alphabet without 'r' can never contain the marker.
func TestIsReleaseRequested_NeverMatchesWithoutMarker(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := "abcdefghijklmnopqstuvwxyzABCDEFGHIJKLMNOPQSTUVWXYZ:_-0123456789"

	for i := 0; i < 500; i++ {
		names := make([]string, rng.Intn(5))
		for j := range names {
			var b strings.Builder
			for k := 0; k < rng.Intn(20); k++ {
				b.WriteByte(alphabet[rng.Intn(len(alphabet))])
			}
			names[j] = b.String()
		}
		assert.False(t, IsReleaseRequested(names), "names=%v", names)
	}
}

// Embedding the marker in any casing at any position always matches.
func TestIsReleaseRequested_AlwaysMatchesWithMarker(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		var marker strings.Builder
		for _, r := range ReleaseMarker {
			if rng.Intn(2) == 0 {
				marker.WriteString(strings.ToUpper(string(r)))
			} else {
				marker.WriteRune(r)
			}
		}
		names := []string{"clean", "assemble" + marker.String() + "Bundle"}
		rng.Shuffle(len(names), func(a, b int) { names[a], names[b] = names[b], names[a] })
		assert.True(t, IsReleaseRequested(names), "names=%v", names)
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize([]string{"assembleRelease, bundleRelease", "", " clean "})
	assert.Equal(t, []string{"assembleRelease", "bundleRelease", "clean"}, got)
	assert.Empty(t, Normalize(nil))
}
