package hostenv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestDetect_PriorityOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		d    Detector
		want Kind
	}{
		{
			name: "edge marker wins",
			d:    Detector{GOOS: "linux", Getenv: env(map[string]string{"AWS_LAMBDA_FUNCTION_NAME": "fn"})},
			want: Edge,
		},
		{
			name: "edge marker beats wasm",
			d:    Detector{GOOS: "js", Getenv: env(map[string]string{"VERCEL": "1"})},
			want: Edge,
		},
		{
			name: "wasm without markers is client",
			d:    Detector{GOOS: "js", Getenv: env(nil)},
			want: Client,
		},
		{
			name: "wasip1 is client",
			d:    Detector{GOOS: "wasip1", Getenv: env(nil)},
			want: Client,
		},
		{
			name: "plain process is server",
			d:    Detector{GOOS: "linux", Getenv: env(nil)},
			want: Server,
		},
		{
			name: "whitespace-only marker is ignored",
			d:    Detector{GOOS: "linux", Getenv: env(map[string]string{"CF_PAGES": "   "})},
			want: Server,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.Detect())
		})
	}
}

func TestDetect_TotalUnderCorruption(t *testing.T) {
	t.Parallel()

	// A probe that panics reads as an empty environment.
	d := Detector{GOOS: "linux", Getenv: func(string) string { panic("corrupted env") }}
	require.NotPanics(t, func() {
		assert.Equal(t, Server, d.Detect())
	})

	// Unknown GOOS strings fall back to server, never an unknown category.
	weird := Detector{GOOS: "plan9-but-worse", Getenv: env(nil)}
	assert.Contains(t, Kinds(), weird.Detect())
}

func TestDetect_FreshReadOnTransition(t *testing.T) {
	t.Parallel()

	vars := map[string]string{"FUNCTION_TARGET": "handler"}
	d := Detector{GOOS: "linux", Getenv: env(vars)}
	first := d.Detect()

	delete(vars, "FUNCTION_TARGET")
	second := d.Detect()

	require.NotEqual(t, first, second, "detection must be a fresh read")
	assert.Equal(t, Edge, first)
	assert.Equal(t, Server, second)
}

func TestDetect_DefaultProbes(t *testing.T) {
	// Zero-value Detector and the package function probe the real host;
	// both must return a member of the fixed set.
	assert.Contains(t, Kinds(), Detector{}.Detect())
	assert.Contains(t, Kinds(), Detect())
}
