//go:build unit

package patch_test

import (
	"testing"
	"time"

	"petpromise/internal/pkg/patch"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	v := "set"
	assert.Equal(t, "set", patch.Coalesce(&v, "fallback"))
	assert.Equal(t, "fallback", patch.Coalesce[string](nil, "fallback"))
}

func TestEqual(t *testing.T) {
	ts := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{name: "identical strings", a: "Rex", b: "Rex", want: true},
		{name: "different strings", a: "Rex", b: "Max", want: false},
		{name: "bool vs string form", a: true, b: "true", want: true},
		{name: "json float vs int", a: float64(120), b: 120, want: true},
		{name: "float keeps fraction", a: 12.5, b: "12.5", want: true},
		{name: "time vs rendered string", a: ts, b: "2025-03-01T12:00:00Z", want: true},
		{name: "time pointer", a: &ts, b: ts, want: true},
		{name: "nil vs empty", a: nil, b: "", want: true},
		{name: "nil vs value", a: nil, b: "x", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, patch.Equal(tt.a, tt.b))
		})
	}
}
