package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPath_Clean(t *testing.T) {
	tests := []struct {
		path Path
		want Path
	}{
		{path: "", want: ""},
		{path: "/src/./a.go", want: "/src/a.go"},
		{path: "/src/pkg/../a.go", want: "/src/a.go"},
		{path: "src//a.go", want: "src/a.go"},
	}

	for _, tt := range tests {
		t.Run(string(tt.path), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.path.Clean())
		})
	}
}
