package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetInfo(t *testing.T) {
	info := GetInfo()

	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, runtime.GOOS)
	assert.Contains(t, info.Platform, runtime.GOARCH)
}

func TestString(t *testing.T) {
	originalCommit := Commit
	t.Cleanup(func() { Commit = originalCommit })

	Commit = "unknown"
	assert.Contains(t, String(), "accentd version")
	assert.NotContains(t, String(), "commit:")

	Commit = "0123456789abcdef"
	assert.Contains(t, String(), "commit: 01234567")
}

func TestShort(t *testing.T) {
	originalVersion, originalCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = originalVersion, originalCommit })

	Version, Commit = "1.0.0", "unknown"
	assert.Equal(t, "1.0.0", Short())

	Commit = "abcdef0123456789"
	assert.Equal(t, "1.0.0 (abcdef01)", Short())
}

func TestIsSnapshot(t *testing.T) {
	originalVersion := Version
	t.Cleanup(func() { Version = originalVersion })

	tests := []struct {
		version  string
		expected bool
	}{
		{"dev", true},
		{"1.0.0", false},
		{"1.0.1-SNAPSHOT.abc1234", true},
		{"1.2.3-alpha.1", false},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			Version = tt.version
			assert.Equal(t, tt.expected, IsSnapshot())
		})
	}
}
