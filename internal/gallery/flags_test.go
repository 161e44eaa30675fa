package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeFlags(t *testing.T) {
	tests := []struct {
		name  string
		flags []QueryFlag
		want  QueryFlag
	}{
		{"empty", nil, 0},
		{"single", []QueryFlag{FlagIncludeStatistics}, 256},
		{"pair", []QueryFlag{FlagIncludeVersions, FlagIncludeFiles}, 3},
		{"triple", []QueryFlag{FlagIncludeVersions, FlagIncludeFiles, FlagIncludeStatistics}, 259},
		{"duplicates collapse", []QueryFlag{FlagIncludeVersions, FlagIncludeVersions}, 1},
		{"all attributes", []QueryFlag{FlagAllAttributes}, 16863},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeFlags(tt.flags))
		})
	}
}

func TestEncodeFlagsOrderIndependent(t *testing.T) {
	forward := EncodeFlags([]QueryFlag{FlagIncludeVersions, FlagIncludeFiles, FlagIncludeStatistics})
	backward := EncodeFlags([]QueryFlag{FlagIncludeStatistics, FlagIncludeFiles, FlagIncludeVersions})
	assert.Equal(t, forward, backward)
}

func TestSplitUniqueID(t *testing.T) {
	publisher, name, err := SplitUniqueID("ms-vscode.cpptools")
	assert.NoError(t, err)
	assert.Equal(t, "ms-vscode", publisher)
	assert.Equal(t, "cpptools", name)

	// Only the first dot separates publisher from name.
	publisher, name, err = SplitUniqueID("golang.go.nightly")
	assert.NoError(t, err)
	assert.Equal(t, "golang", publisher)
	assert.Equal(t, "go.nightly", name)

	for _, bad := range []string{"", "nodot", ".name", "publisher."} {
		_, _, err := SplitUniqueID(bad)
		assert.Error(t, err, "id %q", bad)
	}
}
