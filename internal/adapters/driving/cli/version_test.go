package cli

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withVersion(t *testing.T, v string) {
	t.Helper()
	prev := version
	SetVersion(v)
	t.Cleanup(func() { version = prev })
}

func TestEatVersion(t *testing.T) {
	withVersion(t, "1.4.0")

	out, err := execute(t, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "eat version 1.4.0")
	assert.Contains(t, out, runtime.Version())
	assert.Contains(t, out, runtime.GOOS+"/"+runtime.GOARCH)
}

func TestEatVersion_Short(t *testing.T) {
	withVersion(t, "1.4.0")

	out, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "1.4.0\n", out)
}

func TestEatVersion_DevBuild(t *testing.T) {
	withVersion(t, "dev")

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "eat version dev")
}

func TestEatVersion_RejectsArgs(t *testing.T) {
	_, err := execute(t, "version", "extra")
	assert.Error(t, err)
}
