package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ConfigErrorIsReturned(t *testing.T) {
	err := run([]string{"-no-such-flag"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting configs")
}

func TestRun_MissingConfigFileIsReturned(t *testing.T) {
	err := run([]string{"-c", t.TempDir() + "/absent.json"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting configs")
}

func TestOrNA(t *testing.T) {
	assert.Equal(t, "N/A", orNA(""))
	assert.Equal(t, "v1.2.0", orNA("v1.2.0"))
}
