package output_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/dsmmcken/killport/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintJSON(t *testing.T) {
	buf := new(bytes.Buffer)
	err := output.PrintJSON(buf, map[string]string{"key": "value"})
	require.NoError(t, err)

	var result map[string]string
	err = json.Unmarshal(buf.Bytes(), &result)
	require.NoError(t, err)
	assert.Equal(t, "value", result["key"])
}

func TestPrintError(t *testing.T) {
	buf := new(bytes.Buffer)
	err := output.PrintError(buf, "test_error", "something went wrong")
	require.NoError(t, err)

	var result map[string]string
	err = json.Unmarshal(buf.Bytes(), &result)
	require.NoError(t, err)
	assert.Equal(t, "test_error", result["error"])
	assert.Equal(t, "something went wrong", result["message"])
}

func TestExitCodes(t *testing.T) {
	assert.Equal(t, 0, output.ExitSuccess)
	assert.Equal(t, 1, output.ExitError)
	assert.Equal(t, 2, output.ExitConfig)
	assert.Equal(t, 130, output.ExitInterrupted)
}

func TestSetAndGetFlags(t *testing.T) {
	output.SetFlags(true, true, false, true)
	assert.True(t, output.IsJSON())
	assert.True(t, output.IsQuiet())
	assert.False(t, output.IsVerbose())
	assert.True(t, output.IsNoColor())

	output.SetFlags(false, false, true, false)
	assert.False(t, output.IsJSON())
	assert.False(t, output.IsQuiet())
	assert.True(t, output.IsVerbose())
	assert.False(t, output.IsNoColor())

	// Reset
	output.SetFlags(false, false, false, false)
}

func TestStylesPassThroughWithNoColor(t *testing.T) {
	output.SetFlags(false, false, false, true)
	defer output.SetFlags(false, false, false, false)

	assert.Equal(t, "1234", output.PID("1234"))
	assert.Equal(t, "killed", output.Success("killed"))
	assert.Equal(t, "skipped", output.Warn("skipped"))
	assert.Equal(t, "Error:", output.Error("Error:"))
}

func TestStylesKeepText(t *testing.T) {
	output.SetFlags(false, false, false, false)
	assert.Contains(t, output.PID("1234"), "1234")
}
