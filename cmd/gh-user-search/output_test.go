package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOutput(t *testing.T) {
	for _, f := range []string{"text", "json", "yaml"} {
		assert.NoError(t, validateOutput(f))
	}
	assert.Error(t, validateOutput("xml"))
}

func TestEmit(t *testing.T) {
	v := themeOutput{DarkMode: true}

	var buf bytes.Buffer
	require.NoError(t, emit(&buf, outputJSON, v))
	assert.JSONEq(t, `{"dark_mode":true}`, buf.String())

	buf.Reset()
	require.NoError(t, emit(&buf, outputYAML, v))
	assert.YAMLEq(t, "dark_mode: true\n", buf.String())

	assert.Error(t, emit(&buf, outputText, v))
}
