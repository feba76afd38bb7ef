package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewEmailCmd(t *testing.T) {
	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"preview-email", "role_changed"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "ADMIN")
	assert.Contains(t, out.String(), "John")
}

func TestPreviewEmailCmd_UnknownTemplate(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"preview-email", "welcome"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "member_removed")
}
