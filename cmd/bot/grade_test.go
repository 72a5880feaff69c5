package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradeCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"grade", "85"}, "85%: B (Band 5)\n"},
		{[]string{"grade", "72,5%"}, "72.5%: C (Band 4)\n"},
		{[]string{"grade", "49.99"}, "49.99%: F (Band 1)\n"},
	}

	for _, tc := range tests {
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetArgs(tc.args)

		require.NoError(t, rootCmd.Execute())
		assert.Equal(t, tc.want, out.String())
	}
}

func TestGradeCommand_InvalidMark(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"grade", "150"})

	assert.Error(t, rootCmd.Execute())
}
