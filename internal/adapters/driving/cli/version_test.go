package cli

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd(t *testing.T) {
	prev := version
	defer func() { version = prev }()
	SetVersion("0.4.0")

	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Equal(t, "catalog version 0.4.0 ("+runtime.Version()+" "+runtime.GOOS+"/"+runtime.GOARCH+")\n", out)
}

func TestVersionCmd_Short(t *testing.T) {
	prev := version
	defer func() { version = prev }()
	SetVersion("0.4.0")

	out, err := execute(t, "version", "--short")

	require.NoError(t, err)
	assert.Equal(t, "0.4.0\n", out)
}
