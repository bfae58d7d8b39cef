package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPServeCmd_PortFlag(t *testing.T) {
	flag := mcpServeCmd.Flags().Lookup("port")
	require.NotNil(t, flag)
	assert.Equal(t, "p", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}

func TestMCPServeCmd_NoSearchService(t *testing.T) {
	prev := searchService
	searchService = nil
	defer func() { searchService = prev }()

	_, err := execute(t, "mcp", "serve")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "search service not configured")
}

func TestTUICmd_NoSearchService(t *testing.T) {
	prev := searchService
	searchService = nil
	defer func() { searchService = prev }()

	_, err := execute(t, "tui")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "search service not configured")
}

func TestTUICmd_RequiresTerminal(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	prev := isTerminal
	isTerminal = func() bool { return false }
	defer func() { isTerminal = prev }()

	_, err := execute(t, "tui")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}
