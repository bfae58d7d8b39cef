package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	for _, c := range []lipgloss.Color{
		theme.Accent, theme.Code, theme.Foreground, theme.Muted,
		theme.Score, theme.Error, theme.Border, theme.Focus,
	} {
		assert.NotEmpty(t, string(c))
	}
}

func TestDefaultTheme_FocusDiffersFromBorder(t *testing.T) {
	theme := DefaultTheme()
	assert.NotEqual(t, theme.Border, theme.Focus)
}

func TestNewStyles(t *testing.T) {
	t.Run("with theme", func(t *testing.T) {
		theme := DefaultTheme()
		s := NewStyles(theme)

		require.NotNil(t, s)
		assert.Equal(t, theme, s.Theme())
	})

	t.Run("nil theme uses default", func(t *testing.T) {
		s := NewStyles(nil)

		require.NotNil(t, s)
		assert.Equal(t, DefaultTheme(), s.Theme())
	})
}

func TestStyles_Render(t *testing.T) {
	s := DefaultStyles()

	assert.Contains(t, s.Code.Render("CSCI 005"), "CSCI 005")
	assert.Contains(t, s.Score.Render("128"), "128")
	assert.Contains(t, s.InputFocused.Render("q"), "q")
}
