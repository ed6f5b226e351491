package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/termstat/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = " g1   |  g2\nc1 c2 | c3 c4"

func TestParseStyle(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		wantErr  bool
	}{
		{"", StyleAuto, false},
		{"auto", StyleAuto, false},
		{"PLAIN", StylePlain, false},
		{" color ", StyleColor, false},
		{"rainbow", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStyle(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrConfig))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestHeaderStyler_PassThrough(t *testing.T) {
	tests := []struct {
		name  string
		style string
		isTTY bool
	}{
		{"plain on terminal", StylePlain, true},
		{"auto on pipe", StyleAuto, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := HeaderStyler(tt.style, tt.isTTY)
			assert.Equal(t, header, style(header))
		})
	}
}

func TestHeaderStyler_ColorKeepsWidth(t *testing.T) {
	style := HeaderStyler(StyleColor, false)

	styled := style(header)
	assert.NotEqual(t, header, styled)
	assert.Contains(t, styled, "\x1b[")

	want := strings.Split(header, "\n")
	got := strings.Split(styled, "\n")
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, lipgloss.Width(want[i]), lipgloss.Width(got[i]), "line %d", i)
	}
}

func TestHeaderStyler_Empty(t *testing.T) {
	assert.Empty(t, HeaderStyler(StyleColor, true)(""))
}

func TestStyleWords_KeepsSpacing(t *testing.T) {
	st := lipgloss.NewStyle()
	assert.Equal(t, "  a  bc ", styleWords("  a  bc ", st))
}

func TestSemanticStyles(t *testing.T) {
	for _, st := range []lipgloss.Style{SuccessStyle(), ErrorStyle(), MutedStyle()} {
		assert.Contains(t, st.Render("text"), "text")
	}
}
