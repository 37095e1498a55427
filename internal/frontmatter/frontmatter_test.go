package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit_NoFrontmatter_ReturnsBodyOnly(t *testing.T) {
	input := []byte("# Title\n\nHello\n")

	fm, body, had, err := Split(input)
	require.NoError(t, err)
	require.False(t, had)
	require.Empty(t, fm)
	require.Equal(t, input, body)
}

func TestSplit_YAMLFrontmatter_SplitsFrontmatterAndBody(t *testing.T) {
	input := []byte("---\ntitle: Hello\n---\n# Title\n")

	fm, body, had, err := Split(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("title: Hello\n"), fm)
	require.Equal(t, []byte("# Title\n"), body)
}

func TestSplit_MissingClosingDelimiter_ReturnsError(t *testing.T) {
	input := []byte("---\ntitle: Hello\n# Title\n")

	_, _, had, err := Split(input)
	require.False(t, had)
	require.ErrorIs(t, err, ErrMissingClosingDelimiter)
}

func TestSplit_CRLF_SplitsFrontmatterAndBody(t *testing.T) {
	input := []byte("---\r\ntitle: Hello\r\n---\r\n# Title\r\n")

	fm, body, had, err := Split(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("title: Hello\r\n"), fm)
	require.Equal(t, []byte("# Title\r\n"), body)
}

func TestSplit_EmptyFrontmatterBlock_HadWithEmptyFrontmatter(t *testing.T) {
	input := []byte("---\n---\n# Title\n")

	fm, body, had, err := Split(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Empty(t, fm)
	require.Equal(t, []byte("# Title\n"), body)
}

func TestParse_TitleAndLayout_Extracted(t *testing.T) {
	attrs, err := Parse([]byte("title: Getting Started\nlayout: guide\ntags: [a, b]\n"))
	require.NoError(t, err)
	require.Equal(t, "Getting Started", attrs.Title)
	require.Equal(t, "guide", attrs.Layout)
	require.Contains(t, attrs.Extra, "tags")
}

func TestParse_Empty_ZeroAttrs(t *testing.T) {
	attrs, err := Parse(nil)
	require.NoError(t, err)
	require.Empty(t, attrs.Title)
	require.Empty(t, attrs.Layout)
	require.Empty(t, attrs.Extra)
}

func TestParse_InvalidYAML_Fails(t *testing.T) {
	_, err := Parse([]byte("title: [unclosed\n"))
	require.Error(t, err)
}

func TestParse_NonStringTitle_Ignored(t *testing.T) {
	attrs, err := Parse([]byte("title: 42\n"))
	require.NoError(t, err)
	require.Empty(t, attrs.Title)
}
