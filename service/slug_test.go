package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	require.Equal(t, "hello-world-2024", Slugify("Hello, World!  2024"))
	require.Equal(t, "intro", Slugify("Intro"))
	require.Equal(t, "a-b-c", Slugify("a/b/c"))
	require.Equal(t, "untitled", Slugify("Untitled"))
	// Symbols-only titles slug to an empty base.
	require.Equal(t, "", Slugify("!!! ???"))
	require.Equal(t, "", Slugify(""))
}
