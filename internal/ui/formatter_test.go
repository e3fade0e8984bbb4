package ui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"utestgen/internal/domain"
)

func disableColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

var sample = []domain.Prototype{
	{Name: "test_foo", File: "a.c", Line: 1},
	{Name: "test_bar", File: "a.c", Line: 3},
	{Name: "test_baz", File: "b.c", Line: 1},
}

func TestGroupByFile(t *testing.T) {
	t.Run("keeps files without tests", func(t *testing.T) {
		groups := GroupByFile([]string{"a.c", "empty.c", "b.c"}, sample)
		assert.Len(t, groups, 3)
		assert.Len(t, groups[0].Prototypes, 2)
		assert.Empty(t, groups[1].Prototypes)
		assert.Len(t, groups[2].Prototypes, 1)
	})

	t.Run("same file twice", func(t *testing.T) {
		protos := []domain.Prototype{
			{Name: "test_a", File: "a.c", Line: 1},
			{Name: "test_b", File: "a.c", Line: 2},
			{Name: "test_a", File: "a.c", Line: 1},
			{Name: "test_b", File: "a.c", Line: 2},
		}
		groups := GroupByFile([]string{"a.c", "a.c"}, protos)
		assert.Len(t, groups, 2)
		assert.Len(t, groups[0].Prototypes, 2)
		assert.Len(t, groups[1].Prototypes, 2)
	})
}

func TestFormatter_PrintPrototypeList(t *testing.T) {
	disableColor(t)

	t.Run("flat", func(t *testing.T) {
		var buf bytes.Buffer
		NewFormatter(&buf).PrintPrototypeList([]string{"a.c", "b.c"}, sample, false)

		want := "Found 3 test(s):\n" +
			"a.c:1: test_foo\n" +
			"a.c:3: test_bar\n" +
			"b.c:1: test_baz\n"
		assert.Equal(t, want, buf.String())
	})

	t.Run("by file", func(t *testing.T) {
		var buf bytes.Buffer
		NewFormatter(&buf).PrintPrototypeList([]string{"a.c", "empty.c", "b.c"}, sample, true)

		want := "Found 3 test(s) in 3 file(s):\n" +
			"├── a.c\n" +
			"│   ├── test_foo (line 1)\n" +
			"│   └── test_bar (line 3)\n" +
			"├── empty.c\n" +
			"│   └── (no tests found)\n" +
			"└── b.c\n" +
			"    └── test_baz (line 1)\n"
		assert.Equal(t, want, buf.String())
	})
}

func TestPrintError(t *testing.T) {
	disableColor(t)

	var buf bytes.Buffer
	PrintError(&buf, errors.New("scan missing.c: no such file or directory"))
	assert.Equal(t, "Error: scan missing.c: no such file or directory\n", buf.String())
}
