package discovery

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"utestgen/internal/domain"
)

func TestParser_MatchLine(t *testing.T) {
	parser := NewParser()

	tests := []struct {
		name     string
		line     string
		wantName string
		wantOK   bool
	}{
		{"definition with body", "void test_foo() { return; }", "test_foo", true},
		{"no space before brace", "void test_bar(){}", "test_bar", true},
		{"declaration only", "void test_baz();", "test_baz", true},
		{"extra internal whitespace", "  void   test_qux ( )", "test_qux", true},
		{"tabs", "\tvoid\ttest_tabbed\t(\t)", "test_tabbed", true},
		{"vertical tab and form feed", "\vvoid\vtest_vt\f(\v)", "test_vt", true},
		{"no-break space", "void\u00a0test_nbsp()", "test_nbsp", true},
		{"file separator and ideographic space", "void\x1ctest_sep\u3000()", "test_sep", true},
		{"invalid utf-8 before declaration", "\xff\xfe void test_after_binary()", "test_after_binary", true},
		{"invalid utf-8 in suffix", "void test_bin\xff()", "", false},
		{"digits and underscores", "void test_fs_2_pipe__close()", "test_fs_2_pipe__close", true},
		{"embedded in line", "/* void test_commented() */", "test_commented", true},
		{"first match only", "void test_one(); void test_two();", "test_one", true},
		{"missing whitespace after void", "voidtest_foo()", "", false},
		{"non-void return", "int test_foo()", "", false},
		{"helper function", "int helper() { return 0; }", "", false},
		{"empty suffix", "void test_()", "", false},
		{"arguments", "void test_foo(int x)", "", false},
		{"explicit void parameter", "void test_foo(void)", "", false},
		{"non identifier suffix", "void test_a-b()", "", false},
		{"non ascii suffix", "void test_Ünicode()", "", false},
		{"wrong prefix", "void tset_foo()", "", false},
		{"empty line", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, ok := parser.MatchLine(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestParser_FindPrototypes(t *testing.T) {
	parser := NewParser()

	t.Run("records line numbers and source", func(t *testing.T) {
		src := "void test_foo() { return; }\n" +
			"int helper() { return 0; }\n" +
			"void test_bar(){}\n"

		protos, err := parser.FindPrototypes(strings.NewReader(src), "a.c")
		require.NoError(t, err)

		assert.Equal(t, []domain.Prototype{
			{Name: "test_foo", File: "a.c", Line: 1, Source: "void test_foo() { return; }"},
			{Name: "test_bar", File: "a.c", Line: 3, Source: "void test_bar(){}"},
		}, protos)
	})

	t.Run("keeps duplicates", func(t *testing.T) {
		src := "void test_dup()\nvoid test_dup()\n"
		protos, err := parser.FindPrototypes(strings.NewReader(src), "dup.c")
		require.NoError(t, err)
		assert.Equal(t, []string{"test_dup", "test_dup"}, domain.Names(protos))
	})

	t.Run("no matches", func(t *testing.T) {
		protos, err := parser.FindPrototypes(strings.NewReader("int main() {}\n"), "main.c")
		require.NoError(t, err)
		assert.Empty(t, protos)
	})

	t.Run("empty input", func(t *testing.T) {
		protos, err := parser.FindPrototypes(strings.NewReader(""), "empty.c")
		require.NoError(t, err)
		assert.Empty(t, protos)
	})

	t.Run("windows and old mac line endings", func(t *testing.T) {
		src := "void test_a()\r\nint x;\rvoid test_b()\rvoid test_c()"
		protos, err := parser.FindPrototypes(strings.NewReader(src), "mixed.c")
		require.NoError(t, err)

		require.Len(t, protos, 3)
		assert.Equal(t, []string{"test_a", "test_b", "test_c"}, domain.Names(protos))
		assert.Equal(t, 1, protos[0].Line)
		assert.Equal(t, 3, protos[1].Line)
		assert.Equal(t, 4, protos[2].Line)
	})

	t.Run("invalid utf-8 is scanned as raw bytes", func(t *testing.T) {
		src := "\xff\xfe\x00garbage\n" +
			"void test_ok() /* \xc3\x28 */\n" +
			"void test_bad\xff()\n"
		protos, err := parser.FindPrototypes(strings.NewReader(src), "binary.c")
		require.NoError(t, err)
		require.Len(t, protos, 1)
		assert.Equal(t, "test_ok", protos[0].Name)
		assert.Equal(t, 2, protos[0].Line)
	})

	t.Run("lines longer than the default buffer", func(t *testing.T) {
		long := strings.Repeat("x", 200*1024) + " void test_long()"
		src := long + "\nvoid test_after()\n"
		protos, err := parser.FindPrototypes(strings.NewReader(src), "long.c")
		require.NoError(t, err)
		assert.Equal(t, []string{"test_long", "test_after"}, domain.Names(protos))
	})
}

func TestScanLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"lf", "a\nb\n", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"lone cr", "a\rb", []string{"a", "b"}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"blank lines", "\n\n", []string{"", ""}},
		{"trailing cr", "a\r", []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			data := []byte(tt.input)
			for len(data) > 0 {
				advance, token, err := scanLines(data, true)
				require.NoError(t, err)
				require.Positive(t, advance)
				got = append(got, string(token))
				data = data[advance:]
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
