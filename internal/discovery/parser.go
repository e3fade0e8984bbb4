package discovery

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"utestgen/internal/domain"
)

// prototypePattern matches a zero-argument test declaration such as
//
//	void test_open_close()
//	  void   test_qux ( )
//
// It is searched, not anchored, so anything may precede it on the line.
var prototypePattern = regexp.MustCompile(ws + `*void` + ws + `+test_(\w+)` + ws + `*\(` + ws + `*\)`)

// ws is Unicode whitespace: RE2's \s leaves out \v, the \x1c-\x1f separators,
// NEL and the Z category (no-break and other wide spaces).
const ws = `[\s\v\x1c-\x1f\x85\p{Z}]`

const (
	initialLineBuffer = 64 * 1024
	maxLineSize       = 1 << 30
)

// Parser extracts test prototypes from source text
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// MatchLine reports whether line declares a test and returns its full name.
// Only the first declaration on a line is considered.
func (p *Parser) MatchLine(line string) (string, bool) {
	match := prototypePattern.FindStringSubmatch(line)
	if match == nil {
		return "", false
	}
	return "test_" + match[1], true
}

// FindPrototypes reads r line by line and returns every declared test in line order.
// file is only recorded on the returned prototypes.
func (p *Parser) FindPrototypes(r io.Reader, file string) ([]domain.Prototype, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, initialLineBuffer), maxLineSize)
	scanner.Split(scanLines)

	var prototypes []domain.Prototype
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		name, ok := p.MatchLine(line)
		if !ok {
			continue
		}
		prototypes = append(prototypes, domain.Prototype{
			Name:   name,
			File:   file,
			Line:   lineNo,
			Source: strings.TrimSpace(line),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read line %d: %w", lineNo+1, err)
	}

	return prototypes, nil
}

// scanLines is a bufio.SplitFunc that ends lines at "\n", "\r\n" or a lone "\r".
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		// "\r" needs one more byte to tell "\r\n" from a lone "\r"
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		return 0, nil, nil
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
