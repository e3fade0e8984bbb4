package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"utestgen/internal/domain"
)

// Formatter formats discovered prototypes for the terminal
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter writing to out
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{out: out}
}

// FileGroup is one scanned file together with the prototypes found in it
type FileGroup struct {
	File       string
	Prototypes []domain.Prototype
}

// GroupByFile splits prototypes into one group per entry of files, keeping
// files without tests. A file listed twice gets two groups: a new occurrence
// is detected when line numbers stop increasing.
func GroupByFile(files []string, prototypes []domain.Prototype) []FileGroup {
	groups := make([]FileGroup, 0, len(files))
	cursor := 0
	for _, file := range files {
		group := FileGroup{File: file}
		prevLine := 0
		for cursor < len(prototypes) {
			p := prototypes[cursor]
			if p.File != file || p.Line <= prevLine {
				break
			}
			group.Prototypes = append(group.Prototypes, p)
			prevLine = p.Line
			cursor++
		}
		groups = append(groups, group)
	}
	return groups
}

// PrintPrototypeList prints the prototypes as "file:line: name" lines, or as a
// tree grouped by file when byFile is set.
func (f *Formatter) PrintPrototypeList(files []string, prototypes []domain.Prototype, byFile bool) {
	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed)

	if !byFile {
		green.Fprintf(f.out, "Found %d test(s):\n", len(prototypes))
		for _, p := range prototypes {
			fmt.Fprintf(f.out, "%s %s\n", cyan.Sprintf("%s:%d:", p.File, p.Line), yellow.Sprint(p.Name))
		}
		return
	}

	groups := GroupByFile(files, prototypes)
	green.Fprintf(f.out, "Found %d test(s) in %d file(s):\n", len(prototypes), len(groups))

	for i, group := range groups {
		isLastFile := i == len(groups)-1
		if isLastFile {
			cyan.Fprintf(f.out, "└── %s\n", group.File)
		} else {
			cyan.Fprintf(f.out, "├── %s\n", group.File)
		}

		indent := "│   "
		if isLastFile {
			indent = "    "
		}

		if len(group.Prototypes) == 0 {
			fmt.Fprintf(f.out, "%s└── %s\n", indent, red.Sprint("(no tests found)"))
			continue
		}

		for j, p := range group.Prototypes {
			branch := "├── "
			if j == len(group.Prototypes)-1 {
				branch = "└── "
			}
			fmt.Fprintf(f.out, "%s%s%s (line %d)\n", indent, branch, yellow.Sprint(p.Name), p.Line)
		}
	}
}

// PrintError prints a fatal error the way the command line reports it
func PrintError(w io.Writer, err error) {
	color.New(color.FgRed).Fprintf(w, "Error: %v\n", err)
}
