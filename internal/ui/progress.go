package ui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar shows scan progress, one step per file
type ProgressBar struct {
	bar     *progressbar.ProgressBar
	scanned int
}

// NewProgressBar creates a new progress bar on stderr
func NewProgressBar(count int) *ProgressBar {
	return NewProgressBarWriter(count, os.Stderr)
}

// NewProgressBarWriter creates a new progress bar writing to w
func NewProgressBarWriter(count int, w io.Writer) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(color.CyanString("Scanning files: ")),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWriter(w),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar}
}

// Advance moves the bar one file forward
func (p *ProgressBar) Advance(path string) {
	p.scanned++
	p.bar.Describe(color.CyanString("Scanning files: ") + filepath.Base(path))
	p.bar.Add(1)
}

// Scanned returns the number of files reported so far
func (p *ProgressBar) Scanned() int {
	return p.scanned
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	p.bar.Finish()
}
