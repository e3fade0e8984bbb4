package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"utestgen/internal/domain"
)

// Browser displays discovered prototypes in an interactive TUI
type Browser struct {
	out io.Writer
}

// NewBrowser creates a new Browser; out receives messages printed instead of the TUI
func NewBrowser(out io.Writer) *Browser {
	return &Browser{out: out}
}

// View opens the browser. It returns when the user quits.
func (b *Browser) View(prototypes []domain.Prototype, aggregator string) error {
	if len(prototypes) == 0 {
		color.New(color.FgYellow).Fprintln(b.out, "No tests found")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	for i, p := range prototypes {
		list.AddItem(listItemText(i, p), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	locationView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(locationView, 2, 0, false).
		AddItem(detailsView, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(headerText(len(prototypes), aggregator))

	updateDetails := func(index int) {
		if index < 0 || index >= len(prototypes) {
			return
		}
		p := prototypes[index]
		locationView.SetText(formatLocation(p))
		detailsView.SetText(formatDetails(p, index, prototypes, aggregator))
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC, tcell.KeyEsc:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, _ string, _ string, _ rune) {
		updateDetails(index)
	})
	updateDetails(0)

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func headerText(count int, aggregator string) string {
	return fmt.Sprintf(" %d test(s) called by [yellow]%s()[white] | ↑↓ navigate, → details, ← back, q to exit ", count, aggregator)
}

func listItemText(index int, p domain.Prototype) string {
	return fmt.Sprintf("[yellow]%d.[white] %s", index+1, p.Name)
}

func formatLocation(p domain.Prototype) string {
	return fmt.Sprintf("[cyan]path:[white] [yellow]%s[white]:[yellow]%d[white]\n", tview.Escape(p.File), p.Line)
}

// formatDetails formats a prototype for display using tview color tags
func formatDetails(p domain.Prototype, index int, all []domain.Prototype, aggregator string) string {
	var builder strings.Builder
	w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "[green]%s[white]\n\n", p.Name)
	fmt.Fprintf(w, "[yellow]Declared at:[white]\t%s:%d\n", tview.Escape(p.File), p.Line)
	fmt.Fprintf(w, "[yellow]Call order:[white]\t%d of %d in %s()\n", index+1, len(all), aggregator)

	occurrences := 0
	for _, other := range all {
		if other.Name == p.Name {
			occurrences++
		}
	}
	if occurrences > 1 {
		fmt.Fprintf(w, "[red]Duplicate:[white]\tdeclared and called %d times\n", occurrences)
	}

	fmt.Fprintf(w, "\n[yellow]Source:[white]\n  %s\n", tview.Escape(p.Source))

	w.Flush()
	return builder.String()
}
