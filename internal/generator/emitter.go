package generator

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"text/template"

	"utestgen/internal/domain"
)

// ErrInvalidIdentifier is returned when the aggregator name is not a valid C identifier
var ErrInvalidIdentifier = errors.New("invalid identifier")

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// aggregatorTemplate renders the forward declarations, one blank line and the
// routine calling every test. Entries are emitted as given: no sorting, no dedup.
const aggregatorTemplate = `{{range .Prototypes}}void {{.Name}}();
{{end}}
void {{.Aggregator}}(){
{{range .Prototypes}}    {{.Name}}();
{{end}}}
`

type aggregatorData struct {
	Aggregator string
	Prototypes []domain.Prototype
}

// Emitter renders the aggregator source for a list of prototypes
type Emitter struct {
	aggregator string
	tmpl       *template.Template
}

// NewEmitter creates an Emitter whose aggregating routine is called aggregator
func NewEmitter(aggregator string) (*Emitter, error) {
	if !identifierPattern.MatchString(aggregator) {
		return nil, fmt.Errorf("aggregator %q: %w", aggregator, ErrInvalidIdentifier)
	}

	tmpl, err := template.New("aggregator").Parse(aggregatorTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}

	return &Emitter{aggregator: aggregator, tmpl: tmpl}, nil
}

// Aggregator returns the name of the generated routine
func (e *Emitter) Aggregator() string {
	return e.aggregator
}

// Render returns the complete generated source
func (e *Emitter) Render(prototypes []domain.Prototype) ([]byte, error) {
	var buf bytes.Buffer
	data := aggregatorData{Aggregator: e.aggregator, Prototypes: prototypes}
	if err := e.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render aggregator: %w", err)
	}
	return buf.Bytes(), nil
}

// Emit renders the generated source and writes it to w in a single write,
// so nothing is written when rendering fails.
func (e *Emitter) Emit(w io.Writer, prototypes []domain.Prototype) error {
	out, err := e.Render(prototypes)
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("write aggregator: %w", err)
	}
	return nil
}
