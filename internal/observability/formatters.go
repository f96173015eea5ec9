// Package observability provides formatted output utilities for verbose CLI
// mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/bhavesh-kalluru/Carrer-Agent/internal/resolve"
)

// boxWidth is the default width for formatted output boxes
const boxWidth = 72

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResolution outputs a human-readable summary of a resolution result.
func (p *Printer) PrintResolution(result *resolve.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder

	official := result.OfficialWebsite
	if official == "" {
		official = "(not found)"
	}
	careers := result.CareersURL
	if careers == "" {
		careers = "(not found)"
	}

	sb.WriteString(fmt.Sprintf("Official: %s\n", official))
	sb.WriteString(fmt.Sprintf("Careers:  %s", careers))

	p.printBox("Resolution", sb.String())
}

// PrintTrace outputs the diagnostic trace with keys in stable order.
func (p *Printer) PrintTrace(trace map[string]string) {
	if len(trace) == 0 {
		return
	}

	keys := make([]string, 0, len(trace))
	for key := range trace {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, key := range keys {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%s: %s", key, trace[key]))
	}

	p.printBox("Trace", sb.String())
}
