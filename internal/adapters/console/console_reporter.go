package console

import (
	"fmt"
	"io"
	"os"

	"abifix/internal/cli/output"
	"abifix/internal/ports"
)

// Compile-time interface compliance check
var _ ports.Reporter = (*ConsoleReporter)(nil)

// ConsoleReporter prints rewrite progress as human-readable lines.
type ConsoleReporter struct {
	writer io.Writer
}

// ProvideConsoleReporter creates a reporter that writes to stdout.
func ProvideConsoleReporter() *ConsoleReporter {
	return NewConsoleReporter(os.Stdout)
}

func NewConsoleReporter(writer io.Writer) *ConsoleReporter {
	return &ConsoleReporter{writer: writer}
}

func (r *ConsoleReporter) DirectoryNotFound(abiDir string) {
	fmt.Fprintf(r.writer, "%s Skipping %s - directory not found\n", output.Warning(output.SymbolWarning), abiDir)
}

func (r *ConsoleReporter) FileNotFound(path string) {
	fmt.Fprintf(r.writer, "%s Skipping %s - file not found\n", output.Warning(output.SymbolWarning), path)
}

func (r *ConsoleReporter) Processing(path string) {
	fmt.Fprintf(r.writer, "  %s %s\n", output.SymbolArrow, output.Dim("Processing "+path))
}

func (r *ConsoleReporter) Fixed(path string) {
	fmt.Fprintf(r.writer, "%s Fixed %s\n", output.Success(output.SymbolSuccess), path)
}

func (r *ConsoleReporter) Done() {
	fmt.Fprintln(r.writer, output.Bold("Done!"))
}
