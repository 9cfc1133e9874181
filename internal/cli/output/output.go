package output

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

var (
	ansiOnce      sync.Once
	ansiSupported bool
)

// ColorsEnabled returns true if terminal colors should be used.
// Respects NO_COLOR environment variable (https://no-color.org/)
func ColorsEnabled() bool {
	_, noColor := os.LookupEnv("NO_COLOR")
	if noColor {
		return false
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}
	ansiOnce.Do(func() { ansiSupported = initTerminal() })
	return ansiSupported
}

// ANSI color codes
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
)

// Symbols for CLI output (ASCII-compatible)
const (
	SymbolSuccess = "+"
	SymbolError   = "x"
	SymbolWarning = "!"
	SymbolArrow   = "->"
)

func style(codes string, text string) string {
	if !ColorsEnabled() {
		return text
	}
	return fmt.Sprintf("%s%s%s", codes, text, reset)
}

// Bold returns text in bold (or plain if colors disabled)
func Bold(text string) string {
	return style(bold, text)
}

// Dim returns text in dim style (or plain if colors disabled)
func Dim(text string) string {
	return style(dim, text)
}

// Success returns text styled for success messages
func Success(text string) string {
	return style(green, text)
}

// Error returns text styled for error messages
func Error(text string) string {
	return style(red, text)
}

// Warning returns text styled for warning messages
func Warning(text string) string {
	return style(yellow, text)
}

// PrintError prints an error message with X symbol to stderr
func PrintError(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", Error(SymbolError), Error(message))
}

// PrintWarning prints a warning message with ! symbol to stderr
func PrintWarning(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", Warning(SymbolWarning), Warning(message))
}

// PrintSuccess prints a success message with + symbol
func PrintSuccess(message string) {
	fmt.Printf("%s %s\n", Success(SymbolSuccess), Success(message))
}

// Plural returns the singular or plural form based on count
func Plural(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}
