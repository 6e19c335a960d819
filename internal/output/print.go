package output

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether stdout is attached to a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Success prints a success banner to stdout.
func Success(msg string) {
	Println(render(StyleSuccess, "✔ "+msg))
}

// Failure prints a fatal error message to stderr.
func Failure(msg string) {
	fmt.Fprintln(os.Stderr, render(StyleError, "✘ "+msg))
}

// Warning prints a warning to stdout. Used for post-generation step
// failures, which are reported but never fatal.
func Warning(msg string) {
	Println(render(StyleWarning, "! "+msg))
}

// Step prints a progress step to stdout.
func Step(msg string) {
	Println(render(StyleStep, "» "+msg))
}

// Hint prints secondary guidance to stdout.
func Hint(msg string) {
	Println(render(StyleDim, "  "+msg))
}

// Location prints a filesystem location to stdout.
func Location(path string) {
	Println("  Location: " + render(StyleLocation, path))
}

// Header prints an underlined section header to stdout.
func Header(title string) {
	Println("")
	Println(render(StyleHeader, title))
	Println("")
}

// KeyValue prints an indented key-value pair to stdout.
func KeyValue(key, value string) {
	Println(fmt.Sprintf("   %s: %s", render(StyleNoun, key), value))
}

// TemplateItem prints one listing line for a template.
func TemplateItem(key, name string) {
	Println(fmt.Sprintf("  %s - %s", render(StyleSuccess, key), render(StyleDim, name)))
}

// NextSteps prints the post-creation guidance block.
func NextSteps(steps []string) {
	if len(steps) == 0 {
		return
	}

	Println("")
	Println(render(StyleStep, "Next steps:"))
	for _, step := range steps {
		Println("  " + render(StyleDim, step))
	}
}
