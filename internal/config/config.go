// Package config collects the flags every cmd/ front end parses into a
// single Options value, instead of threading loose booleans/strings
// through each tool's entry point.
package config

// OutMode selects the Jack compiler's output shape.
type OutMode string

const (
	OutVM  OutMode = "vm"
	OutXML OutMode = "xml"
)

// Options is built once per invocation from parsed CLI flags.
type Options struct {
	Input   string
	Output  string
	Debug   bool
	OutMode OutMode
}
