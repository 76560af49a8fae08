// Package clio implements an argument parser for building command line
// interfaces with long and short form options, option lists, and nested
// commands.
package clio

import (
	"io"
	"os"
	"strings"
)

// Callback is invoked when its registered command is found on the
// command line. It receives the command's own parser with the command's
// options and arguments already parsed.
type Callback func(cmdParser *Parser)

// Parser registers options and commands and parses a raw argument list
// against them. Every registered command recursively receives a Parser
// instance of its own, so commands nest to any depth.
//
// A Parser is not safe for concurrent use and parses one argument list
// over its lifetime.
type Parser struct {
	helptext string
	version  string

	// entries are shared between aliases of the same option
	options map[string]*option

	commands  map[string]*Parser
	callbacks map[string]Callback

	// positional arguments parsed from the input stream
	arguments []string

	// the command found while parsing, if any
	cmdName   string
	cmdParser *Parser

	parent *Parser
	output io.Writer
}

// NewParser creates a new Parser instance. A non-empty helptext string
// activates the automatic --help flag, a non-empty version string the
// automatic --version flag. Both strings are trimmed of surrounding
// whitespace.
func NewParser(helptext string, version string) *Parser {
	return &Parser{
		helptext:  strings.TrimSpace(helptext),
		version:   strings.TrimSpace(version),
		options:   make(map[string]*option),
		commands:  make(map[string]*Parser),
		callbacks: make(map[string]Callback),
	}
}

// SetOutput sets the destination for help and version text, os.Stdout
// by default. A command's parser falls back to its parent's destination
// unless given one of its own.
func (p *Parser) SetOutput(w io.Writer) {
	p.output = w
}

// Output returns the destination for help and version text.
func (p *Parser) Output() io.Writer {
	if p.output != nil {
		return p.output
	}
	if p.parent != nil {
		return p.parent.Output()
	}
	return os.Stdout
}

// Helptext returns the parser's help text as registered, trimmed.
func (p *Parser) Helptext() string {
	return p.helptext
}

// Version returns the parser's version string as registered, trimmed.
func (p *Parser) Version() string {
	return p.version
}

// register stores opt under each space-separated alias in name.
func (p *Parser) register(name string, opt *option) {
	for _, alias := range strings.Fields(name) {
		p.options[alias] = opt
	}
}

// AddFlag registers a flag, a boolean option that defaults to false and
// stores true when found. The name parameter accepts any number of
// space-separated aliases, mixing long and short forms freely.
func (p *Parser) AddFlag(name string) {
	p.register(name, &option{kind: kindFlag, mono: true, bools: []bool{false}})
}

// AddStr registers a string option and its default value.
func (p *Parser) AddStr(name string, value string) {
	p.register(name, &option{kind: kindString, mono: true, strs: []string{value}})
}

// AddInt registers an integer option and its default value.
func (p *Parser) AddInt(name string, value int) {
	p.register(name, &option{kind: kindInt, mono: true, ints: []int{value}})
}

// AddFloat registers a float option and its default value.
func (p *Parser) AddFloat(name string, value float64) {
	p.register(name, &option{kind: kindFloat, mono: true, floats: []float64{value}})
}

// AddFlagList registers a flag list, a boolean option that stores one
// true for each appearance on the command line.
func (p *Parser) AddFlagList(name string) {
	p.register(name, &option{kind: kindFlag})
}

// AddStrList registers an option that assembles a list of string values.
// A greedy list keeps parsing consecutive arguments as values until it
// reaches an option or the end of the input.
func (p *Parser) AddStrList(name string, greedy bool) {
	p.register(name, &option{kind: kindString, greedy: greedy})
}

// AddIntList registers an option that assembles a list of integer
// values.
func (p *Parser) AddIntList(name string, greedy bool) {
	p.register(name, &option{kind: kindInt, greedy: greedy})
}

// AddFloatList registers an option that assembles a list of float
// values.
func (p *Parser) AddFloatList(name string, greedy bool) {
	p.register(name, &option{kind: kindFloat, greedy: greedy})
}

// AddCmd registers a command, its help text, and the callback to run
// after the command's own options and arguments have been parsed. It
// returns the command's parser instance so options and further commands
// can be registered on it. The name parameter accepts space-separated
// aliases.
func (p *Parser) AddCmd(name string, helptext string, cb Callback) *Parser {
	parser := NewParser(helptext, "")
	parser.parent = p
	for _, alias := range strings.Fields(name) {
		p.commands[alias] = parser
		p.callbacks[alias] = cb
	}
	return parser
}
