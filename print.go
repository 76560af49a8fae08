package clio

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// String assembles a dump of the parser's state, useful when debugging
// a command line interface. Options are listed in alphabetical order,
// one line per registered name, so aliases repeat their shared values.
// The dump carries no trailing newline.
func (p *Parser) String() string {
	lines := make([]string, 0, 10)

	lines = append(lines, "Options:")
	if len(p.options) > 0 {
		names := make([]string, 0, len(p.options))
		for name := range p.options {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			lines = append(lines, fmt.Sprintf("  %s: %s", name, p.options[name]))
		}
	} else {
		lines = append(lines, "  [none]")
	}

	lines = append(lines, "\nArguments:")
	if len(p.arguments) > 0 {
		for _, arg := range p.arguments {
			lines = append(lines, "  "+arg)
		}
	} else {
		lines = append(lines, "  [none]")
	}

	lines = append(lines, "\nCommand:")
	if p.HasCmd() {
		lines = append(lines, "  "+p.cmdName)
	} else {
		lines = append(lines, "  [none]")
	}

	return strings.Join(lines, "\n")
}

// String formats the option's values as a bracketed list.
func (o *option) String() string {
	var parts []string
	switch o.kind {
	case kindFlag:
		for _, value := range o.bools {
			parts = append(parts, strconv.FormatBool(value))
		}
	case kindString:
		parts = o.strs
	case kindInt:
		for _, value := range o.ints {
			parts = append(parts, strconv.Itoa(value))
		}
	case kindFloat:
		for _, value := range o.floats {
			parts = append(parts, strconv.FormatFloat(value, 'g', -1, 64))
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
