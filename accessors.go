package clio

import "fmt"

// lookup returns the option registered under name. Asking for an
// unregistered option is an API misuse and panics rather than erroring.
func (p *Parser) lookup(name string) *option {
	opt, ok := p.options[name]
	if !ok {
		panic(fmt.Sprintf("clio: '%s' is not a registered option", name))
	}
	return opt
}

// Found reports whether the named option was found while parsing.
func (p *Parser) Found(name string) bool {
	return p.lookup(name).found
}

// GetFlag returns the value of the named boolean flag.
func (p *Parser) GetFlag(name string) bool {
	return p.lookup(name).bools[0]
}

// GetStr returns the value of the named string option.
func (p *Parser) GetStr(name string) string {
	return p.lookup(name).strs[0]
}

// GetInt returns the value of the named integer option.
func (p *Parser) GetInt(name string) int {
	return p.lookup(name).ints[0]
}

// GetFloat returns the value of the named float option.
func (p *Parser) GetFloat(name string) float64 {
	return p.lookup(name).floats[0]
}

// SetFlag sets the value of the named boolean flag, replacing the value
// of a mono-valued option and appending to a list.
func (p *Parser) SetFlag(name string, value bool) {
	p.lookup(name).setFlag(value)
}

// SetStr sets the value of the named string option.
func (p *Parser) SetStr(name string, value string) {
	p.lookup(name).setStr(value)
}

// SetInt sets the value of the named integer option.
func (p *Parser) SetInt(name string, value int) {
	p.lookup(name).setInt(value)
}

// SetFloat sets the value of the named float option.
func (p *Parser) SetFloat(name string, value float64) {
	p.lookup(name).setFloat(value)
}

// LenList returns the number of values stored by the named list option.
func (p *Parser) LenList(name string) int {
	return p.lookup(name).lenValues()
}

// GetFlagList returns the values stored by the named flag list, one
// true per appearance.
func (p *Parser) GetFlagList(name string) []bool {
	return p.lookup(name).bools
}

// GetStrList returns the values stored by the named string list option.
func (p *Parser) GetStrList(name string) []string {
	return p.lookup(name).strs
}

// GetIntList returns the values stored by the named integer list
// option.
func (p *Parser) GetIntList(name string) []int {
	return p.lookup(name).ints
}

// GetFloatList returns the values stored by the named float list
// option.
func (p *Parser) GetFloatList(name string) []float64 {
	return p.lookup(name).floats
}

// ClearList clears the named list option's values.
func (p *Parser) ClearList(name string) {
	p.lookup(name).clearValues()
}

// HasArgs reports whether the parser found one or more positional
// arguments.
func (p *Parser) HasArgs() bool {
	return len(p.arguments) > 0
}

// LenArgs returns the number of positional arguments.
func (p *Parser) LenArgs() int {
	return len(p.arguments)
}

// GetArg returns the positional argument at the given index.
func (p *Parser) GetArg(index int) string {
	if index < 0 || index >= len(p.arguments) {
		panic(fmt.Sprintf("clio: argument index [%d] is out of bounds", index))
	}
	return p.arguments[index]
}

// GetArgs returns the parser's positional arguments.
func (p *Parser) GetArgs() []string {
	return p.arguments
}

// GetArgsAsInts returns the positional arguments as integers. It fails
// with an ErrCannotParse error on the first argument that does not
// parse.
func (p *Parser) GetArgsAsInts() ([]int, error) {
	values := make([]int, 0, len(p.arguments))
	for _, arg := range p.arguments {
		value, err := parseInt(arg)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

// GetArgsAsFloats returns the positional arguments as floats. It fails
// with an ErrCannotParse error on the first argument that does not
// parse.
func (p *Parser) GetArgsAsFloats() ([]float64, error) {
	values := make([]float64, 0, len(p.arguments))
	for _, arg := range p.arguments {
		value, err := parseFloat(arg)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

// AppendArg appends a string to the parser's positional arguments.
func (p *Parser) AppendArg(arg string) {
	p.arguments = append(p.arguments, arg)
}

// ClearArgs clears the parser's positional arguments.
func (p *Parser) ClearArgs() {
	p.arguments = nil
}

// HasCmd reports whether the parser found a registered command while
// parsing.
func (p *Parser) HasCmd() bool {
	return p.cmdName != ""
}

// GetCmdName returns the name of the command found while parsing, or an
// empty string.
func (p *Parser) GetCmdName() string {
	return p.cmdName
}

// GetCmdParser returns the parser of the command found while parsing,
// or nil.
func (p *Parser) GetCmdParser() *Parser {
	return p.cmdParser
}

// HasParent reports whether this is a command's parser, registered on a
// parent parser.
func (p *Parser) HasParent() bool {
	return p.parent != nil
}

// GetParent returns the parser a command's parser was registered on, or
// nil for a root parser.
func (p *Parser) GetParent() *Parser {
	return p.parent
}
