package clio

import (
	"fmt"
	"strconv"

	"github.com/Leprechaun817/clio/argstream"
)

// optionKind identifies the value type an option was registered with.
type optionKind int

const (
	kindFlag optionKind = iota
	kindString
	kindInt
	kindFloat
)

// option stores the state of a registered option. One instance can be
// registered under several aliases which then share values and found
// state. A mono-valued option holds a single value that assignment
// replaces, a poly-valued option assembles a list of values, a greedy
// list keeps consuming consecutive value arguments. Only the slice
// matching the option's kind is ever used.
type option struct {
	kind   optionKind
	mono   bool
	greedy bool
	found  bool

	bools  []bool
	strs   []string
	ints   []int
	floats []float64
}

func (o *option) setFlag(value bool) {
	if o.mono {
		o.bools[0] = value
	} else {
		o.bools = append(o.bools, value)
	}
}

func (o *option) setStr(value string) {
	if o.mono {
		o.strs[0] = value
	} else {
		o.strs = append(o.strs, value)
	}
}

func (o *option) setInt(value int) {
	if o.mono {
		o.ints[0] = value
	} else {
		o.ints = append(o.ints, value)
	}
}

func (o *option) setFloat(value float64) {
	if o.mono {
		o.floats[0] = value
	} else {
		o.floats = append(o.floats, value)
	}
}

// setValue converts arg to the option's value type and stores it.
// Flags take no value and never pass through here.
func (o *option) setValue(arg string) error {
	switch o.kind {
	case kindString:
		o.setStr(arg)
	case kindInt:
		value, err := parseInt(arg)
		if err != nil {
			return err
		}
		o.setInt(value)
	case kindFloat:
		value, err := parseFloat(arg)
		if err != nil {
			return err
		}
		o.setFloat(value)
	default:
		panic("clio: a flag option takes no value")
	}
	return nil
}

// setFromStream reads one required value argument for the option, then
// keeps reading while the option is a greedy list and value arguments
// remain. It reports false if the stream had no value to begin with.
func (o *option) setFromStream(stream *argstream.Stream) (bool, error) {
	if !stream.HasNextValue() {
		return false, nil
	}
	if err := o.setValue(stream.Next()); err != nil {
		return false, err
	}
	if o.greedy {
		for stream.HasNextValue() {
			if err := o.setValue(stream.Next()); err != nil {
				return false, err
			}
		}
	}
	return true, nil
}

func (o *option) lenValues() int {
	switch o.kind {
	case kindFlag:
		return len(o.bools)
	case kindString:
		return len(o.strs)
	case kindInt:
		return len(o.ints)
	default:
		return len(o.floats)
	}
}

func (o *option) clearValues() {
	o.bools = nil
	o.strs = nil
	o.ints = nil
	o.floats = nil
}

// parseInt parses arg in base 0, so "0x" and "0o" prefixed literals
// work alongside plain decimals.
func parseInt(arg string) (int, error) {
	value, err := strconv.ParseInt(arg, 0, strconv.IntSize)
	if err != nil {
		return 0, fmt.Errorf("%w '%s' as an integer", ErrCannotParse, arg)
	}
	return int(value), nil
}

func parseFloat(arg string) (float64, error) {
	value, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("%w '%s' as a float", ErrCannotParse, arg)
	}
	return value, nil
}
