package clio

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Leprechaun817/clio/argstream"
)

// Parse parses a list of raw command line arguments, excluding the
// program name; os.Args[1:] is the usual input. It returns nil on
// success, ErrHelp or ErrVersion after printing the requested text, and
// a descriptive error wrapping one of the Err sentinels for invalid
// input.
func (p *Parser) Parse(args []string) error {
	return p.ParseStream(argstream.New(args))
}

// ParseStream parses arguments from an explicit stream. A registered
// command hands the same stream to its own parser, so the command's
// parser consumes everything that follows the command name.
func (p *Parser) ParseStream(stream *argstream.Stream) error {
	// Flipped off by a '--' argument. Everything after that reads as a
	// positional argument.
	parsing := true

	for stream.HasNext() {
		arg := stream.Next()

		if !parsing {
			p.arguments = append(p.arguments, arg)
			continue
		}

		if arg == "--" {
			parsing = false
			continue
		}

		if strings.HasPrefix(arg, "--") {
			if err := p.parseLongOption(arg[2:], stream); err != nil {
				return err
			}
			continue
		}

		if strings.HasPrefix(arg, "-") {
			// A dash on its own or a dash followed by a digit reads as
			// a positional argument, not an option.
			if arg == "-" || isDigit(arg[1]) {
				p.arguments = append(p.arguments, arg)
			} else if err := p.parseShortOption(arg[1:], stream); err != nil {
				return err
			}
			continue
		}

		if _, ok := p.commands[arg]; ok {
			if err := p.parseCommand(arg, stream); err != nil {
				return err
			}
			continue
		}

		if arg == "help" {
			return p.parseHelpCommand(stream)
		}

		p.arguments = append(p.arguments, arg)
	}
	return nil
}

// ParseOrExit parses like Parse but applies the classic command line
// exit policy: a parse failure prints "Error: <message>." to standard
// error and exits with status 1, a help or version request exits with
// status 0 after printing.
func (p *Parser) ParseOrExit(args []string) {
	err := p.Parse(args)
	switch {
	case err == nil:
	case errors.Is(err, ErrHelp) || errors.Is(err, ErrVersion):
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Error: %s.\n", err)
		os.Exit(1)
	}
}

// parseLongOption parses an option beginning with a double dash, given
// the dashes already stripped.
func (p *Parser) parseLongOption(arg string, stream *argstream.Stream) error {
	if strings.Contains(arg, "=") {
		return p.parseEqualsOption("--", arg)
	}

	if opt, ok := p.options[arg]; ok {
		opt.found = true
		if opt.kind == kindFlag {
			opt.setFlag(true)
			return nil
		}
		hasValue, err := opt.setFromStream(stream)
		if err != nil {
			return err
		}
		if !hasValue {
			return fmt.Errorf("%w for the --%s option", ErrMissingArgument, arg)
		}
		return nil
	}

	if arg == "help" && p.helptext != "" {
		fmt.Fprintln(p.Output(), p.helptext)
		return ErrHelp
	}
	if arg == "version" && p.version != "" {
		fmt.Fprintln(p.Output(), p.version)
		return ErrVersion
	}

	return fmt.Errorf("--%s %w", arg, ErrNotRecognisedOption)
}

// parseShortOption parses an option beginning with a single dash, given
// the dash already stripped. Characters are handled individually to
// support condensed options: "-abc foo bar" is equivalent to
// "-a foo -b bar -c", with each valued option taking its values from
// the stream.
func (p *Parser) parseShortOption(arg string, stream *argstream.Stream) error {
	if strings.Contains(arg, "=") {
		return p.parseEqualsOption("-", arg)
	}

	for _, char := range arg {
		opt, ok := p.options[string(char)]
		if !ok {
			return fmt.Errorf("-%c %w", char, ErrNotRecognisedOption)
		}
		opt.found = true
		if opt.kind == kindFlag {
			opt.setFlag(true)
			continue
		}
		hasValue, err := opt.setFromStream(stream)
		if err != nil {
			return err
		}
		if !hasValue {
			return fmt.Errorf("%w for the -%c option", ErrMissingArgument, char)
		}
	}
	return nil
}

// parseEqualsOption parses an option of the form --name=value or
// -n=value. The prefix carries the leading dashes for error messages.
// The name is everything up to the first equals sign, so condensed
// short options cannot take the equals form.
func (p *Parser) parseEqualsOption(prefix string, arg string) error {
	name, value, _ := strings.Cut(arg, "=")

	opt, ok := p.options[name]
	if !ok {
		return fmt.Errorf("%s%s %w", prefix, name, ErrNotRecognisedOption)
	}
	opt.found = true

	if opt.kind == kindFlag {
		return fmt.Errorf("%w %s%s", ErrInvalidFlagFormat, prefix, name)
	}
	if value == "" {
		return fmt.Errorf("%w for the %s%s option", ErrMissingArgument, prefix, name)
	}
	return opt.setValue(value)
}

// parseCommand recurses into the parser registered for the command,
// then runs the command's callback.
func (p *Parser) parseCommand(name string, stream *argstream.Stream) error {
	cmdParser := p.commands[name]
	p.cmdName = name
	p.cmdParser = cmdParser
	if err := cmdParser.ParseStream(stream); err != nil {
		return err
	}
	p.callbacks[name](cmdParser)
	return nil
}

// parseHelpCommand prints the help text of the command named by the
// next argument in the stream.
func (p *Parser) parseHelpCommand(stream *argstream.Stream) error {
	if !stream.HasNext() {
		return ErrMissingHelpArgument
	}
	name := stream.Next()
	cmdParser, ok := p.commands[name]
	if !ok {
		return fmt.Errorf("'%s' %w", name, ErrNotRecognisedCommand)
	}
	fmt.Fprintln(p.Output(), cmdParser.helptext)
	return ErrHelp
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
