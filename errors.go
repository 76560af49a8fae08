package clio

import "errors"

// Invalid input on the command line surfaces as an error returned by
// Parse wrapping one of the sentinels below, with the full error message
// describing the offending argument. Invalid API calls panic instead.
var (
	// ErrHelp is returned after the parser has printed its help text in
	// response to --help or to the automatic help command.
	ErrHelp = errors.New("help requested")

	// ErrVersion is returned after the parser has printed its version
	// string in response to --version.
	ErrVersion = errors.New("version requested")

	// ErrNotRecognisedOption marks an option name with no registered
	// entry.
	ErrNotRecognisedOption = errors.New("is not a recognised option")

	// ErrMissingArgument marks a valued option with no following value
	// argument.
	ErrMissingArgument = errors.New("missing argument")

	// ErrCannotParse marks a value argument that does not parse as the
	// option's registered type.
	ErrCannotParse = errors.New("cannot parse")

	// ErrInvalidFlagFormat marks a value assigned to a boolean flag
	// using the --flag=value form.
	ErrInvalidFlagFormat = errors.New("invalid format for boolean flag")

	// ErrNotRecognisedCommand marks an unregistered command named as the
	// argument of the help command.
	ErrNotRecognisedCommand = errors.New("is not a recognised command")

	// ErrMissingHelpArgument is returned when the help command appears
	// with no command name after it.
	ErrMissingHelpArgument = errors.New("the help command requires an argument")
)
