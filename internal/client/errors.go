package client

import "errors"

var (
	errNoCommand      = errors.New("no command given")
	errUnknownCommand = errors.New("unknown command")
	errUsage          = errors.New("invalid arguments")
	errNothingToCopy  = errors.New("nothing to copy")
)
