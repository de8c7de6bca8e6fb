package cli

import "errors"

var (
	ErrNoCommand      = errors.New("cli: command required")
	ErrUnknownCommand = errors.New("cli: unknown command")
	ErrNoApp          = errors.New("cli: no site application")
	ErrUnexpectedArgs = errors.New("cli: unexpected arguments")
)
