package windows

import (
	"errors"
	"fmt"
)

// Kind identifies one of the application windows.
type Kind string

const (
	Main     Kind = "main"
	Add      Kind = "add"
	Settings Kind = "settings"
	Notepad  Kind = "notepad"
)

var ErrUnknownKind = errors.New("unknown window")

func ParseKind(name string) (Kind, error) {
	switch k := Kind(name); k {
	case Main, Add, Settings, Notepad:
		return k, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownKind, name)
	}
}

func (k Kind) String() string {
	return string(k)
}
