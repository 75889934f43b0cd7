package seq

import "errors"

var (
	// ErrInvalidCharacter indicates a character outside the family alphabet.
	ErrInvalidCharacter = errors.New("seq: character not in alphabet")
)
