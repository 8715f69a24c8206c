// SPDX-License-Identifier: MIT
package tokens

import (
	"errors"
	"fmt"
)

// Sentinels matched with errors.Is.
var (
	ErrInvalidStyle = errors.New("invalid style")
	ErrInvalidColor = errors.New("invalid color")
)

// InvalidStyleError reports a style outside the supported set.
type InvalidStyleError struct {
	Style string
}

func (e *InvalidStyleError) Error() string {
	return fmt.Sprintf("invalid style %q: must be one of %s", e.Style, styleList())
}

func (e *InvalidStyleError) Unwrap() error {
	return ErrInvalidStyle
}

// InvalidColorError reports an unparseable seed color, or a palette whose
// text colors could not reach the minimum contrast.
type InvalidColorError struct {
	Value  string
	Reason string
}

func (e *InvalidColorError) Error() string {
	if e.Value == "" {
		return "invalid color: " + e.Reason
	}
	return fmt.Sprintf("invalid color %q: %s", e.Value, e.Reason)
}

func (e *InvalidColorError) Unwrap() error {
	return ErrInvalidColor
}
