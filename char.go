package filtermodel

import "unicode"

// Char is the value type of single-character columns. Unlike rune, it
// folds case when a condition is case-insensitive.
type Char rune

func (c Char) ToLower() Char {
	return Char(unicode.ToLower(rune(c)))
}

func (c Char) String() string {
	return string(c)
}
