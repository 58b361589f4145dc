package session

import (
	"strconv"

	"golife/internal/core"
)

// Field identifies one of the two board size inputs.
type Field int

const (
	FieldWidth Field = iota
	FieldHeight
)

func (f Field) String() string {
	if f == FieldHeight {
		return "height"
	}
	return "width"
}

// DefaultMaxDimension bounds either side of a board entered in the menu.
const DefaultMaxDimension = 512

// SizeInput accumulates typed board dimensions before a session starts.
// Left selects width and right selects height; there is no wrap-around.
type SizeInput struct {
	digits    [2][]byte
	focus     Field
	maxValue  int
	maxDigits int
}

// NewSizeInput returns an empty input focused on the width field. Values are
// capped at maxDimension.
func NewSizeInput(maxDimension int) *SizeInput {
	if maxDimension <= 0 {
		maxDimension = DefaultMaxDimension
	}
	return &SizeInput{
		maxValue:  maxDimension,
		maxDigits: len(strconv.Itoa(maxDimension)),
	}
}

// Prefill replaces both fields with the given values. Non-positive values
// leave the field empty; values past the cap are clamped.
func (in *SizeInput) Prefill(w, h int) {
	in.digits[FieldWidth] = in.prefillDigits(w)
	in.digits[FieldHeight] = in.prefillDigits(h)
}

func (in *SizeInput) prefillDigits(v int) []byte {
	if v <= 0 {
		return nil
	}
	v = min(v, in.maxValue)
	return []byte(strconv.Itoa(v))
}

// Focus returns the field receiving digits.
func (in *SizeInput) Focus() Field { return in.focus }

// MaxDimension returns the largest value either field accepts.
func (in *SizeInput) MaxDimension() int { return in.maxValue }

// SetFocus moves the focus. It reports false when f is already focused.
func (in *SizeInput) SetFocus(f Field) bool {
	if f != FieldWidth && f != FieldHeight {
		return false
	}
	if in.focus == f {
		return false
	}
	in.focus = f
	return true
}

// AppendDigit types d into the focused field. Digits that would push the
// value past the cap are ignored.
func (in *SizeInput) AppendDigit(d int) bool {
	if d < 0 || d > 9 {
		return false
	}
	cur := in.digits[in.focus]
	if len(cur) >= in.maxDigits {
		return false
	}
	next := append(append([]byte(nil), cur...), byte('0'+d))
	if parseDigits(next) > in.maxValue {
		return false
	}
	in.digits[in.focus] = next
	return true
}

// DeleteDigit removes the last digit of the focused field.
func (in *SizeInput) DeleteDigit() bool {
	cur := in.digits[in.focus]
	if len(cur) == 0 {
		return false
	}
	in.digits[in.focus] = cur[:len(cur)-1]
	return true
}

// Digits returns the text typed into f.
func (in *SizeInput) Digits(f Field) string { return string(in.digits[f]) }

// Value returns the numeric value of f; an empty field is 0.
func (in *SizeInput) Value(f Field) int { return parseDigits(in.digits[f]) }

// Confirm returns the board size to allocate. Empty or zero fields are
// clamped to 1.
func (in *SizeInput) Confirm() core.Size {
	return core.Size{
		W: max(1, in.Value(FieldWidth)),
		H: max(1, in.Value(FieldHeight)),
	}
}

func parseDigits(digits []byte) int {
	v := 0
	for _, c := range digits {
		v = v*10 + int(c-'0')
	}
	return v
}
