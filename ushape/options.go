package ushape

import (
	"fmt"
	"strings"
)

// Options is a bit set selecting the shaping operation. It combines one
// value of each of the groups length policy, text direction, letters,
// digits and digit type.
type Options uint32

// Length policy: what happens to cells freed by lam-alef composition, and
// where room for lam-alef expansion is taken from.
const (
	// LengthGrowShrink lets the output shrink or grow.
	LengthGrowShrink Options = 0
	// LengthFixedSpacesNear keeps the length, using a space next to each
	// lam-alef ligature.
	LengthFixedSpacesNear Options = 1
	// LengthFixedSpacesAtEnd keeps the length, collecting spaces at the end
	// of the buffer.
	LengthFixedSpacesAtEnd Options = 2
	// LengthFixedSpacesAtBeginning keeps the length, collecting spaces at
	// the beginning of the buffer.
	LengthFixedSpacesAtBeginning Options = 3

	LengthMask Options = 3
)

// Text direction of the buffer.
const (
	// TextDirectionLogical treats the buffer as logical order.
	TextDirectionLogical Options = 0
	// TextDirectionVisualLTR treats the buffer as visual order, displayed
	// left to right. Arabic text then runs from higher to lower indexes.
	TextDirectionVisualLTR Options = 4

	TextDirectionMask Options = 4
)

// Letter shaping.
const (
	LettersNOOP    Options = 0
	LettersShape   Options = 8
	LettersUnshape Options = 0x10
	// LettersShapeTashkeelIsolated shapes letters and additionally replaces
	// tashkeel marks by their isolated presentation forms.
	LettersShapeTashkeelIsolated Options = 0x18

	LettersMask Options = 0x18
)

// Digit shaping.
const (
	DigitsNOOP Options = 0
	// DigitsENToAN replaces European digits by Arabic-Indic digits.
	DigitsENToAN Options = 0x20
	// DigitsANToEN replaces Arabic-Indic digits by European digits.
	DigitsANToEN Options = 0x40

	DigitsMask Options = 0xe0
)

// Digit type, used with DigitsENToAN.
const (
	// DigitTypeAN selects the Arabic-Indic digits U+0660..U+0669.
	DigitTypeAN Options = 0
	// DigitTypeANExtended selects the extended Arabic-Indic digits
	// U+06F0..U+06F9.
	DigitTypeANExtended Options = 0x100

	DigitTypeMask Options = 0x100
)

const allOptions = LengthMask | TextDirectionMask | LettersMask | DigitsMask | DigitTypeMask

func (o Options) validate() error {
	if o&^allOptions != 0 {
		return fmt.Errorf("options %#x with unknown bits: %w", uint32(o), IllegalArgument)
	}
	if d := o & DigitsMask; d != DigitsNOOP && d != DigitsENToAN && d != DigitsANToEN {
		return fmt.Errorf("unsupported digit shaping %#x: %w", uint32(d), IllegalArgument)
	}
	return nil
}

func (o Options) visual() bool {
	return o&TextDirectionMask == TextDirectionVisualLTR
}

func (o Options) String() string {
	var parts []string
	switch o & LengthMask {
	case LengthGrowShrink:
		parts = append(parts, "grow-shrink")
	case LengthFixedSpacesNear:
		parts = append(parts, "spaces-near")
	case LengthFixedSpacesAtEnd:
		parts = append(parts, "spaces-at-end")
	case LengthFixedSpacesAtBeginning:
		parts = append(parts, "spaces-at-beginning")
	}
	if o.visual() {
		parts = append(parts, "visual-ltr")
	} else {
		parts = append(parts, "logical")
	}
	switch o & LettersMask {
	case LettersShape:
		parts = append(parts, "shape")
	case LettersUnshape:
		parts = append(parts, "unshape")
	case LettersShapeTashkeelIsolated:
		parts = append(parts, "shape-tashkeel-isolated")
	}
	switch o & DigitsMask {
	case DigitsENToAN:
		if o&DigitTypeMask == DigitTypeANExtended {
			parts = append(parts, "digits-en2an-extended")
		} else {
			parts = append(parts, "digits-en2an")
		}
	case DigitsANToEN:
		parts = append(parts, "digits-an2en")
	}
	return strings.Join(parts, "|")
}
