package model

import "fmt"

// Bias selects which cell of a short row is widened
type Bias int

const (
	// BiasRight widens the last cell of a short row.
	BiasRight Bias = iota
	// BiasLeft widens the first cell of a short row.
	BiasLeft
)

func (b Bias) String() string {
	switch b {
	case BiasRight:
		return "right"
	case BiasLeft:
		return "left"
	default:
		return fmt.Sprintf("Bias(%d)", int(b))
	}
}

// Valid reports whether b is one of the defined biases.
func (b Bias) Valid() bool {
	return b == BiasRight || b == BiasLeft
}

// ParseBias converts an option value to a Bias.
func ParseBias(s string) (Bias, error) {
	switch s {
	case "right":
		return BiasRight, nil
	case "left":
		return BiasLeft, nil
	default:
		return BiasRight, &InvalidBiasError{Value: s}
	}
}

// InvalidBiasError is returned for a bias other than "left" or "right".
type InvalidBiasError struct {
	Value string
}

func (e *InvalidBiasError) Error() string {
	return fmt.Sprintf("unable to recognise bias %q; expecting \"left\" or \"right\"", e.Value)
}
