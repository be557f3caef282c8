package algebra

import "go.llib.dev/frameless/pkg/errorkit"

const (
	ErrNotInvertible    errorkit.Error = "ErrNotInvertible"
	ErrNegativeExponent errorkit.Error = "ErrNegativeExponent"
)
