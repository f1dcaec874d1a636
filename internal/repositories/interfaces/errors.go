package interfaces

import "errors"

// ErrConditionNotMet is returned by guarded updates whose filter matched no
// document. Callers re-read to find out why.
var ErrConditionNotMet = errors.New("update condition not met")
