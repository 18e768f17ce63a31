// Package collector models the dice-menu collection game: a customer keeps
// ordering off an n-face die until every face has come up, with a fixed
// budget of free re-rolls whenever the die repeats a face already seen.
package collector

import (
	"errors"
	"fmt"
)

// Defaults for the d20 cocktail menu.
const (
	DefaultFaces   = 20
	DefaultRetries = 3
)

// ErrInvalidParam reports a non-positive game or batch parameter.
var ErrInvalidParam = errors.New("invalid parameter")

// Params describes one game configuration.
type Params struct {
	Faces   int `json:"faces"`   // distinct die faces to collect
	Retries int `json:"retries"` // re-roll budget per purchase, including the final forced roll
}

// DefaultParams returns the d20 menu with three rolls per purchase.
func DefaultParams() Params {
	return Params{Faces: DefaultFaces, Retries: DefaultRetries}
}

// Validate checks that the configuration defines a playable game.
func (p Params) Validate() error {
	if p.Faces <= 0 {
		return fmt.Errorf("%w: faces must be positive, got %d", ErrInvalidParam, p.Faces)
	}
	if p.Retries <= 0 {
		return fmt.Errorf("%w: retries must be positive, got %d", ErrInvalidParam, p.Retries)
	}
	return nil
}
