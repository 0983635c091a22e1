package tables

import "errors"

var (
	ErrUnknownGrade         = errors.New("unknown grade")
	ErrUnknownSoilType      = errors.New("unknown soil type")
	ErrUnknownExposureClass = errors.New("unknown exposure class")
	ErrUnknownMaterial      = errors.New("unknown material")
)
