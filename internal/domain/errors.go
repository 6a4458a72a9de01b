package domain

import "errors"

var (
	ErrNotFound             = errors.New("not found")
	ErrCreditExceeded       = errors.New("stake exceeds available credit")
	ErrFreePlayInsufficient = errors.New("insufficient free-play balance")
	ErrInvalidState         = errors.New("invalid state")
	ErrWeekNotCloseable     = errors.New("week is not closeable")
	ErrPromoHasAwards       = errors.New("promo has existing awards")
)
