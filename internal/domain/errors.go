package domain

import "errors"

var (
	// ErrUnknownCategory is returned when a category is not one of
	// impression, click, reaction or comment.
	ErrUnknownCategory = errors.New("unknown interaction category")

	// ErrUnknownSurface is returned when a surface is not in the allow-list.
	ErrUnknownSurface = errors.New("unknown surface")

	// ErrInvalidPosition is returned when a feed position is not a positive integer.
	ErrInvalidPosition = errors.New("position must be a positive integer")

	// ErrNotJourneyCategory is returned when journey attribution is requested
	// for a category other than reaction or comment.
	ErrNotJourneyCategory = errors.New("category cannot continue a journey")
)
