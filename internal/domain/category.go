package domain

import "fmt"

// Category classifies an interaction. It is a closed set: every switch over
// Category in this package handles all four values explicitly.
type Category string

const (
	CategoryImpression Category = "impression"
	CategoryClick      Category = "click"
	CategoryReaction   Category = "reaction"
	CategoryComment    Category = "comment"
)

// Categories lists all valid interaction categories.
var Categories = []Category{CategoryImpression, CategoryClick, CategoryReaction, CategoryComment}

// ParseCategory converts a raw string into a Category.
func ParseCategory(s string) (Category, error) {
	switch c := Category(s); c {
	case CategoryImpression, CategoryClick, CategoryReaction, CategoryComment:
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// IsValid reports whether the category is a member of the closed set.
func (c Category) IsValid() bool {
	switch c {
	case CategoryImpression, CategoryClick, CategoryReaction, CategoryComment:
		return true
	}
	return false
}

// IsJourneyCategory reports whether the category may continue a journey.
// Only reactions and comments are attributed back to an earlier click.
func (c Category) IsJourneyCategory() bool {
	return c == CategoryReaction || c == CategoryComment
}

func (c Category) String() string {
	return string(c)
}

// Surface identifies where in the product the interaction occurred.
// Like Category it is a closed set.
type Surface string

const (
	SurfaceHome   Surface = "home"
	SurfaceSearch Surface = "search"
	SurfaceTag    Surface = "tag"
)

// Surfaces lists all valid surfaces.
var Surfaces = []Surface{SurfaceHome, SurfaceSearch, SurfaceTag}

// ParseSurface converts a raw string into a Surface.
func ParseSurface(s string) (Surface, error) {
	switch v := Surface(s); v {
	case SurfaceHome, SurfaceSearch, SurfaceTag:
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSurface, s)
}

// IsValid reports whether the surface is a member of the closed set.
func (s Surface) IsValid() bool {
	switch s {
	case SurfaceHome, SurfaceSearch, SurfaceTag:
		return true
	}
	return false
}

func (s Surface) String() string {
	return string(s)
}
