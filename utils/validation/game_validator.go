// Package validation decides whether a NewGame may be submitted to the
// catalog. It never touches the network and keeps no state between calls.
package validation

import (
	"context"
	"errors"
	"reflect"
	"slices"
	"sort"
	"strings"

	"gamelibrary/models"

	"github.com/go-playground/validator/v10"
)

// Violation messages, keyed by the JSON name of the offending field
const (
	MsgTitleLength       = "Title must be between 2 and 100 characters"
	MsgCategoryRequired  = "Category is required"
	MsgCategoryUnknown   = "Category must be one of the available categories"
	MsgReleaseYearRange  = "Release year must be between 1971 and 2024"
	MsgRatingRange       = "Rating must be between 0 and 10"
	msgInvalidFieldValue = "Invalid value"
)

type categoriesKey struct{}

var gameValidate *validator.Validate

func init() {
	gameValidate = validator.New()

	// Report fields by their wire name so errors line up with the request body
	gameValidate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = gameValidate.RegisterValidationCtx("known_category", validateKnownCategory)
}

// validateKnownCategory accepts any category when no category set was supplied
func validateKnownCategory(ctx context.Context, fl validator.FieldLevel) bool {
	categories, _ := ctx.Value(categoriesKey{}).([]string)
	if len(categories) == 0 {
		return true
	}
	return slices.Contains(categories, fl.Field().String())
}

// Violations maps a field name to the reason it was rejected. An empty set
// means the game can be submitted.
type Violations map[string]string

// Empty reports whether there is nothing to complain about
func (v Violations) Empty() bool {
	return len(v) == 0
}

// Fields returns the rejected field names in a stable order
func (v Violations) Fields() []string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

func (v Violations) Error() string {
	parts := make([]string, 0, len(v))
	for _, field := range v.Fields() {
		parts = append(parts, field+": "+v[field])
	}
	return "invalid game: " + strings.Join(parts, "; ")
}

// ValidateGame checks every field of the candidate and returns all
// violations at once. categories is the allowed category set; when it is
// empty only the non-empty check applies to the category.
func ValidateGame(candidate models.NewGame, categories []string) Violations {
	ctx := context.WithValue(context.Background(), categoriesKey{}, categories)

	violations := Violations{}
	err := gameValidate.StructCtx(ctx, candidate)
	if err == nil {
		return violations
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		violations["game"] = err.Error()
		return violations
	}
	for _, fe := range fieldErrs {
		violations[fe.Field()] = messageFor(fe)
	}
	return violations
}

func messageFor(fe validator.FieldError) string {
	switch fe.Field() {
	case "title":
		return MsgTitleLength
	case "category":
		if fe.Tag() == "required" {
			return MsgCategoryRequired
		}
		return MsgCategoryUnknown
	case "release_year":
		return MsgReleaseYearRange
	case "rating":
		return MsgRatingRange
	}
	return msgInvalidFieldValue
}
