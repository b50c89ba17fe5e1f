package command

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jbeshir/feed-ranking/internal/domain"
)

// Validated rejects requests that fail their struct validation tags before
// the wrapped command runs, so invalid input never reaches a repository.
type Validated[Req, Res any] struct {
	Next     Command[Req, Res]
	validate *validator.Validate
}

func NewValidated[Req, Res any](next Command[Req, Res]) *Validated[Req, Res] {
	return &Validated[Req, Res]{
		Next:     next,
		validate: newValidator(),
	}
}

func (c *Validated[Req, Res]) Execute(ctx context.Context, req Req) (Res, error) {
	if err := c.validate.StructCtx(ctx, req); err != nil {
		var zero Res
		return zero, toInvalidInput(err)
	}
	return c.Next.Execute(ctx, req)
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterAlias("page", fmt.Sprintf("min=%d", domain.MinPage))
	v.RegisterAlias("page_size", fmt.Sprintf("min=%d,max=%d", domain.MinPageSize, domain.MaxPageSize))
	v.RegisterAlias("limit", fmt.Sprintf("min=%d,max=%d", domain.MinRecommendationLimit, domain.MaxRecommendationLimit))
	v.RegisterAlias("trending_window", oneOf(domain.ValidTrendingWindows))
	v.RegisterAlias("category", oneOf(domain.ValidCategories))
	return v
}

func oneOf[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, value := range values {
		parts[i] = string(value)
	}
	return "oneof=" + strings.Join(parts, " ")
}

// toInvalidInput reports the first failing field.
func toInvalidInput(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return domain.InvalidInputError{Field: "request", Reason: err.Error()}
	}

	fe := fieldErrs[0]
	return domain.InvalidInputError{Field: fe.Field(), Reason: describe(fe)}
}

// describe uses the underlying tag so aliased rules read like their expansion.
func describe(fe validator.FieldError) string {
	switch fe.ActualTag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("failed %s validation", fe.ActualTag())
	}
}
