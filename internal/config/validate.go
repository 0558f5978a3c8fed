package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/specialistvlad/framegen/internal/project"
)

// ValidationError lists every problem found in a specification.
type ValidationError struct {
	Problems []string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return "invalid specification: " + strings.Join(e.Problems, "; ")
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("product_type", func(fl validator.FieldLevel) bool {
			return project.ProductType(fl.Field().String()).Valid()
		})
	})
	return validate
}

// Validate checks the structural rules of a specification: required fields,
// enumerated kinds, unique target names, at most one platform per kind, and a
// resolvable language for every target.
func Validate(p *Project) error {
	var problems []string

	if err := validatorInstance().Struct(p); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("failed to validate specification: %w", err)
		}
		for _, fe := range fieldErrs {
			problems = append(problems, describe(fe))
		}
	}

	for i := range p.Targets {
		t := &p.Targets[i]
		if p.LanguageFor(t) == nil {
			problems = append(problems, fmt.Sprintf("target %q: no language given and the project has no default language", t.Name))
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Project.")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "unique":
		if fe.Param() != "" {
			return fmt.Sprintf("%s must not repeat the same %s", field, strings.ToLower(fe.Param()))
		}
		return fmt.Sprintf("%s must not contain duplicates", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", field, fe.Param(), fe.Value())
	case "product_type":
		return fmt.Sprintf("%s has unknown target type %q", field, fe.Value())
	case "min":
		return fmt.Sprintf("%s needs at least %s entry", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed the %q check", field, fe.Tag())
	}
}

// LanguageFor returns the language of t, falling back to the project
// language.
func (p *Project) LanguageFor(t *Target) *Language {
	if t.Language != nil {
		return t.Language
	}
	return p.Language
}

// Target returns the target called name.
func (p *Project) Target(name string) (*Target, bool) {
	for i := range p.Targets {
		if p.Targets[i].Name == name {
			return &p.Targets[i], true
		}
	}
	return nil, false
}
