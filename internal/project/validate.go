package project

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// ObjectName prefixes every validation message.
const ObjectName = "project"

// Violation is one failed field constraint.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError holds every violation found for one submitted object.
type ValidationError struct {
	Object     string
	Violations []Violation
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages(), "; ")
}

// Messages renders each violation as "<object>.<field> <message>".
func (e *ValidationError) Messages() []string {
	out := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		out = append(out, fmt.Sprintf("%s.%s %s", e.Object, v.Field, v.Message))
	}
	return out
}

type rule struct {
	field   string
	tag     string
	message string
	value   func(*Project) string
}

// rules run independently and in order, so a field can report several violations.
var rules = []rule{
	{field: "name", tag: "notblank", message: "must not be blank", value: func(p *Project) string { return p.Name }},
	{field: "name", tag: "min=1,max=30", message: "length must be between 1 and 30", value: func(p *Project) string { return p.Name }},
	{field: "description", tag: "max=100", message: "length must be between 0 and 100", value: func(p *Project) string { return p.Description }},
}

var validate = newValidator()

// notblank is not a built-in tag; it ships with the non-standard validators.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("project: register notblank: %v", err))
	}
	return v
}

// Validate checks p against the field rules and returns all violations in
// declaration order. A nil result means p is valid.
func Validate(p *Project) []Violation {
	var out []Violation
	for _, r := range rules {
		if err := validate.Var(r.value(p), r.tag); err != nil {
			out = append(out, Violation{Field: r.field, Message: r.message})
		}
	}
	return out
}

// Check wraps Validate into a *ValidationError, or returns nil when p is valid.
func Check(p *Project) error {
	if v := Validate(p); len(v) > 0 {
		return &ValidationError{Object: ObjectName, Violations: v}
	}
	return nil
}
