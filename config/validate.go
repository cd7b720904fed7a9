package config

import (
	"fmt"
	"sort"
	"strings"
)

// FieldError is a validation failure at one configuration field.
type FieldError struct {
	Field   string // dotted path, e.g. "passes[0].old"
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError aggregates every failure found in one pipeline file.
type ValidationError struct {
	Errors []FieldError
}

func (e ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d errors:", len(e.Errors))
	for _, err := range e.Errors {
		sb.WriteString("\n  - ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Validate checks every pass entry. All failures are collected and returned
// together rather than stopping at the first.
func Validate(cfg *Config) error {
	var errs []FieldError
	for i, p := range cfg.Passes {
		field := func(name string) string { return fmt.Sprintf("passes[%d].%s", i, name) }
		switch p.Name {
		case PassCallMigration:
			if p.Old == "" {
				errs = append(errs, FieldError{field("old"), "must name the call to migrate"})
			}
			if p.New == "" {
				errs = append(errs, FieldError{field("new"), "must name the replacement call"})
			}
			if (p.Keyword == "") != (p.Wrapper == "") {
				errs = append(errs, FieldError{field("keyword"), "keyword and wrapper must be set together"})
			}
		case PassGuardInjection:
			if len(p.Guards) == 0 {
				errs = append(errs, FieldError{field("guards"), "must register at least one callee"})
			}
			callees := make([]string, 0, len(p.Guards))
			for callee := range p.Guards {
				callees = append(callees, callee)
			}
			sort.Strings(callees)
			for _, callee := range callees {
				g := p.Guards[callee]
				if g.Exception == "" {
					errs = append(errs, FieldError{
						Field:   fmt.Sprintf("passes[%d].guards.%s.exception", i, callee),
						Message: "must name the exception to catch",
					})
				}
				switch g.Fallback.(type) {
				case nil, string, bool, int, int64, uint64, float64:
				default:
					errs = append(errs, FieldError{
						Field:   fmt.Sprintf("passes[%d].guards.%s.fallback", i, callee),
						Message: "must be a scalar (string, number, bool, or null)",
					})
				}
			}
		case PassLoopUnroll:
			if p.Factor < 1 {
				errs = append(errs, FieldError{field("factor"), "must be at least 1"})
			}
		case "":
			errs = append(errs, FieldError{field("name"), "is required"})
		default:
			errs = append(errs, FieldError{field("name"), fmt.Sprintf("unknown pass %q", p.Name)})
		}
	}
	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}
