package tui

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// FormMode selects between the login and register forms
type FormMode int

const (
	ModeLogin FormMode = iota
	ModeRegister
)

// Field identifies an auth form field
type Field string

const (
	FieldEmail    Field = "email"
	FieldPassword Field = "password"
	FieldAge      Field = "age"
)

// Constraint is one declarative validation rule for a field value.
type Constraint struct {
	Check   func(value string) bool
	Message string
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func required(name string) Constraint {
	return Constraint{
		Check:   func(v string) bool { return strings.TrimSpace(v) != "" },
		Message: name + " is required",
	}
}

func emailFormat() Constraint {
	return Constraint{
		Check:   func(v string) bool { return emailPattern.MatchString(v) },
		Message: "Please enter a valid email",
	}
}

func minLen(name string, n int) Constraint {
	return Constraint{
		Check:   func(v string) bool { return len(v) >= n },
		Message: fmt.Sprintf("%s must be at least %d characters", name, n),
	}
}

func intRange(name string, min, max int) Constraint {
	return Constraint{
		Check: func(v string) bool {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			return err == nil && n >= min && n <= max
		},
		Message: fmt.Sprintf("%s must be between %d and %d", name, min, max),
	}
}

// constraintsFor returns the field-constraint table for a mode. The
// table is recomputed as a pure function of mode rather than mutated in
// place: the age constraints exist only while registering.
func constraintsFor(mode FormMode) map[Field][]Constraint {
	table := map[Field][]Constraint{
		FieldEmail:    {required("email"), emailFormat()},
		FieldPassword: {required("password"), minLen("password", 6)},
	}
	if mode == ModeRegister {
		table[FieldAge] = []Constraint{required("age"), intRange("Age", 1, 120)}
	}
	return table
}

// validateForm checks the given values against the mode's constraint
// table and returns the first failing message per field. An empty map
// means the form is valid.
func validateForm(mode FormMode, values map[Field]string) map[Field]string {
	errs := make(map[Field]string)
	for field, constraints := range constraintsFor(mode) {
		for _, c := range constraints {
			if !c.Check(values[field]) {
				errs[field] = c.Message
				break
			}
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
