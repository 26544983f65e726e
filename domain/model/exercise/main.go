package exercise

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	FieldName = "name"
	FieldType = "type"
	FieldReps = "reps"
	FieldSets = "sets"
	FieldDays = "days"
)

// Exercise is one entry of the workout routine.
type Exercise struct {
	Name string   `json:"name" yaml:"name"`
	Type string   `json:"type" yaml:"type"`
	Reps int      `json:"reps" yaml:"reps"`
	Sets int      `json:"sets" yaml:"sets"`
	Days []string `json:"days" yaml:"days"`
}

// Patch holds the fields of a partial update. Zero values are not applied.
type Patch struct {
	Name string
	Type string
	Reps int
	Sets int
	Days []string
}

// ValidationError reports the first required field that is missing or empty.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s value for Exercise is not specified but required", e.Field)
}

// New builds an Exercise and validates it.
func New(name, typ string, reps, sets int, days []string) (Exercise, error) {
	ex := Exercise{
		Name: strings.TrimSpace(name),
		Type: strings.TrimSpace(typ),
		Reps: reps,
		Sets: sets,
		Days: NormalizeDays(days),
	}
	if err := ex.Validate(); err != nil {
		return Exercise{}, err
	}
	return ex, nil
}

func (e Exercise) Validate() error {
	switch {
	case strings.TrimSpace(e.Name) == "":
		return &ValidationError{Field: FieldName}
	case strings.TrimSpace(e.Type) == "":
		return &ValidationError{Field: FieldType}
	case e.Reps <= 0:
		return &ValidationError{Field: FieldReps}
	case e.Sets <= 0:
		return &ValidationError{Field: FieldSets}
	case len(NormalizeDays(e.Days)) == 0:
		return &ValidationError{Field: FieldDays}
	}
	return nil
}

// Apply overwrites the fields that carry a truthy value in p.
func (e *Exercise) Apply(p Patch) {
	if name := strings.TrimSpace(p.Name); name != "" {
		e.Name = name
	}
	if typ := strings.TrimSpace(p.Type); typ != "" {
		e.Type = typ
	}
	if p.Reps > 0 {
		e.Reps = p.Reps
	}
	if p.Sets > 0 {
		e.Sets = p.Sets
	}
	if days := NormalizeDays(p.Days); len(days) > 0 {
		e.Days = days
	}
}

func (e Exercise) Clone() Exercise {
	c := e
	if e.Days != nil {
		c.Days = make([]string, len(e.Days))
		copy(c.Days, e.Days)
	}
	return c
}

func (e Exercise) HasDay(day string) bool {
	for _, d := range e.Days {
		if d == day {
			return true
		}
	}
	return false
}

// Field returns the string form of the named field, as shown in listings.
func (e Exercise) Field(name string) (string, bool) {
	switch name {
	case FieldName:
		return e.Name, true
	case FieldType:
		return e.Type, true
	case FieldReps:
		return strconv.Itoa(e.Reps), true
	case FieldSets:
		return strconv.Itoa(e.Sets), true
	case FieldDays:
		return strings.Join(e.Days, ", "), true
	}
	return "", false
}

// NormalizeDays trims every day name and drops the blank ones.
func NormalizeDays(days []string) []string {
	var result []string
	for _, d := range days {
		d = strings.TrimSpace(d)
		if d != "" {
			result = append(result, d)
		}
	}
	return result
}

// ParseDays splits a comma separated list such as "Monday, Friday".
func ParseDays(s string) []string {
	return NormalizeDays(strings.Split(s, ","))
}

func CloneAll(exercises []Exercise) []Exercise {
	if exercises == nil {
		return nil
	}
	result := make([]Exercise, len(exercises))
	for i, ex := range exercises {
		result[i] = ex.Clone()
	}
	return result
}
