// Package exerciseFilter derives views of an exercise list. Nothing here
// mutates its input or touches storage.
package exerciseFilter

import (
	"fmt"
	"strings"

	"github.com/t-kuni/openfit/domain/model/exercise"
)

type UnknownCategoryError struct {
	Category string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown search category: %s", e.Category)
}

func Categories() []string {
	return []string{
		exercise.FieldName,
		exercise.FieldType,
		exercise.FieldReps,
		exercise.FieldSets,
		exercise.FieldDays,
	}
}

// ParseCategory normalizes a user supplied category name.
func ParseCategory(category string) (string, error) {
	c := strings.ToLower(strings.TrimSpace(category))
	for _, known := range Categories() {
		if c == known {
			return c, nil
		}
	}
	return "", &UnknownCategoryError{Category: category}
}

// FilterByDay keeps the exercises scheduled on weekday, in input order.
func FilterByDay(exercises []exercise.Exercise, weekday string) []exercise.Exercise {
	result := []exercise.Exercise{}
	for _, ex := range exercises {
		if ex.HasDay(weekday) {
			result = append(result, ex.Clone())
		}
	}
	return result
}

func FilterByCategory(exercises []exercise.Exercise, category string, query string) []exercise.Exercise {
	q := strings.ToLower(query)
	result := []exercise.Exercise{}
	for _, ex := range exercises {
		value, ok := ex.Field(category)
		if !ok {
			continue
		}
		value = strings.ToLower(value)
		if strings.Contains(value, q) || value == q {
			result = append(result, ex.Clone())
		}
	}
	return result
}

// FilterByMultiValue runs FilterByCategory for every comma separated term
// and merges the results. An exercise matched by several terms is kept once,
// at the position of its last match.
func FilterByMultiValue(exercises []exercise.Exercise, category string, query string) []exercise.Exercise {
	var matched []exercise.Exercise
	for _, term := range strings.Split(query, ",") {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		matched = append(matched, FilterByCategory(exercises, category, term)...)
	}
	return uniquify(matched)
}

// Search is the combined search of the exercise table: a blank query or
// category shows everything, days and type accept several comma separated
// values, the other categories match the whole query.
func Search(exercises []exercise.Exercise, category string, query string) ([]exercise.Exercise, error) {
	query = strings.TrimSpace(query)
	if query == "" || strings.TrimSpace(category) == "" {
		return exercise.CloneAll(exercises), nil
	}

	c, err := ParseCategory(category)
	if err != nil {
		return nil, err
	}

	switch c {
	case exercise.FieldDays, exercise.FieldType:
		return FilterByMultiValue(exercises, c, query), nil
	default:
		return FilterByCategory(exercises, c, query), nil
	}
}

func uniquify(exercises []exercise.Exercise) []exercise.Exercise {
	last := make(map[string]int, len(exercises))
	for i, ex := range exercises {
		last[ex.Name] = i
	}

	result := []exercise.Exercise{}
	for i, ex := range exercises {
		if last[ex.Name] == i {
			result = append(result, ex)
		}
	}
	return result
}
