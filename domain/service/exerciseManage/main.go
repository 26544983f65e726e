package exerciseManage

import (
	"fmt"
	"strings"

	"github.com/t-kuni/openfit/domain/model/exercise"
	"github.com/t-kuni/openfit/domain/service/documentStore"
)

// DuplicateNameError is returned by Add and Update when the name is already taken.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("exercise with name %q already exists", e.Name)
}

type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("exercise index %d out of range [0, %d)", e.Index, e.Len)
}

// ExerciseManageService mutates the exercise list of the program data.
// Every successful mutation is flushed to the store before returning.
type ExerciseManageService struct {
	store *documentStore.DocumentStore
}

func NewExerciseManageService(store *documentStore.DocumentStore) *ExerciseManageService {
	return &ExerciseManageService{
		store: store,
	}
}

// Add stores a trimmed copy of ex. Names are unique ignoring case.
func (s *ExerciseManageService) Add(ex exercise.Exercise) error {
	ex, err := exercise.New(ex.Name, ex.Type, ex.Reps, ex.Sets, ex.Days)
	if err != nil {
		return err
	}
	if _, found := s.FindIndex(ex.Name); found {
		return &DuplicateNameError{Name: ex.Name}
	}

	doc := s.store.Document()
	doc.Exercises = append(doc.Exercises, ex.Clone())

	return s.store.Flush()
}

// Update applies the truthy fields of patch to the exercise at index.
// A rename onto another exercise's name is rejected and nothing is written.
// Otherwise the document is flushed even when nothing changed.
func (s *ExerciseManageService) Update(index int, patch exercise.Patch) error {
	doc := s.store.Document()
	if err := checkIndex(index, len(doc.Exercises)); err != nil {
		return err
	}

	if name := strings.TrimSpace(patch.Name); name != "" {
		if found, ok := s.FindIndex(name); ok && found != index {
			return &DuplicateNameError{Name: name}
		}
	}

	doc.Exercises[index].Apply(patch)

	return s.store.Flush()
}

func (s *ExerciseManageService) Remove(index int) error {
	doc := s.store.Document()
	if err := checkIndex(index, len(doc.Exercises)); err != nil {
		return err
	}

	doc.Exercises = append(doc.Exercises[:index], doc.Exercises[index+1:]...)

	return s.store.Flush()
}

// FindIndex looks an exercise up by name, ignoring case.
func (s *ExerciseManageService) FindIndex(name string) (int, bool) {
	for i, ex := range s.store.Document().Exercises {
		if strings.EqualFold(ex.Name, name) {
			return i, true
		}
	}
	return -1, false
}

func (s *ExerciseManageService) At(index int) (exercise.Exercise, error) {
	exercises := s.store.Document().Exercises
	if err := checkIndex(index, len(exercises)); err != nil {
		return exercise.Exercise{}, err
	}
	return exercises[index].Clone(), nil
}

// GetAll returns a deep copy of the exercise list.
func (s *ExerciseManageService) GetAll() []exercise.Exercise {
	result := exercise.CloneAll(s.store.Document().Exercises)
	if result == nil {
		result = []exercise.Exercise{}
	}
	return result
}

func checkIndex(index, length int) error {
	if index < 0 || index >= length {
		return &IndexError{Index: index, Len: length}
	}
	return nil
}
