package task

import (
	"cmp"
	"math"
	"slices"

	"github.com/samber/lo"
)

// NextID returns the id for a new task: one more than the highest id in
// tasks, or 1 if tasks is empty. Returns [ErrIDOverflow] when the highest id
// is already math.MaxInt.
func NextID(tasks []Task) (int, error) {
	if len(tasks) == 0 {
		return 1, nil
	}

	highest := lo.Max(lo.Map(tasks, func(t Task, _ int) int { return t.ID }))
	if highest == math.MaxInt {
		return 0, ErrIDOverflow
	}

	return highest + 1, nil
}

// Index returns the index of the first task with the given id, or -1.
func Index(tasks []Task, id int) int {
	_, idx, ok := lo.FindIndexOf(tasks, func(t Task) bool { return t.ID == id })
	if !ok {
		return -1
	}

	return idx
}

// Find returns a pointer to the first task with the given id, or nil.
// The pointer aliases the slice element, so mutations are visible in tasks.
func Find(tasks []Task, id int) *Task {
	idx := Index(tasks, id)
	if idx < 0 {
		return nil
	}

	return &tasks[idx]
}

// Remove deletes the first task with the given id.
// Reports false and returns tasks unchanged if no task matches.
func Remove(tasks []Task, id int) ([]Task, bool) {
	idx := Index(tasks, id)
	if idx < 0 {
		return tasks, false
	}

	return slices.Delete(tasks, idx, idx+1), true
}

// Filter returns the tasks with the given status, preserving order.
func Filter(tasks []Task, status Status) []Task {
	return lo.Filter(tasks, func(t Task, _ int) bool { return t.Status == status })
}

// SortByID returns a copy of tasks sorted by ascending id.
func SortByID(tasks []Task) []Task {
	sorted := slices.Clone(tasks)
	slices.SortStableFunc(sorted, func(a, b Task) int { return cmp.Compare(a.ID, b.ID) })

	return sorted
}
