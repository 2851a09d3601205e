// Package store persists the task list as a JSON array in a single file.
//
// The whole list is loaded, mutated in memory, and rewritten on every change.
// There is no locking: the tool assumes one invocation at a time.
package store

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/calvinalkan/task-tracker/internal/task"

	"github.com/natefinch/atomic"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// FileName is the name of the data file inside the working directory.
const FileName = "tasks.json"

const filePerms = 0o644

//go:embed task.schema.json
var taskSchemaJSON string

// schemaURL is fixed so that compilation never depends on the working directory.
const schemaURL = "https://task-tracker.local/task.schema.json"

var recordSchema = jsonschema.MustCompileString(schemaURL, taskSchemaJSON)

// Store reads and writes the task list at a fixed path.
//
// Records that fail validation on Load are not returned, but the store keeps
// them and writes them back after the valid tasks on the next Save, so an
// unrelated change never erases them.
type Store struct {
	path     string
	logger   *slog.Logger
	unparsed []json.RawMessage
}

// New returns a store for the data file at path.
// Panics if logger is nil.
func New(path string, logger *slog.Logger) *Store {
	if logger == nil {
		panic("logger is nil")
	}

	return &Store{path: path, logger: logger}
}

// Path returns the data file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns the stored tasks in file order.
//
// A missing file yields an empty list. Content that is not a JSON array is
// handled by [Store.emptyOnMalformed]. Records that fail validation are
// skipped with a warning and held for the next Save. Records repeating an id
// are kept; lookups by id act on the first one.
// Only a file that exists but cannot be read returns an error.
func (s *Store) Load() ([]task.Task, error) {
	s.unparsed = nil

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []task.Task{}, nil
		}

		return nil, fmt.Errorf("%w %s: %w", ErrRead, s.path, err)
	}

	var raw []json.RawMessage

	err = json.Unmarshal(data, &raw)
	if err != nil {
		return s.emptyOnMalformed(err), nil
	}

	tasks := make([]task.Task, 0, len(raw))
	seen := make(map[int]bool, len(raw))

	for i, elem := range raw {
		t, decodeErr := decodeRecord(elem)
		if decodeErr != nil {
			s.logger.Warn("skipping stored task", "path", s.path, "index", i, "error", decodeErr)
			s.unparsed = append(s.unparsed, elem)

			continue
		}

		if seen[t.ID] {
			s.logger.Info("stored task repeats an id", "path", s.path, "index", i, "id", t.ID)
		}

		seen[t.ID] = true
		tasks = append(tasks, t)
	}

	s.logger.Debug("loaded tasks", "path", s.path, "count", len(tasks), "skipped", len(s.unparsed))

	return tasks, nil
}

// emptyOnMalformed is the recovery policy for a data file that is not a JSON
// array: the list is treated as empty. The file is left untouched until the
// next successful save replaces it.
func (s *Store) emptyOnMalformed(cause error) []task.Task {
	s.logger.Info("task file is not a JSON array, using empty list", "path", s.path, "error", cause)

	return []task.Task{}
}

// Save rewrites the data file with tasks as an indented JSON array, followed
// by any records the last Load could not validate.
// Non-ASCII text is written literally.
func (s *Store) Save(tasks []task.Task) error {
	records := make([]any, 0, len(tasks)+len(s.unparsed))
	for _, t := range tasks {
		records = append(records, t)
	}

	for _, elem := range s.unparsed {
		records = append(records, elem)
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	err := enc.Encode(records)
	if err != nil {
		return fmt.Errorf("%w %s: encode: %w", ErrWrite, s.path, err)
	}

	err = atomic.WriteFile(s.path, &buf)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrWrite, s.path, err)
	}

	// atomic.WriteFile doesn't set permissions for new files
	err = os.Chmod(s.path, filePerms)
	if err != nil {
		return fmt.Errorf("%w %s: chmod: %w", ErrWrite, s.path, err)
	}

	s.logger.Debug("saved tasks", "path", s.path, "count", len(tasks), "kept_unparsed", len(s.unparsed))

	return nil
}

func decodeRecord(elem json.RawMessage) (task.Task, error) {
	dec := json.NewDecoder(bytes.NewReader(elem))
	dec.UseNumber()

	var doc any

	err := dec.Decode(&doc)
	if err != nil {
		return task.Task{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	err = recordSchema.Validate(doc)
	if err != nil {
		return task.Task{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	var t task.Task

	err = json.Unmarshal(elem, &t)
	if err != nil {
		return task.Task{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	return t, nil
}
