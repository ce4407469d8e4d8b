// internal/board/store.go

// Package board holds the authoritative kanban collection and the state
// transitions applied to it. Every successful mutation is followed by one
// synchronous write of the whole collection to the persistence slot.
package board

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gurkanbulca/kanban/internal/models"
	"github.com/gurkanbulca/kanban/internal/repository"
)

var (
	ErrEmptyTitle      = errors.New("title is required")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidDueDate  = errors.New("invalid due date")
	ErrEmptyLabel      = errors.New("label name is required")
)

// IsValidationError reports whether err came from input validation rather
// than from the store itself.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyTitle) ||
		errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrInvalidPriority) ||
		errors.Is(err, ErrInvalidDueDate) ||
		errors.Is(err, ErrEmptyLabel)
}

// Store owns the board collection. It is safe for concurrent use; each
// operation, including its persistence write, runs under one lock.
type Store struct {
	mu    sync.RWMutex
	coll  *models.Collection
	slot  repository.Slot
	log   zerolog.Logger
	now   func() time.Time
	newID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for persistence failures and mutations.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithClock overrides time.Now for creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides the task id generator.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// New wraps an already loaded collection. A nil collection starts from the
// default board.
func New(coll *models.Collection, slot repository.Slot, opts ...Option) *Store {
	if coll == nil {
		coll = models.DefaultCollection()
	}
	coll.Normalize()
	s := &Store{
		coll:  coll,
		slot:  slot,
		log:   zerolog.Nop(),
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open loads the collection from the slot and returns a Store over it.
func Open(ctx context.Context, slot repository.Slot, opts ...Option) *Store {
	s := New(models.DefaultCollection(), slot, opts...)
	s.coll = repository.Load(ctx, slot, s.log)
	return s
}

// AddTask validates the input, appends a new To Do task and persists.
func (s *Store) AddTask(ctx context.Context, in models.TaskInput) (models.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return models.Task{}, ErrEmptyTitle
	}
	priority := in.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !priority.Valid() {
		return models.Task{}, ErrInvalidPriority
	}
	dueDate, err := normalizeDueDate(in.DueDate)
	if err != nil {
		return models.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := models.Task{
		ID:          s.uniqueID(),
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Status:      models.StatusTodo,
		Priority:    priority,
		CreatedAt:   s.now().UTC().Truncate(time.Millisecond),
		DueDate:     dueDate,
		Labels:      models.NormalizeLabels(in.Labels),
	}
	s.coll.Tasks = append(s.coll.Tasks, task)
	s.persist(ctx)

	s.log.Debug().Str("task_id", task.ID).Msg("Task added")
	return task.Clone(), nil
}

// UpdateTaskStatus moves a task to another column. It reports false, without
// error or write, when no task has the id. Setting the current status again
// is a legal mutation and is persisted.
func (s *Store) UpdateTaskStatus(ctx context.Context, id string, status models.Status) (bool, error) {
	if !status.Valid() {
		return false, ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.coll.IndexOf(id)
	if i < 0 {
		return false, nil
	}
	s.coll.Tasks[i].Status = status
	s.persist(ctx)

	s.log.Debug().Str("task_id", id).Str("status", string(status)).Msg("Task moved")
	return true, nil
}

// UpdateTask overwrites the fields present in the patch and leaves the rest
// untouched. It reports false when no task has the id.
func (s *Store) UpdateTask(ctx context.Context, id string, patch models.TaskPatch) (models.Task, bool, error) {
	p, err := validatePatch(patch)
	if err != nil {
		return models.Task{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.coll.IndexOf(id)
	if i < 0 {
		return models.Task{}, false, nil
	}

	t := &s.coll.Tasks[i]
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.Labels != nil {
		t.Labels = *p.Labels
	}
	s.persist(ctx)

	s.log.Debug().Str("task_id", id).Msg("Task updated")
	return t.Clone(), true, nil
}

// DeleteTask removes the task with the id. Deleting an unknown id is a
// no-op that reports false.
func (s *Store) DeleteTask(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.coll.IndexOf(id)
	if i < 0 {
		return false
	}
	s.coll.Tasks = append(s.coll.Tasks[:i], s.coll.Tasks[i+1:]...)
	s.persist(ctx)

	s.log.Debug().Str("task_id", id).Msg("Task deleted")
	return true
}

// AddLabel appends a label name unless it already exists (exact,
// case-sensitive match). Only an actual insertion is persisted.
func (s *Store) AddLabel(ctx context.Context, name string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, ErrEmptyLabel
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.coll.HasLabel(name) {
		return false, nil
	}
	s.coll.Labels = append(s.coll.Labels, name)
	s.persist(ctx)

	s.log.Debug().Str("label", name).Msg("Label added")
	return true, nil
}

// DeleteLabel removes a label from the label list and from every task that
// references it. It persists and reports true only when something changed.
func (s *Store) DeleteLabel(ctx context.Context, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	kept := s.coll.Labels[:0]
	for _, l := range s.coll.Labels {
		if l == name {
			changed = true
			continue
		}
		kept = append(kept, l)
	}
	s.coll.Labels = kept

	for i := range s.coll.Tasks {
		if removeLabel(&s.coll.Tasks[i], name) {
			changed = true
		}
	}

	if !changed {
		return false
	}
	s.persist(ctx)

	s.log.Debug().Str("label", name).Msg("Label deleted")
	return true
}

// persistTimeout bounds one slot write.
const persistTimeout = 10 * time.Second

// persist writes the collection to the slot. The write outlives the
// caller's cancellation because the mutation is already applied in memory.
// Failures are logged and swallowed: the in-memory collection stays
// authoritative. Callers hold mu.
func (s *Store) persist(ctx context.Context) {
	if s.slot == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()

	if err := repository.Save(ctx, s.slot, s.coll); err != nil {
		s.log.Error().Err(err).Msg("Failed to persist board")
	}
}

// uniqueID draws ids until one is not taken. Callers hold mu.
func (s *Store) uniqueID() string {
	for {
		id := s.newID()
		if id != "" && s.coll.IndexOf(id) < 0 {
			return id
		}
	}
}

// removeLabel drops name from the task's labels in place.
func removeLabel(t *models.Task, name string) bool {
	removed := false
	kept := t.Labels[:0]
	for _, l := range t.Labels {
		if l == name {
			removed = true
			continue
		}
		kept = append(kept, l)
	}
	t.Labels = kept
	return removed
}

func normalizeDueDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	if _, err := models.ParseDueDate(s); err != nil {
		return "", ErrInvalidDueDate
	}
	return s, nil
}

// validatePatch checks and normalizes the provided patch fields.
func validatePatch(p models.TaskPatch) (models.TaskPatch, error) {
	out := p
	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if title == "" {
			return out, ErrEmptyTitle
		}
		out.Title = &title
	}
	if p.Description != nil {
		desc := strings.TrimSpace(*p.Description)
		out.Description = &desc
	}
	if p.Status != nil && !p.Status.Valid() {
		return out, ErrInvalidStatus
	}
	if p.Priority != nil && !p.Priority.Valid() {
		return out, ErrInvalidPriority
	}
	if p.DueDate != nil {
		due, err := normalizeDueDate(*p.DueDate)
		if err != nil {
			return out, err
		}
		out.DueDate = &due
	}
	if p.Labels != nil {
		labels := models.NormalizeLabels(*p.Labels)
		out.Labels = &labels
	}
	return out, nil
}
