// Package registry holds the in-memory task registry: task keys mapped to
// a pending/done status.
package registry

import (
	"errors"
	"fmt"
)

// Status is the state of a single task.
type Status int

const (
	Pending Status = iota
	Done
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Done:
		return "done"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// ErrUnknownKey is matched by every *UnknownKeyError.
var ErrUnknownKey = errors.New("unknown key")

// UnknownKeyError is returned by SetStatus when the key is not tracked.
type UnknownKeyError struct {
	Key string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown key %q", e.Key)
}

func (e *UnknownKeyError) Is(target error) bool { return target == ErrUnknownKey }

// Registry maps task keys to their status.
// It is not safe for concurrent use; callers serialise access themselves.
type Registry struct {
	items map[string]Status
}

func New() *Registry {
	return &Registry{items: make(map[string]Status)}
}

// Add tracks key as Pending. A key that is already tracked keeps its status.
func (r *Registry) Add(key string) {
	if _, ok := r.items[key]; ok {
		return
	}
	r.items[key] = Pending
}

// SetStatus overwrites the status of a tracked key and echoes the key back.
func (r *Registry) SetStatus(key string, status Status) (string, error) {
	if _, ok := r.items[key]; !ok {
		return "", &UnknownKeyError{Key: key}
	}
	r.items[key] = status
	return key, nil
}

// List partitions every key by status. Order within each slice follows map
// iteration and is unspecified.
func (r *Registry) List() (pending, done []string) {
	pending = make([]string, 0, len(r.items))
	done = make([]string, 0)
	for k, s := range r.items {
		if s == Done {
			done = append(done, k)
		} else {
			pending = append(pending, k)
		}
	}
	return pending, done
}

func (r *Registry) Status(key string) (Status, bool) {
	s, ok := r.items[key]
	return s, ok
}

func (r *Registry) Len() int { return len(r.items) }
