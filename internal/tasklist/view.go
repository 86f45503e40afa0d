// Package tasklist selects how a list of tasks is displayed.
//
// Render is a pure function of its Props: a loading list shows a placeholder,
// an empty list shows another one, and anything else becomes an ordered
// sequence of rows with pinned tasks first.
package tasklist

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/BuzzLyutic/taskbox/internal/model"
)

var ErrInvalidTaskRecord = errors.New("invalid task record")

type RenderState int

const (
	StateLoading RenderState = iota
	StateEmpty
	StatePopulated
)

func (s RenderState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateEmpty:
		return "empty"
	case StatePopulated:
		return "populated"
	}
	return fmt.Sprintf("RenderState(%d)", int(s))
}

func (s RenderState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Props is the input record supplied by the host on every render.
type Props struct {
	Tasks   []model.Task `json:"tasks"`
	Loading bool         `json:"loading"`
}

// Output is the result of a single render pass.
type Output struct {
	State RenderState
	tasks []model.Task
}

// Len returns the number of rows. Zero for Loading and Empty.
func (o Output) Len() int {
	return len(o.tasks)
}

// Rows yields the tasks in display order: pinned tasks first, then the rest,
// each group keeping its input order. The sequence can be ranged over any
// number of times.
func (o Output) Rows() iter.Seq[model.Task] {
	return func(yield func(model.Task) bool) {
		for _, t := range o.tasks {
			if t.Pinned() && !yield(t) {
				return
			}
		}
		for _, t := range o.tasks {
			if !t.Pinned() && !yield(t) {
				return
			}
		}
	}
}

func Render(p Props) (Output, error) {
	if p.Loading {
		return Output{State: StateLoading}, nil
	}
	if len(p.Tasks) == 0 {
		return Output{State: StateEmpty}, nil
	}

	for i, t := range p.Tasks {
		if t.ID == "" {
			return Output{}, fmt.Errorf("task at position %d has no id: %w", i, ErrInvalidTaskRecord)
		}
	}

	return Output{
		State: StatePopulated,
		tasks: slices.Clone(p.Tasks),
	}, nil
}
