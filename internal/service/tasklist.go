package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/taskbox/internal/model"
	"github.com/BuzzLyutic/taskbox/internal/tasklist"
)

type TaskListService struct {
	logger *zap.Logger
	strict bool
}

// NewTaskListService returns a service that renders task lists. In strict mode
// records without an id are reported to the caller; otherwise they are dropped
// from the list and logged.
func NewTaskListService(logger *zap.Logger, strict bool) *TaskListService {
	return &TaskListService{
		logger: logger,
		strict: strict,
	}
}

func (s *TaskListService) Render(ctx context.Context, p tasklist.Props) (tasklist.Output, error) {
	if !s.strict && !p.Loading {
		p.Tasks = s.dropInvalid(p.Tasks)
	}

	out, err := tasklist.Render(p)
	if err != nil {
		return out, err
	}

	s.logger.Debug("task list rendered",
		zap.Stringer("state", out.State),
		zap.Int("rows", out.Len()),
	)
	return out, nil
}

func (s *TaskListService) dropInvalid(tasks []model.Task) []model.Task {
	valid := make([]model.Task, 0, len(tasks))
	for i, t := range tasks {
		if t.ID == "" {
			s.logger.Warn("skipping task without id",
				zap.Int("position", i),
				zap.String("title", t.Title),
			)
			continue
		}
		valid = append(valid, t)
	}
	return valid
}
