package tasklist

import (
	"fmt"

	"github.com/BuzzLyutic/taskbox/internal/model"
)

// defaultTask mirrors the single-task defaults the list fixtures are built from.
func defaultTask() model.Task {
	return model.Task{ID: "1", Title: "Test Task", State: model.StateInbox}
}

func defaultProps() Props {
	tasks := make([]model.Task, 0, 6)
	for i := 1; i <= 6; i++ {
		t := defaultTask()
		t.ID = fmt.Sprint(i)
		t.Title = fmt.Sprintf("Task %d", i)
		tasks = append(tasks, t)
	}
	return Props{Tasks: tasks}
}

// withPinnedProps pins the last of the default tasks.
func withPinnedProps() Props {
	tasks := defaultProps().Tasks[:5]
	tasks = append(tasks, model.Task{ID: "6", Title: "Task 6 (pinned)", State: model.StatePinned})
	return Props{Tasks: tasks}
}

func loadingProps() Props {
	return Props{Tasks: []model.Task{}, Loading: true}
}

func emptyProps() Props {
	p := loadingProps()
	p.Loading = false
	return p
}
