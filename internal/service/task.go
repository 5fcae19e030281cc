package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fikryfauzn/icarus/internal/model"
)

type CreateTaskInput struct {
	Domain              model.Domain
	ProjectName         string
	ActivityDescription string
	WorkType            model.WorkType
}

// CreateTask records a planned activity that has not happened yet.
func CreateTask(db *sql.DB, in CreateTaskInput) (*model.Task, error) {
	project := strings.TrimSpace(in.ProjectName)
	activity := strings.TrimSpace(in.ActivityDescription)

	var errs []string
	if project == "" {
		errs = append(errs, "project name cannot be empty")
	}
	if activity == "" {
		errs = append(errs, "activity description cannot be empty")
	}
	if err := validationError(errs); err != nil {
		return nil, err
	}

	now := time.Now()
	res, err := db.Exec(`
INSERT INTO tasks (domain, project_name, activity_description, work_type, created_at)
VALUES (?, ?, ?, ?, ?)
`, string(in.Domain), project, activity, string(in.WorkType), formatDateTime(now))
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("read task id: %w", err)
	}

	return &model.Task{
		ID:                  id,
		Domain:              in.Domain,
		ProjectName:         project,
		ActivityDescription: activity,
		WorkType:            in.WorkType,
		CreatedAt:           now,
	}, nil
}

// ListTasks returns all planned tasks, oldest first.
func ListTasks(db *sql.DB) ([]model.Task, error) {
	rows, err := db.Query(`
SELECT id, domain, project_name, activity_description, work_type, created_at
FROM tasks
ORDER BY id ASC
`)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		var (
			task             model.Task
			domain, workType string
			createdStr       string
		)
		if err := rows.Scan(&task.ID, &domain, &task.ProjectName, &task.ActivityDescription, &workType, &createdStr); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		task.Domain = model.Domain(domain)
		task.WorkType = model.WorkType(workType)
		if task.CreatedAt, err = parseDateTime(createdStr); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

func DeleteTask(db *sql.DB, id int64) error {
	res, err := db.Exec(`DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("task %d not found", id)
	}
	return nil
}
