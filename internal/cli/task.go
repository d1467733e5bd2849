package cli

import (
	"context"
	"fmt"
	"strconv"

	"cloud.google.com/go/civil"
	"github.com/spf13/cobra"

	"github.com/yukikurage/taskboard/internal/engine"
	"github.com/yukikurage/taskboard/internal/models"
	"github.com/yukikurage/taskboard/internal/persistence"
	"github.com/yukikurage/taskboard/internal/services"
)

func parsePriority(v string) (models.Priority, error) {
	p := models.Priority(v)
	if !p.Valid() {
		return "", fmt.Errorf("priority must be high, medium or low, got %q", v)
	}
	return p, nil
}

func parseDue(v string) (civil.Date, error) {
	d, err := civil.ParseDate(v)
	if err != nil {
		return civil.Date{}, fmt.Errorf("due date must be YYYY-MM-DD: %w", err)
	}
	return d, nil
}

func (a *app) taskCommand() *cobra.Command {
	taskCmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	addCmd := &cobra.Command{
		Use:   "add [column-id] [title]",
		Short: "Append a task to a column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			description, _ := cmd.Flags().GetString("description")
			createdBy, _ := cmd.Flags().GetString("by")
			rawPriority, _ := cmd.Flags().GetString("priority")
			rawDue, _ := cmd.Flags().GetString("due")

			priority, err := parsePriority(rawPriority)
			if err != nil {
				return err
			}
			due, err := parseDue(rawDue)
			if err != nil {
				return err
			}

			return a.session(cmd, func(ctx context.Context, svc *services.BoardService, _ *persistence.Gateway) error {
				task, err := svc.CreateTask(ctx, services.CreateTaskInput{
					Title:       args[1],
					Description: description,
					CreatedBy:   createdBy,
					Priority:    priority,
					DueDate:     due,
					ColumnID:    args[0],
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(out(cmd), "Created task %q (%s) at position %d\n", task.Title, task.ID, task.Order)
				return nil
			})
		},
	}
	addCmd.Flags().StringP("description", "d", "", "Task description")
	addCmd.Flags().String("by", "", "Creator label")
	addCmd.Flags().StringP("priority", "p", string(models.PriorityMedium), "Priority (high, medium, low)")
	addCmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	_ = addCmd.MarkFlagRequired("due")

	editCmd := &cobra.Command{
		Use:   "edit [task-id]",
		Short: "Change task fields; only the flags given are updated",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var upd engine.TaskUpdate
			flags := cmd.Flags()
			if flags.Changed("title") {
				v, _ := flags.GetString("title")
				upd.Title = &v
			}
			if flags.Changed("description") {
				v, _ := flags.GetString("description")
				upd.Description = &v
			}
			if flags.Changed("by") {
				v, _ := flags.GetString("by")
				upd.CreatedBy = &v
			}
			if flags.Changed("priority") {
				v, _ := flags.GetString("priority")
				p, err := parsePriority(v)
				if err != nil {
					return err
				}
				upd.Priority = &p
			}
			if flags.Changed("due") {
				v, _ := flags.GetString("due")
				d, err := parseDue(v)
				if err != nil {
					return err
				}
				upd.DueDate = &d
			}

			return a.session(cmd, func(ctx context.Context, svc *services.BoardService, _ *persistence.Gateway) error {
				task, err := svc.UpdateTask(ctx, args[0], upd)
				if err != nil {
					return err
				}
				fmt.Fprintf(out(cmd), "Updated task %s\n", task.ID)
				return nil
			})
		},
	}
	editCmd.Flags().String("title", "", "New title")
	editCmd.Flags().StringP("description", "d", "", "New description")
	editCmd.Flags().String("by", "", "New creator label")
	editCmd.Flags().StringP("priority", "p", "", "New priority (high, medium, low)")
	editCmd.Flags().String("due", "", "New due date (YYYY-MM-DD)")

	deleteCmd := &cobra.Command{
		Use:   "delete [task-id]",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.session(cmd, func(ctx context.Context, svc *services.BoardService, _ *persistence.Gateway) error {
				if err := svc.DeleteTask(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(out(cmd), "Deleted task %s\n", args[0])
				return nil
			})
		},
	}

	moveCmd := &cobra.Command{
		Use:   "move [task-id] [column-id]",
		Short: "Move a task to another column",
		Long: `Move a task to another column. Without --position the task goes to the end
of the target column; positions past the end are clamped.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, _ := cmd.Flags().GetInt("position")
			return a.session(cmd, func(ctx context.Context, svc *services.BoardService, _ *persistence.Gateway) error {
				if position < 0 {
					column, err := svc.GetColumn(args[1])
					if err != nil {
						return err
					}
					position = len(column.TaskIDs)
				}
				task, err := svc.MoveTask(ctx, args[0], args[1], position)
				if err != nil {
					return err
				}
				fmt.Fprintf(out(cmd), "Moved task %s to column %s at position %d\n", task.ID, task.ColumnID, task.Order)
				return nil
			})
		},
	}
	moveCmd.Flags().Int("position", -1, "Target position (default: end of column)")

	reorderCmd := &cobra.Command{
		Use:   "reorder [task-id] [position]",
		Short: "Change a task's position within its column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := strconv.Atoi(args[1])
			if err != nil || position < 0 {
				return fmt.Errorf("position must be a non-negative integer, got %q", args[1])
			}
			return a.session(cmd, func(ctx context.Context, svc *services.BoardService, _ *persistence.Gateway) error {
				task, err := svc.ReorderTask(ctx, args[0], position)
				if err != nil {
					return err
				}
				fmt.Fprintf(out(cmd), "Task %s is now at position %d\n", task.ID, task.Order)
				return nil
			})
		},
	}

	taskCmd.AddCommand(addCmd, editCmd, deleteCmd, moveCmd, reorderCmd)
	return taskCmd
}
