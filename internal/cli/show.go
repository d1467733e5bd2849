package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yukikurage/taskboard/internal/dto"
	"github.com/yukikurage/taskboard/internal/models"
	"github.com/yukikurage/taskboard/internal/persistence"
	"github.com/yukikurage/taskboard/internal/services"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func (a *app) showCommand() *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show [board-id]",
		Short: "Show a board with its columns and filtered tasks",
		Long: `Show a board grouped by column. Without a board id the current board is shown.

Filters combine: --search matches title or description, --priority keeps one
priority, and --due keeps overdue, today or this week's tasks.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			search, _ := cmd.Flags().GetString("search")
			rawPriority, _ := cmd.Flags().GetString("priority")
			rawDue, _ := cmd.Flags().GetString("due")
			format, _ := cmd.Flags().GetString("output")

			priority, err := models.ParsePriorityFilter(rawPriority)
			if err != nil {
				return err
			}
			dueFilter, err := models.ParseDueDateFilter(rawDue)
			if err != nil {
				return err
			}
			switch format {
			case formatText, formatJSON, formatYAML:
			default:
				return fmt.Errorf("unknown output format %q", format)
			}

			filters := models.SearchFilters{SearchTerm: search, Priority: priority, DueDateFilter: dueFilter}

			return a.session(cmd, func(ctx context.Context, svc *services.BoardService, _ *persistence.Gateway) error {
				boardID := ""
				if len(args) == 1 {
					boardID = args[0]
				} else if current, ok := svc.CurrentBoardID(); ok {
					boardID = current
				} else {
					return fmt.Errorf("no board selected; pass a board id or run 'taskboard board use'")
				}

				view, err := svc.BoardView(boardID, filters)
				if err != nil {
					return err
				}
				return writeBoardView(out(cmd), dto.NewBoardViewDTO(view, svc.Now()), format)
			})
		},
	}
	showCmd.Flags().StringP("search", "s", "", "Case-insensitive text to find in title or description")
	showCmd.Flags().StringP("priority", "p", "all", "Priority filter (all, high, medium, low)")
	showCmd.Flags().String("due", "all", "Due date filter (all, overdue, today, week)")
	showCmd.Flags().StringP("output", "o", formatText, "Output format (text, json, yaml)")
	return showCmd
}

func writeBoardView(w io.Writer, view dto.BoardViewDTO, format string) error {
	switch format {
	case formatJSON:
		data, err := sonic.ConfigStd.MarshalIndent(view, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case formatYAML:
		// Round-trip through JSON so YAML keys match the API field names.
		data, err := sonic.ConfigStd.Marshal(view)
		if err != nil {
			return err
		}
		var doc map[string]interface{}
		if err := sonic.ConfigStd.Unmarshal(data, &doc); err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}

	fmt.Fprintf(w, "%s (%s)\n", view.Board.Title, view.Board.ID)
	if view.Board.Description != "" {
		fmt.Fprintf(w, "%s\n", view.Board.Description)
	}
	for _, column := range view.Columns {
		fmt.Fprintf(w, "\n== %s (%d) [%s] ==\n", column.Title, len(column.Tasks), column.ID)
		if len(column.Tasks) == 0 {
			fmt.Fprintln(w, "  (no tasks)")
			continue
		}
		for _, t := range column.Tasks {
			line := fmt.Sprintf("  %d. [%s] %s  due %s", t.Order, t.Priority, t.Title, t.DueLabel)
			if t.Overdue {
				line += " (overdue)"
			}
			fmt.Fprintf(w, "%s  %s\n", line, t.ID)
		}
	}
	return nil
}
