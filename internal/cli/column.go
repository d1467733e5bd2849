package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yukikurage/taskboard/internal/persistence"
	"github.com/yukikurage/taskboard/internal/services"
)

func (a *app) columnCommand() *cobra.Command {
	columnCmd := &cobra.Command{
		Use:   "column",
		Short: "Manage columns",
	}

	addCmd := &cobra.Command{
		Use:   "add [board-id] [title]",
		Short: "Append a column to a board",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.session(cmd, func(ctx context.Context, svc *services.BoardService, _ *persistence.Gateway) error {
				column, err := svc.CreateColumn(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Fprintf(out(cmd), "Created column %q (%s) at position %d\n", column.Title, column.ID, column.Order)
				return nil
			})
		},
	}

	renameCmd := &cobra.Command{
		Use:   "rename [column-id] [title]",
		Short: "Rename a column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.session(cmd, func(ctx context.Context, svc *services.BoardService, _ *persistence.Gateway) error {
				column, err := svc.RenameColumn(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Fprintf(out(cmd), "Renamed column %s to %q\n", column.ID, column.Title)
				return nil
			})
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [column-id]",
		Short: "Delete a column and its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.session(cmd, func(ctx context.Context, svc *services.BoardService, _ *persistence.Gateway) error {
				if err := svc.DeleteColumn(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(out(cmd), "Deleted column %s\n", args[0])
				return nil
			})
		},
	}

	columnCmd.AddCommand(addCmd, renameCmd, deleteCmd)
	return columnCmd
}
