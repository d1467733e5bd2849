package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yukikurage/taskboard/internal/persistence"
	"github.com/yukikurage/taskboard/internal/services"
)

func (a *app) boardCommand() *cobra.Command {
	boardCmd := &cobra.Command{
		Use:   "board",
		Short: "Manage boards",
	}

	createCmd := &cobra.Command{
		Use:   "create [title]",
		Short: "Create a board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			description, _ := cmd.Flags().GetString("description")
			createdBy, _ := cmd.Flags().GetString("by")
			return a.session(cmd, func(ctx context.Context, svc *services.BoardService, _ *persistence.Gateway) error {
				board, err := svc.CreateBoard(ctx, services.CreateBoardInput{
					Title:       args[0],
					Description: description,
					CreatedBy:   createdBy,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(out(cmd), "Created board %q (%s)\n", board.Title, board.ID)
				return nil
			})
		},
	}
	createCmd.Flags().StringP("description", "d", "", "Board description")
	createCmd.Flags().String("by", "", "Creator label")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List boards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.session(cmd, func(ctx context.Context, svc *services.BoardService, _ *persistence.Gateway) error {
				boards := svc.ListBoards()
				if len(boards) == 0 {
					fmt.Fprintln(out(cmd), "No boards yet.")
					return nil
				}
				current, _ := svc.CurrentBoardID()
				for _, b := range boards {
					marker := " "
					if b.ID == current {
						marker = "*"
					}
					fmt.Fprintf(out(cmd), "%s %s  %-24s %d columns\n", marker, b.ID, b.Title, len(b.ColumnIDs))
				}
				return nil
			})
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [board-id]",
		Short: "Delete a board with its columns and tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.session(cmd, func(ctx context.Context, svc *services.BoardService, _ *persistence.Gateway) error {
				if err := svc.DeleteBoard(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(out(cmd), "Deleted board %s\n", args[0])
				return nil
			})
		},
	}

	useCmd := &cobra.Command{
		Use:   "use [board-id]",
		Short: "Select the current board, or clear the selection with --clear",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			unset, _ := cmd.Flags().GetBool("clear")
			if unset == (len(args) == 1) {
				return fmt.Errorf("pass either a board id or --clear")
			}
			return a.session(cmd, func(ctx context.Context, svc *services.BoardService, _ *persistence.Gateway) error {
				var id *string
				if !unset {
					id = &args[0]
				}
				if err := svc.SetCurrentBoard(ctx, id); err != nil {
					return err
				}
				if id == nil {
					fmt.Fprintln(out(cmd), "Cleared current board")
				} else {
					fmt.Fprintf(out(cmd), "Current board is now %s\n", *id)
				}
				return nil
			})
		},
	}
	useCmd.Flags().Bool("clear", false, "Clear the current board")

	boardCmd.AddCommand(createCmd, listCmd, deleteCmd, useCmd)
	return boardCmd
}
