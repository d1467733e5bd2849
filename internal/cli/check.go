package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yukikurage/taskboard/internal/persistence"
	"github.com/yukikurage/taskboard/internal/services"
)

func (a *app) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the saved state is internally consistent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.session(cmd, func(ctx context.Context, svc *services.BoardService, _ *persistence.Gateway) error {
				if err := svc.Check(); err != nil {
					return fmt.Errorf("state is inconsistent: %w", err)
				}
				state := svc.Snapshot()
				fmt.Fprintf(out(cmd), "State OK: %d boards, %d columns, %d tasks\n",
					len(state.Boards), len(state.Columns), len(state.Tasks))
				return nil
			})
		},
	}
}

func (a *app) resetCommand() *cobra.Command {
	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the saved state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			yes, _ := cmd.Flags().GetBool("yes")
			if !yes {
				return fmt.Errorf("refusing to delete the saved state without --yes")
			}
			return a.session(cmd, func(ctx context.Context, _ *services.BoardService, gw *persistence.Gateway) error {
				if err := gw.Clear(ctx); err != nil {
					return err
				}
				fmt.Fprintf(out(cmd), "Deleted saved state %q\n", gw.Key())
				return nil
			})
		},
	}
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
	return resetCmd
}
