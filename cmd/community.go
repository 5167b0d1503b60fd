package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"glutivia/internal/repository"
)

func communityCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "community",
		Short: "Community board maintenance",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Merge legacy feedback and discussion keys into the unified board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			_, store, cleanup, err := bootstrap(ctx, *configPath)
			if err != nil {
				return err
			}
			defer cleanup()

			board := repository.NewCommunityStore(repository.NewLocker(), store, repository.CommunityOptions{})
			msgs, err := board.List(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "unified community board holds %d messages\n", len(msgs))
			return nil
		},
	})
	return cmd
}
