package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alem-hub/person-registry/internal/application/query"
	"github.com/alem-hub/person-registry/internal/infrastructure/persistence/memory"
	"github.com/alem-hub/person-registry/internal/interface/console"
	"github.com/alem-hub/person-registry/internal/interface/console/presenter"
)

func findCmd() *cobra.Command {
	var q query.FindRecordsQuery

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Search the sample records by name, surname or specialty",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			people := memory.NewPersonRepository()
			students := memory.NewStudentRepository()

			if err := console.Seed(ctx, people, students, log); err != nil {
				fmt.Fprint(cmd.OutOrStdout(), presenter.FormatError(err))
				if cfg.Run.Strict {
					return err
				}
			}

			res, err := query.NewFindRecordsHandler(people, students).Handle(ctx, q)
			if err != nil && !errors.Is(err, query.ErrNoMatches) {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), presenter.FormatSearchResult(res))
			return nil
		},
	}

	cmd.Flags().StringVar(&q.Name, "name", "", "match people and students by first name")
	cmd.Flags().StringVar(&q.Surname, "surname", "", "match people by surname")
	cmd.Flags().StringVar(&q.Specialty, "specialty", "", "match students by specialty")
	return cmd
}
