package cli

import (
	"github.com/spf13/cobra"

	"github.com/shaiso/iikoctl/internal/iiko"
)

// NewOrgCmd создаёт группу команд для организаций.
func NewOrgCmd(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "org",
		Short: "Organizations available to the API login",
	}

	cmd.AddCommand(newOrgListCmd(deps))

	return cmd
}

func newOrgListCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List organizations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := deps.Client()
			out := deps.Output()

			token, err := deps.Token(cmd.Context(), client)
			if err != nil {
				return err
			}

			resp, err := client.ListOrganizations(cmd.Context(), token, iiko.DefaultOrganizationsRequest())
			if err != nil {
				return err
			}

			headers := []string{"ID", "NAME"}
			rows := make([][]string, len(resp.Organizations))
			for i, o := range resp.Organizations {
				rows[i] = []string{o.ID, o.Name}
			}

			out.Print(headers, rows, resp.Organizations)
			return nil
		},
	}
}
