package cli

import (
	"github.com/spf13/cobra"

	"github.com/shaiso/iikoctl/internal/iiko"
	"github.com/shaiso/iikoctl/internal/session"
)

// NewTerminalCmd создаёт группу команд для групп терминалов.
func NewTerminalCmd(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "terminal",
		Short: "Terminal groups",
	}

	cmd.AddCommand(newTerminalListCmd(deps))

	return cmd
}

func newTerminalListCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "list ORG_ID",
		Short: "List terminal groups of an organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := deps.Client()
			out := deps.Output()

			token, err := deps.Token(cmd.Context(), client)
			if err != nil {
				return err
			}

			resp, err := client.ListTerminalGroups(cmd.Context(), token, iiko.TerminalGroupsRequest{
				OrganizationIDs: []string{args[0]},
				IncludeDisabled: true,
			})
			if err != nil {
				return err
			}

			groups := session.FlattenTerminalGroups(resp.TerminalGroups)
			if groups == nil {
				groups = []iiko.TerminalGroup{}
			}

			headers := []string{"ID", "NAME", "ADDRESS", "ORGANIZATION_ID"}
			rows := make([][]string, len(groups))
			for i, tg := range groups {
				rows[i] = []string{tg.ID, tg.Name, tg.Address, tg.OrganizationID}
			}

			out.Print(headers, rows, groups)
			return nil
		},
	}
}
