package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shaiso/iikoctl/internal/iiko"
	"github.com/shaiso/iikoctl/internal/session"
)

// TableRow — стол с названием секции.
type TableRow struct {
	ID              string `json:"id"`
	Number          *int   `json:"number"`
	Name            string `json:"name"`
	Section         string `json:"section"`
	SeatingCapacity int    `json:"seatingCapacity"`
	IsDeleted       bool   `json:"isDeleted"`
}

// NewTableCmd создаёт группу команд для столов.
func NewTableCmd(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Restaurant tables",
	}

	cmd.AddCommand(newTableListCmd(deps))

	return cmd
}

func newTableListCmd(deps *Deps) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list TERMINAL_GROUP_ID",
		Short: "List tables of a terminal group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := deps.Client()
			out := deps.Output()

			token, err := deps.Token(cmd.Context(), client)
			if err != nil {
				return err
			}

			resp, err := client.ListAvailableSections(cmd.Context(), token, iiko.SectionsRequest{
				TerminalGroupIDs: []string{args[0]},
				ReturnSchema:     true,
			})
			if err != nil {
				return err
			}

			tables := listTables(resp.RestaurantSections, all)

			headers := []string{"ID", "NUMBER", "NAME", "SECTION", "SEATS", "DELETED"}
			rows := make([][]string, len(tables))
			for i, t := range tables {
				rows[i] = []string{
					t.ID,
					tableNumber(t.Number),
					t.Name,
					t.Section,
					strconv.Itoa(t.SeatingCapacity),
					strconv.FormatBool(t.IsDeleted),
				}
			}

			out.Print(headers, rows, tables)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include deleted tables")

	return cmd
}

// listTables раскладывает секции в строки; удалённые столы — только при all.
func listTables(sections []iiko.RestaurantSection, all bool) []TableRow {
	rows := []TableRow{}
	if !all {
		for _, tc := range session.AvailableTables(sections) {
			rows = append(rows, tableRow(tc.Table, tc.Section))
		}
		return rows
	}
	for _, s := range sections {
		for _, t := range s.Tables {
			rows = append(rows, tableRow(t, s))
		}
	}
	return rows
}

func tableNumber(n *int) string {
	if n == nil {
		return "-"
	}
	return strconv.Itoa(*n)
}

func tableRow(t iiko.Table, s iiko.RestaurantSection) TableRow {
	return TableRow{
		ID:              t.ID,
		Number:          t.Number,
		Name:            session.TableLabel(t),
		Section:         s.Name,
		SeatingCapacity: t.SeatingCapacity,
		IsDeleted:       t.IsDeleted,
	}
}
