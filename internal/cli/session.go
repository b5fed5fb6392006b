package cli

import (
	"github.com/spf13/cobra"

	"github.com/shaiso/iikoctl/internal/console"
	"github.com/shaiso/iikoctl/internal/session"
)

// RunSession возвращает RunE корневой команды: интерактивную сессию.
func RunSession(deps *Deps) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		sinks, closeSinks := deps.MenuSinks(ctx)
		defer closeSinks()
		observers, closeObservers := deps.Observers(ctx)
		defer closeObservers()

		s := session.New(session.Config{
			API:       deps.Client(),
			Console:   console.New(deps.In, deps.Out),
			APILogin:  deps.Config.APILogin,
			MenuSinks: sinks,
			Observers: observers,
		})
		return s.Run(ctx)
	}
}
