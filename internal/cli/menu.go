package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shaiso/iikoctl/internal/iiko"
	"github.com/shaiso/iikoctl/internal/order"
	"github.com/shaiso/iikoctl/internal/store"
)

// MenuSummary — сводка меню для menu show.
type MenuSummary struct {
	OrganizationID    string `json:"organizationId"`
	CorrelationID     string `json:"correlationId"`
	Revision          int64  `json:"revision"`
	Groups            int    `json:"groups"`
	ProductCategories int    `json:"productCategories"`
	Products          int    `json:"products"`
	Sizes             int    `json:"sizes"`
}

// ProductRow — продукт с ценой первой записи sizePrices.
type ProductRow struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	SizeID *string `json:"sizeId"`
	Price  string  `json:"price"`
}

// NewMenuCmd создаёт группу команд для номенклатуры.
func NewMenuCmd(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Organization menu (nomenclature)",
	}

	cmd.AddCommand(
		newMenuShowCmd(deps),
		newMenuProductsCmd(deps),
	)

	return cmd
}

// menuLoader — хранилище, из которого читается сохранённое меню.
type menuLoader interface {
	Name() string
	LoadMenu(ctx context.Context, organizationID string) ([]byte, error)
}

var (
	_ menuLoader = (*store.FileSink)(nil)
	_ menuLoader = (*store.RedisSink)(nil)
)

func fetchMenu(cmd *cobra.Command, deps *Deps, orgID, startRevision string, cached bool) (*iiko.Nomenclature, error) {
	if cached {
		return loadCachedMenu(cmd.Context(), deps, orgID)
	}

	client := deps.Client()
	token, err := deps.Token(cmd.Context(), client)
	if err != nil {
		return nil, err
	}
	return client.GetMenu(cmd.Context(), token, orgID, startRevision)
}

// loadCachedMenu читает меню, сохранённое ранее: сначала Redis, затем файл.
func loadCachedMenu(ctx context.Context, deps *Deps, orgID string) (*iiko.Nomenclature, error) {
	sinks, closeSinks := deps.MenuSinks(ctx)
	defer closeSinks()

	for i := len(sinks) - 1; i >= 0; i-- {
		loader, ok := sinks[i].(menuLoader)
		if !ok {
			continue
		}

		raw, err := loader.LoadMenu(ctx, orgID)
		if err != nil {
			if !errors.Is(err, store.ErrMenuNotCached) {
				deps.Logger.Warn("failed to load cached menu", "store", loader.Name(), "error", err)
			}
			continue
		}
		return iiko.ParseNomenclature(raw)
	}

	return nil, fmt.Errorf("%w: %s", store.ErrMenuNotCached, orgID)
}

func newMenuShowCmd(deps *Deps) *cobra.Command {
	var save, cached bool
	var startRevision string

	cmd := &cobra.Command{
		Use:   "show ORG_ID",
		Short: "Show menu statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := deps.Output()
			orgID := args[0]

			menu, err := fetchMenu(cmd, deps, orgID, startRevision, cached)
			if err != nil {
				return err
			}

			summary := MenuSummary{
				OrganizationID:    orgID,
				CorrelationID:     menu.CorrelationID,
				Revision:          menu.Revision,
				Groups:            len(menu.Groups),
				ProductCategories: len(menu.ProductCategories),
				Products:          len(menu.Products),
				Sizes:             len(menu.Sizes),
			}
			out.Print(
				[]string{"REVISION", "GROUPS", "CATEGORIES", "PRODUCTS", "SIZES"},
				[][]string{{
					strconv.FormatInt(summary.Revision, 10),
					strconv.Itoa(summary.Groups),
					strconv.Itoa(summary.ProductCategories),
					strconv.Itoa(summary.Products),
					strconv.Itoa(summary.Sizes),
				}},
				summary,
			)

			if !save {
				return nil
			}

			sinks, closeSinks := deps.MenuSinks(cmd.Context())
			defer closeSinks()

			for _, sink := range sinks {
				location, err := sink.SaveMenu(cmd.Context(), orgID, menu.Raw)
				if err != nil {
					return fmt.Errorf("save menu (%s): %w", sink.Name(), err)
				}
				out.Success(fmt.Sprintf("Menu saved: %s", location))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Save the full menu to the menu dir (and Redis, if configured)")
	cmd.Flags().StringVar(&startRevision, "start-revision", "0", "Return changes since this revision")
	cmd.Flags().BoolVar(&cached, "cached", false, "Read the menu saved earlier (Redis, then the menu dir) instead of the API")
	cmd.MarkFlagsMutuallyExclusive("cached", "save")

	return cmd
}

func newMenuProductsCmd(deps *Deps) *cobra.Command {
	var limit int
	var cached bool

	cmd := &cobra.Command{
		Use:   "products ORG_ID",
		Short: "List menu products with the price used for orders",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := deps.Output()

			menu, err := fetchMenu(cmd, deps, args[0], "0", cached)
			if err != nil {
				return err
			}

			products := menu.Products
			if limit > 0 && len(products) > limit {
				products = products[:limit]
			}

			items := make([]ProductRow, len(products))
			rows := make([][]string, len(products))
			for i, p := range products {
				sizeID, price := order.ExtractSizeAndPrice(p)
				items[i] = ProductRow{ID: p.ID, Name: p.Name, SizeID: sizeID, Price: price.String()}

				size := "-"
				if sizeID != nil {
					size = *sizeID
				}
				rows[i] = []string{p.ID, p.Name, size, price.String()}
			}

			out.Print([]string{"ID", "NAME", "SIZE_ID", "PRICE"}, rows, items)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of products (0 = all)")
	cmd.Flags().BoolVar(&cached, "cached", false, "Read the menu saved earlier instead of the API")

	return cmd
}
