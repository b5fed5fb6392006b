package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/shaiso/iikoctl/internal/iiko"
	"github.com/shaiso/iikoctl/internal/mq"
	"github.com/shaiso/iikoctl/internal/repo"
)

// ErrOrderNotFound — order/by_id не вернул заказ.
var ErrOrderNotFound = errors.New("order not found")

// NewOrderCmd создаёт группу команд для заказов.
func NewOrderCmd(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Orders: status, journal, events",
	}

	cmd.AddCommand(
		newOrderStatusCmd(deps),
		newOrderHistoryCmd(deps),
		newOrderEventsCmd(deps),
	)

	return cmd
}

func newOrderStatusCmd(deps *Deps) *cobra.Command {
	var orgID string

	cmd := &cobra.Command{
		Use:   "status ORDER_ID",
		Short: "Show order status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := deps.Client()
			out := deps.Output()

			if orgID == "" {
				found, err := journalOrganization(cmd.Context(), deps, args[0])
				if err != nil {
					return err
				}
				orgID = found
			}

			token, err := deps.Token(cmd.Context(), client)
			if err != nil {
				return err
			}

			resp, err := client.GetOrdersByID(cmd.Context(), token, iiko.OrdersByIDRequest{
				OrderIDs:        []string{args[0]},
				OrganizationIDs: []string{orgID},
			})
			if err != nil {
				return err
			}
			if len(resp.Orders) == 0 {
				return fmt.Errorf("%w: %s", ErrOrderNotFound, args[0])
			}

			headers := []string{"ID", "POS_ID", "EXTERNAL_NUMBER", "CREATION_STATUS", "STATUS", "NUMBER", "SUM", "ERROR"}
			rows := make([][]string, len(resp.Orders))
			for i, o := range resp.Orders {
				rows[i] = orderStatusRow(o)
			}

			out.Print(headers, rows, resp.Orders)
			return nil
		},
	}

	cmd.Flags().StringVar(&orgID, "org", "", "Organization ID (default: taken from the order journal)")

	return cmd
}

// journalOrganization находит организацию заказа в журнале.
func journalOrganization(ctx context.Context, deps *Deps, orderID string) (string, error) {
	orders, closeJournal, err := deps.Journal(ctx)
	if err != nil {
		return "", fmt.Errorf("--org is not set: %w", err)
	}
	defer closeJournal()

	placed, err := orders.GetByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return "", fmt.Errorf("%w in journal: %s (use --org)", ErrOrderNotFound, orderID)
	}
	if err != nil {
		return "", err
	}
	return placed.OrganizationID, nil
}

func orderStatusRow(o iiko.OrderInfo) []string {
	status, number, sum := "", "", ""
	if d := o.Order; d != nil {
		status = d.Status
		sum = d.Sum.String()
		if d.Number != nil {
			number = strconv.FormatInt(*d.Number, 10)
		}
	}
	errMsg := ""
	if o.ErrorInfo != nil {
		errMsg = o.ErrorInfo.Message
	}
	return []string{o.ID, o.PosID, o.ExternalNumber, o.CreationStatus, status, number, sum, errMsg}
}

func newOrderHistoryCmd(deps *Deps) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List orders recorded in the journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := deps.Output()

			orders, closeJournal, err := deps.Journal(cmd.Context())
			if err != nil {
				return err
			}
			defer closeJournal()

			placed, err := orders.ListRecent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			headers := []string{"ID", "EXTERNAL_NUMBER", "ORGANIZATION_ID", "PRODUCT", "AMOUNT", "TOTAL", "STATUS", "CREATED"}
			rows := make([][]string, len(placed))
			for i, p := range placed {
				rows[i] = []string{
					p.OrderID,
					p.ExternalNumber,
					p.OrganizationID,
					p.ProductName,
					strconv.Itoa(p.Amount),
					p.Total().String(),
					p.CreationStatus,
					p.CreatedAt.Format(time.DateTime),
				}
			}

			out.Print(headers, rows, placed)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", repo.DefaultHistoryLimit, "Maximum number of orders")

	return cmd
}

func newOrderEventsCmd(deps *Deps) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Print order.placed events from RabbitMQ until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := deps.Output()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			conn, err := deps.Broker(ctx)
			if err != nil {
				return err
			}
			defer conn.Close()

			consumer := mq.NewConsumer(conn, deps.Logger, mq.ConsumerConfig{
				Queue: mq.QueueOrdersPlaced,
				Limit: count,
				Handler: func(_ context.Context, msg *mq.Message) error {
					p, err := mq.ParsePayload[mq.OrderPlacedPayload](msg)
					if err != nil {
						return err
					}
					out.Print(
						[]string{"MESSAGE_ID", "ORDER_ID", "PRODUCT", "AMOUNT", "TOTAL", "STATUS"},
						[][]string{{msg.ID, p.OrderID, p.ProductName, strconv.Itoa(p.Amount), p.Total.String(), p.CreationStatus}},
						msg,
					)
					return nil
				},
			})

			err = consumer.Run(ctx)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().IntVar(&count, "count", 0, "Stop after N events (0 = until interrupted)")

	return cmd
}
