package cmd

import (
	"fmt"
	"text/tabwriter"

	"tiffin-finder/storefront/internal/checkout"
	"tiffin-finder/storefront/internal/format"
	"tiffin-finder/storefront/internal/model"

	"github.com/spf13/cobra"
)

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Place an order for everything in the cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, ok := application.Auth.User()
		if !ok {
			return fmt.Errorf("please sign in to place an order")
		}
		payment, _ := cmd.Flags().GetString("payment")
		notes, _ := cmd.Flags().GetString("notes")

		order, err := application.Checkout.PlaceOrder(cmd.Context(), checkout.Request{
			DeliveryAddress:     user.Address,
			SpecialInstructions: notes,
			PaymentMethod:       payment,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Order %s placed with %s: %s\n", order.Reference, order.KitchenName, format.OrderStatus(order.Status))
		fmt.Fprintf(out, "Total %s, pay by %s\n", format.Currency(order.TotalAmount), order.PaymentMethod)
		fmt.Fprintf(out, "Follow it with: tiffin orders watch %s\n", order.ID)
		return nil
	},
}

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List your orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		orders, err := application.Backend.UserOrders(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(orders) == 0 {
			fmt.Fprintln(out, "You have not ordered anything yet.")
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "REFERENCE\tKITCHEN\tSTATUS\tTOTAL\tPLACED")
		for _, o := range orders {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", o.Reference, o.KitchenName,
				format.OrderStatus(o.Status), format.Currency(o.TotalAmount), o.CreatedAt.Local().Format("02 Jan 15:04"))
		}
		return w.Flush()
	},
}

var ordersWatchCmd = &cobra.Command{
	Use:   "watch <order-id>",
	Short: "Print status changes of an order until interrupted",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		stop := application.WatchSession(cmd.Context())
		defer stop()

		sub, err := application.Backend.SubscribeOrder(cmd.Context(), args[0], func(event model.ChangeEvent) {
			order := event.Record
			if current, ok := application.Cart.CurrentOrder(); ok && current.ID == order.ID {
				application.Cart.SetCurrentOrder(order)
			}
			fmt.Fprintf(out, "%s: %s\n", order.Reference, format.OrderStatus(order.Status))
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "Watching for updates, press Ctrl+C to stop.")
		<-sub.Done()
		return nil
	},
}

var kitchenOrdersCmd = &cobra.Command{
	Use:   "incoming <kitchen-id>",
	Short: "Print orders placed with your kitchen until interrupted",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		stop := application.WatchSession(cmd.Context())
		defer stop()

		sub, err := application.Backend.SubscribeKitchenOrders(cmd.Context(), args[0], func(event model.ChangeEvent) {
			order := event.Record
			fmt.Fprintf(out, "New order %s: %d items, %s\n", order.Reference, len(order.Items), format.Currency(order.TotalAmount))
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "Waiting for orders, press Ctrl+C to stop.")
		<-sub.Done()
		return nil
	},
}

var reviewCmd = &cobra.Command{
	Use:   "review <kitchen-id> <order-id>",
	Short: "Rate a kitchen for an order you received",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rating, _ := cmd.Flags().GetInt("rating")
		comment, _ := cmd.Flags().GetString("comment")
		if rating < 1 || rating > 5 {
			return fmt.Errorf("rating must be between 1 and 5")
		}

		review, err := application.Backend.CreateReview(cmd.Context(), args[0], model.NewReview{
			OrderID: args[1],
			Rating:  rating,
			Comment: comment,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Thanks! You rated this kitchen %d/5.\n", review.Rating)
		return nil
	},
}

func init() {
	checkoutCmd.Flags().String("payment", "cod", "payment method: cod or online")
	checkoutCmd.Flags().String("notes", "", "instructions for the kitchen")
	reviewCmd.Flags().Int("rating", 5, "rating from 1 to 5")
	reviewCmd.Flags().String("comment", "", "what you thought of the food")

	ordersCmd.AddCommand(ordersWatchCmd)
	kitchenCmd.AddCommand(kitchenOrdersCmd)
	rootCmd.AddCommand(checkoutCmd, ordersCmd, reviewCmd)
}
