package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"tiffin-finder/storefront/internal/cart"
	"tiffin-finder/storefront/internal/checkout"
	"tiffin-finder/storefront/internal/format"

	"github.com/spf13/cobra"
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Show the cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		lines := application.Cart.Lines()
		if len(lines) == 0 {
			fmt.Fprintln(out, "Your cart is empty.")
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, line := range lines {
			fmt.Fprintf(w, "%s\t%s\tx%d\t%s\t%s\n",
				line.MenuItem.ID, line.MenuItem.Name, line.Quantity,
				format.Currency(line.MenuItem.Price*float64(line.Quantity)), line.SpecialInstructions)
		}
		w.Flush()

		summary := checkout.Summarize(application.Cart.Total())
		fmt.Fprintf(out, "\nSubtotal (%d items)\t%s\n", application.Cart.ItemCount(), format.Currency(summary.Subtotal))
		fmt.Fprintf(out, "Delivery Fee\t%s\n", format.Currency(summary.DeliveryFee))
		fmt.Fprintf(out, "Tax\t%s\n", format.Currency(summary.Tax))
		fmt.Fprintf(out, "Total\t%s\n", format.Currency(summary.Total))
		return nil
	},
}

var cartAddCmd = &cobra.Command{
	Use:   "add <kitchen-id> <menu-item-id>",
	Short: "Add a menu item to the cart",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		quantity, _ := cmd.Flags().GetInt("qty")
		note, _ := cmd.Flags().GetString("note")
		replace, _ := cmd.Flags().GetBool("replace")

		kitchen, err := application.Backend.Kitchen(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		for _, item := range kitchen.MenuItems {
			if item.ID != args[1] {
				continue
			}
			if !item.IsAvailable {
				return fmt.Errorf("%s is not available right now", item.Name)
			}
			if replace {
				application.Cart.Replace(item, quantity, note)
			} else if err := application.Cart.Add(item, quantity, note); err != nil {
				if errors.Is(err, cart.ErrKitchenMismatch) {
					return fmt.Errorf("%w; use --replace to start a new cart from %s", err, kitchen.Name)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %d x %s. Cart total %s\n", quantity, item.Name, format.Currency(application.Cart.Total()))
			return nil
		}
		return fmt.Errorf("menu item %s not found at %s", args[1], kitchen.Name)
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <menu-item-id>",
	Short: "Remove an item from the cart",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		application.Cart.Remove(args[0])
	},
}

var cartQtyCmd = &cobra.Command{
	Use:   "qty <menu-item-id> <quantity>",
	Short: "Set the quantity of a cart item; 0 removes it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		quantity, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid quantity %q", args[1])
		}
		application.Cart.UpdateQuantity(args[0], quantity)
		return nil
	},
}

var cartNoteCmd = &cobra.Command{
	Use:   "note <menu-item-id> <instructions...>",
	Short: "Set special instructions for a cart item",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		application.Cart.UpdateSpecialInstructions(args[0], strings.Join(args[1:], " "))
	},
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	Run: func(cmd *cobra.Command, args []string) {
		application.Cart.Clear()
	},
}

func init() {
	cartAddCmd.Flags().Int("qty", 1, "quantity to add")
	cartAddCmd.Flags().String("note", "", "special instructions")
	cartAddCmd.Flags().Bool("replace", false, "empty a cart holding another kitchen's food first")

	cartCmd.AddCommand(cartAddCmd, cartRemoveCmd, cartQtyCmd, cartNoteCmd, cartClearCmd)
	rootCmd.AddCommand(cartCmd)
}
