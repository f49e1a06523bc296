package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"tiffin-finder/storefront/internal/discovery"
	"tiffin-finder/storefront/internal/format"
	"tiffin-finder/storefront/internal/model"

	"github.com/spf13/cobra"
)

var kitchensCmd = &cobra.Command{
	Use:   "kitchens",
	Short: "List home kitchens near a location",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		query := discovery.Query{Origin: application.Origin(), Radius: application.Config.Radius}
		query.Text, _ = flags.GetString("query")
		query.Category, _ = flags.GetString("cuisine")
		if flags.Changed("lat") {
			query.Origin.Lat, _ = flags.GetFloat64("lat")
		}
		if flags.Changed("lng") {
			query.Origin.Lng, _ = flags.GetFloat64("lng")
		}
		if flags.Changed("radius") {
			query.Radius, _ = flags.GetFloat64("radius")
		}

		result, err := application.Search.Run(cmd.Context(), query)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if result.Warning != "" {
			fmt.Fprintln(cmd.ErrOrStderr(), result.Warning)
		}
		if len(result.Kitchens) == 0 {
			fmt.Fprintln(out, "No kitchens found. Try adjusting your search criteria.")
			return nil
		}
		printKitchens(out, result.Kitchens, query.Origin)
		return nil
	},
}

var kitchenCmd = &cobra.Command{
	Use:   "kitchen <kitchen-id>",
	Short: "Show a kitchen with its menu and reviews",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kitchen, err := application.Backend.Kitchen(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s by %s (%s)\n", kitchen.Name, kitchen.OwnerName, kitchen.CuisineType)
		fmt.Fprintf(out, "Rating %.1f from %d reviews, open %s to %s\n", kitchen.Rating, kitchen.ReviewCount, kitchen.OpeningTime, kitchen.ClosingTime)
		if kitchen.Story != "" {
			fmt.Fprintf(out, "\n%s\n", kitchen.Story)
		}

		fmt.Fprintln(out, "\nMenu")
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, item := range kitchen.MenuItems {
			availability := ""
			if !item.IsAvailable {
				availability = "sold out"
			}
			veg := "non-veg"
			if item.DietaryInfo.IsVeg {
				veg = "veg"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", item.ID, item.Name, format.Currency(item.Price), veg, availability)
		}
		w.Flush()

		if len(kitchen.Reviews) > 0 {
			fmt.Fprintln(out, "\nReviews")
			for _, review := range kitchen.Reviews {
				fmt.Fprintf(out, "%d/5 %s: %s\n", review.Rating, review.UserName, review.Comment)
			}
		}
		return nil
	},
}

func printKitchens(out io.Writer, kitchens []model.Kitchen, origin model.Coordinates) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCUISINE\tRATING\tDISTANCE")
	for _, k := range kitchens {
		distance := "-"
		if k.Address.Coordinates != nil {
			distance = fmt.Sprintf("%.1f km", discovery.Distance(origin, *k.Address.Coordinates)/1000)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1f (%d)\t%s\n", k.ID, k.Name, k.CuisineType, k.Rating, k.ReviewCount, distance)
	}
	w.Flush()
}

func init() {
	kitchensCmd.Flags().String("query", "", "search kitchens, cuisines, or dishes")
	kitchensCmd.Flags().String("cuisine", "", "only show this cuisine, e.g. \"North Indian\"")
	kitchensCmd.Flags().Float64("lat", 0, "latitude to search around")
	kitchensCmd.Flags().Float64("lng", 0, "longitude to search around")
	kitchensCmd.Flags().Float64("radius", 0, "search radius in meters")

	rootCmd.AddCommand(kitchensCmd, kitchenCmd)
}
