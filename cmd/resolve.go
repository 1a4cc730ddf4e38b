package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"storefront/core/variant"

	"github.com/spf13/cobra"
)

// resolveCmd prints the view and cart line for one product selection.
var resolveCmd = &cobra.Command{
	Use:   "resolve [product-id]",
	Short: "Resolve a color/size selection for a product",
	Long: `Prints the resolved view (options, sizes for the color, media, defaults, variant)
and, when the selection is complete, the cart line. The product is read from the
configured source, or from a local JSON document with --file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		file, _ := cmd.Flags().GetString("file")
		color, _ := cmd.Flags().GetString("color")
		size, _ := cmd.Flags().GetString("size")

		var doc variant.Document
		switch {
		case file != "":
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", file, err)
			}
			if err := json.Unmarshal(data, &doc); err != nil {
				return fmt.Errorf("failed to decode %s: %w", file, err)
			}
		case len(args) == 1:
			rt, err := bootstrap(ctx)
			if err != nil {
				return err
			}
			defer rt.close(ctx)
			if doc, err = rt.primary().FetchProduct(ctx, args[0]); err != nil {
				return err
			}
		default:
			return fmt.Errorf("a product id or --file is required")
		}

		p, err := variant.FormatProduct(doc)
		if err != nil {
			return err
		}
		if p.IDString() == "" && len(args) == 1 {
			p.ID = args[0]
		}

		sel := variant.Selection{}
		if color != "" {
			sel.ColorID = color
		}
		if size != "" {
			sel.SizeID = size
		}

		out := map[string]any{
			"schema": p.Schema().String(),
			"view":   variant.BuildView(p, sel),
		}
		if line, err := variant.Commit(p, sel); err != nil {
			out["cartLineError"] = err.Error()
		} else {
			out["cartLine"] = line
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func init() {
	RootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().String("color", "", "Color option id or display value")
	resolveCmd.Flags().String("size", "", "Size option id or display value")
	resolveCmd.Flags().String("file", "", "Read the product from a local JSON file")
}
