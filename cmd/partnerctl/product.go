package main

import (
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zenyors/whizcartt-partner/internal/domain/draft"
)

type productAddFlags struct {
	name           string
	price          string
	stock          int
	description    string
	expiryDate     string
	scheduledTime  string
	categories     []string
	attributes     []string
	variations     []string
	images         []string
	barcode        string
	discountKind   string
	discountAmount string
}

func newProductCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Manage catalog products",
	}
	cmd.AddCommand(newProductAddCmd(), newProductListCmd(), newProductDeleteCmd())
	return cmd
}

func newProductAddCmd() *cobra.Command {
	var flags productAddFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Compose and save a product",
		Example: `  partnerctl product add --name "Soap" --price 49.00 --stock 10 \
    --category Groceries \
    --attribute Scent=Lavender \
    --variation "Size=Small|Large" \
    --image ./soap.jpg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}

			sess := app.session
			if flags.barcode != "" {
				sess.ScanBarcode(flags.barcode)
			}
			if err := applyProductFlags(sess.Draft, cmd, flags); err != nil {
				return err
			}
			for _, path := range flags.images {
				dataURI, err := encodeImageFile(path)
				if err != nil {
					return err
				}
				sess.CaptureImage(dataURI)
			}

			product, err := sess.Submit(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Saved product #%d %q\n", product.ID, product.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.name, "name", "", "product name (required)")
	cmd.Flags().StringVar(&flags.price, "price", "", "product price (required)")
	cmd.Flags().IntVar(&flags.stock, "stock", 0, "stock count")
	cmd.Flags().StringVar(&flags.description, "description", "", "product description")
	cmd.Flags().StringVar(&flags.expiryDate, "expiry", "", "expiry date (ISO date)")
	cmd.Flags().StringVar(&flags.scheduledTime, "schedule", "", "scheduled publish time (ISO datetime)")
	cmd.Flags().StringArrayVar(&flags.categories, "category", nil, "category label (repeatable)")
	cmd.Flags().StringArrayVar(&flags.attributes, "attribute", nil, "attribute as name=value (repeatable)")
	cmd.Flags().StringArrayVar(&flags.variations, "variation", nil, `variation as "Name=Opt1|Opt2" (repeatable)`)
	cmd.Flags().StringArrayVar(&flags.images, "image", nil, "image file to attach (repeatable, max 5)")
	cmd.Flags().StringVar(&flags.barcode, "barcode", "", "seed the draft from a barcode before applying flags")
	cmd.Flags().StringVar(&flags.discountKind, "discount-kind", "percentage", "discount kind: percentage or fixed")
	cmd.Flags().StringVar(&flags.discountAmount, "discount-amount", "", "discount amount; enables the discount when set")
	return cmd
}

// applyProductFlags drives the draft through its manager operations the
// same way the form does, field by field.
func applyProductFlags(d *draft.Draft, cmd *cobra.Command, flags productAddFlags) error {
	if flags.name != "" {
		d.SetName(flags.name)
	}
	if flags.price != "" {
		d.SetPrice(flags.price)
	}
	if cmd.Flags().Changed("stock") {
		d.SetStock(flags.stock)
	}
	if flags.description != "" {
		d.SetDescription(flags.description)
	}
	d.SetExpiryDate(flags.expiryDate)
	d.SetScheduledTime(flags.scheduledTime)

	for _, label := range flags.categories {
		d.AddCategory(label)
	}

	for _, raw := range flags.attributes {
		name, value, ok := strings.Cut(raw, "=")
		if !ok {
			return fmt.Errorf("invalid attribute %q, want name=value", raw)
		}
		d.AddAttribute()
		i := len(d.Attributes) - 1
		d.SetAttributeName(i, name)
		d.SetAttributeValue(i, value)
	}

	for _, raw := range flags.variations {
		name, rest, ok := strings.Cut(raw, "=")
		if !ok {
			return fmt.Errorf("invalid variation %q, want Name=Opt1|Opt2", raw)
		}
		d.AddVariation()
		v := len(d.Variations) - 1
		d.SetVariationName(v, name)
		for i, opt := range strings.Split(rest, "|") {
			if i > 0 {
				d.AddOption(v)
			}
			d.SetOption(v, i, opt)
		}
	}

	if flags.discountAmount != "" {
		d.ToggleDiscount()
		d.SetDiscountKind(draft.DiscountKind(flags.discountKind))
		d.SetDiscountAmount(flags.discountAmount)
	}
	return nil
}

func newProductListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the saved catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}

			products, err := app.store.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(products) == 0 {
				fmt.Println("The catalog is empty.")
				return nil
			}
			for _, p := range products {
				line := fmt.Sprintf("#%d  %s  %s  stock:%d  images:%d", p.ID, p.Name, p.Price, p.Stock, len(p.Images))
				if len(p.Categories) > 0 {
					line += "  [" + strings.Join(p.Categories, ", ") + "]"
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}

func newProductDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}

			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			if err := app.store.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Deleted product #%d\n", id)
			return nil
		},
	}
}

// encodeImageFile reads a local image and returns it as a data URI, the
// format the capture collaborators hand to the draft.
func encodeImageFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image %s: %w", path, err)
	}
	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
