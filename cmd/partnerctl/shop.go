package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Manage the shop profile",
	}
	cmd.AddCommand(newShopShowCmd(), newShopSetCmd())
	return cmd
}

func newShopShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the saved shop profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}

			settings, err := app.shop.Load(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Name:    %s\n", settings.Name)
			fmt.Printf("Address: %s\n", settings.Address)
			fmt.Printf("Logo:    %s\n", presence(settings.Logo))
			fmt.Printf("Cover:   %s\n", presence(settings.CoverImage))
			return nil
		},
	}
}

func newShopSetCmd() *cobra.Command {
	var name, address, logoPath, coverPath string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update the shop profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}

			settings, err := app.shop.Load(cmd.Context())
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				settings.Name = name
			}
			if cmd.Flags().Changed("address") {
				settings.Address = address
			}
			if logoPath != "" {
				if settings.Logo, err = encodeImageFile(logoPath); err != nil {
					return err
				}
			}
			if coverPath != "" {
				if settings.CoverImage, err = encodeImageFile(coverPath); err != nil {
					return err
				}
			}

			if err := app.shop.Save(cmd.Context(), settings); err != nil {
				return err
			}
			fmt.Println("Shop profile updated.")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "shop name")
	cmd.Flags().StringVar(&address, "address", "", "shop address")
	cmd.Flags().StringVar(&logoPath, "logo", "", "logo image file")
	cmd.Flags().StringVar(&coverPath, "cover", "", "cover image file")
	return cmd
}

func presence(dataURI string) string {
	if dataURI == "" {
		return "(not set)"
	}
	return fmt.Sprintf("set (%d bytes)", len(dataURI))
}
