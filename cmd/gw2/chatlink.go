package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/gw2-api/internal/chatlink"
)

var link chatlink.Item

var chatlinkCmd = &cobra.Command{
	Use:   "chatlink",
	Short: "Encode and decode item chat links",
}

var chatlinkDecodeCmd = &cobra.Command{
	Use:   "decode [code]",
	Short: "Decode an item chat link such as [&AgGqtgAA]",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		decoded, err := chatlink.Decode(args[0])
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Item ID:   %d\n", decoded.ItemID)
		fmt.Fprintf(w, "Quantity:  %d\n", decoded.Quantity)
		if decoded.SkinID != 0 {
			fmt.Fprintf(w, "Skin ID:   %d\n", decoded.SkinID)
		}
		if decoded.SuffixItemID != 0 {
			fmt.Fprintf(w, "Suffix:    %d\n", decoded.SuffixItemID)
		}
		if decoded.SecondarySuffixItemID != 0 {
			fmt.Fprintf(w, "Secondary: %d\n", decoded.SecondarySuffixItemID)
		}
		return nil
	},
}

var chatlinkEncodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode an item chat link",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := link.Validate(); err != nil {
			return err
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), link.Encode())
		return err
	},
}

func init() {
	chatlinkEncodeCmd.Flags().IntVar(&link.ItemID, "item", 0, "Item ID")
	chatlinkEncodeCmd.Flags().IntVar(&link.Quantity, "quantity", 1, "Stack size (1-255)")
	chatlinkEncodeCmd.Flags().IntVar(&link.SkinID, "skin", 0, "Skin ID")
	chatlinkEncodeCmd.Flags().IntVar(&link.SuffixItemID, "suffix", 0, "Upgrade component item ID")
	chatlinkEncodeCmd.Flags().IntVar(&link.SecondarySuffixItemID, "secondary-suffix", 0, "Second upgrade component item ID")
	_ = chatlinkEncodeCmd.MarkFlagRequired("item") // nolint:errcheck // flag is defined above

	chatlinkCmd.AddCommand(chatlinkDecodeCmd)
	chatlinkCmd.AddCommand(chatlinkEncodeCmd)
}
