package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/gw2-api/internal/clients/gw2"
	"github.com/KirkDiggler/gw2-api/internal/converters"
	entities "github.com/KirkDiggler/gw2-api/internal/entities/items"
	"github.com/KirkDiggler/gw2-api/internal/errors"
	"github.com/KirkDiggler/gw2-api/internal/services/items"
)

var refresh bool

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Item lookup and conversion commands",
}

var itemGetCmd = &cobra.Command{
	Use:   "get [item-id...]",
	Short: "Fetch and convert items from the API",
	Long:  `Fetch item records through the configured cache and print them as typed items.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runItemGet,
}

var itemConvertCmd = &cobra.Command{
	Use:   "convert [file|-]",
	Short: "Convert item_details records read from a file or stdin",
	Long: `Convert item_details JSON without contacting the API. The input may be a
single record or an array of records.`,
	Args: cobra.ExactArgs(1),
	RunE: runItemConvert,
}

func init() {
	itemGetCmd.Flags().BoolVar(&refresh, "refresh", false, "Skip the cache read")

	itemCmd.AddCommand(itemGetCmd)
	itemCmd.AddCommand(itemConvertCmd)
}

// typedItem is the printed form of a converted item
type typedItem struct {
	Type string        `json:"type"`
	Item entities.Item `json:"item"`
}

func runItemGet(cmd *cobra.Command, args []string) error {
	ids := make([]int, len(args))
	for i, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil {
			return errors.InvalidArgumentf("item id must be an integer, got %q", arg)
		}
		ids[i] = id
	}

	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.close()

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.API.Timeout)
	defer cancel()

	out := make([]typedItem, 0, len(ids))
	for _, id := range ids {
		got, err := a.service.GetItem(ctx, &items.GetItemInput{ItemID: id, Refresh: refresh})
		if err != nil {
			return fmt.Errorf("failed to get item %d: %w", id, err)
		}
		out = append(out, typedItem{Type: entities.TypeName(got.Item), Item: got.Item})
	}

	return printItems(cmd.OutOrStdout(), out)
}

func runItemConvert(cmd *cobra.Command, args []string) error {
	var in io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer func() {
			_ = f.Close() // nolint:errcheck // read-only file
		}()
		in = f
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	records, err := decodeRecords(data)
	if err != nil {
		return err
	}

	converted, err := converters.New().ConvertAll(records)
	if err != nil {
		return err
	}

	out := make([]typedItem, len(converted))
	for i, item := range converted {
		out[i] = typedItem{Type: entities.TypeName(item), Item: item}
	}
	return printItems(cmd.OutOrStdout(), out)
}

// decodeRecords accepts one record or an array of records
func decodeRecords(data []byte) ([]*gw2.ItemDetails, error) {
	var records []*gw2.ItemDetails
	if err := json.Unmarshal(data, &records); err == nil {
		return records, nil
	}

	record := &gw2.ItemDetails{}
	if err := json.Unmarshal(data, record); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "input is not an item record")
	}
	return []*gw2.ItemDetails{record}, nil
}

func printItems(w io.Writer, out []typedItem) error {
	var payload any = out
	if len(out) == 1 {
		payload = out[0]
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal items: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
