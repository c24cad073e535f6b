// Package chatlink encodes and decodes in-game item chat codes such as
// [&AgGqtgAA].
package chatlink

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/KirkDiggler/gw2-api/internal/errors"
)

const (
	headerItem byte = 0x02

	flagSkin            byte = 0x80
	flagSuffix          byte = 0x40
	flagSecondarySuffix byte = 0x20

	maxItemID = 1<<24 - 1
)

// Item is the payload of an item chat link. Zero ids are omitted from the
// encoding.
type Item struct {
	ItemID                int
	Quantity              int
	SkinID                int
	SuffixItemID          int
	SecondarySuffixItemID int
}

// Validate reports ids that do not fit the link format. The item id is 24
// bits; skin and suffix ids are 32 bits and zero means absent.
func (l Item) Validate() error {
	vb := errors.NewValidationBuilder()

	if l.ItemID < 1 || l.ItemID > maxItemID {
		vb.Fieldf("ItemID", "must be between 1 and %d, got %d", maxItemID, l.ItemID)
	}
	extras := []struct {
		field string
		id    int
	}{
		{"SkinID", l.SkinID},
		{"SuffixItemID", l.SuffixItemID},
		{"SecondarySuffixItemID", l.SecondarySuffixItemID},
	}
	for _, e := range extras {
		if e.id < 0 || int64(e.id) > math.MaxUint32 {
			vb.Fieldf(e.field, "must be between 0 and %d, got %d", uint32(math.MaxUint32), e.id)
		}
	}

	return vb.Build()
}

// Encode returns the chat code for the item, or "" when Validate fails. A
// quantity outside 1..255 is clamped.
func (l Item) Encode() string {
	if l.Validate() != nil {
		return ""
	}

	quantity := l.Quantity
	if quantity < 1 {
		quantity = 1
	}
	if quantity > 255 {
		quantity = 255
	}

	buf := make([]byte, 0, 18)
	buf = append(buf, headerItem, byte(quantity))

	var flags byte
	if l.SkinID != 0 {
		flags |= flagSkin
	}
	if l.SuffixItemID != 0 {
		flags |= flagSuffix
	}
	if l.SecondarySuffixItemID != 0 {
		flags |= flagSecondarySuffix
	}

	id := uint32(l.ItemID) | uint32(flags)<<24
	buf = binary.LittleEndian.AppendUint32(buf, id)

	for _, extra := range []int{l.SkinID, l.SuffixItemID, l.SecondarySuffixItemID} {
		if extra != 0 {
			buf = binary.LittleEndian.AppendUint32(buf, uint32(extra))
		}
	}

	return "[&" + base64.StdEncoding.EncodeToString(buf) + "]"
}

// String implements fmt.Stringer
func (l Item) String() string {
	return l.Encode()
}

// Decode parses an item chat code
func Decode(code string) (Item, error) {
	trimmed := strings.TrimSpace(code)
	if !strings.HasPrefix(trimmed, "[&") || !strings.HasSuffix(trimmed, "]") {
		return Item{}, errors.InvalidArgumentf("chat link %q must look like [&...]", code)
	}

	raw, err := base64.StdEncoding.DecodeString(trimmed[2 : len(trimmed)-1])
	if err != nil {
		return Item{}, errors.WrapWithCode(err, errors.CodeInvalidArgument, "chat link is not valid base64")
	}
	if len(raw) < 6 {
		return Item{}, errors.InvalidArgumentf("chat link payload too short: %d bytes", len(raw))
	}
	if raw[0] != headerItem {
		return Item{}, errors.InvalidArgumentf("chat link header 0x%02x is not an item link", raw[0])
	}

	id := binary.LittleEndian.Uint32(raw[2:6])
	flags := byte(id >> 24)
	link := Item{
		ItemID:   int(id & maxItemID),
		Quantity: int(raw[1]),
	}

	rest := raw[6:]
	targets := []struct {
		flag byte
		dst  *int
	}{
		{flagSkin, &link.SkinID},
		{flagSuffix, &link.SuffixItemID},
		{flagSecondarySuffix, &link.SecondarySuffixItemID},
	}
	for _, t := range targets {
		if flags&t.flag == 0 {
			continue
		}
		if len(rest) < 4 {
			return Item{}, errors.InvalidArgument(fmt.Sprintf("chat link truncated: flags 0x%02x need more data", flags))
		}
		*t.dst = int(binary.LittleEndian.Uint32(rest[:4]))
		rest = rest[4:]
	}

	return link, nil
}
