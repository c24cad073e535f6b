package converters

import (
	"github.com/KirkDiggler/gw2-api/internal/clients/gw2"
	"github.com/KirkDiggler/gw2-api/internal/entities/items"
	"github.com/KirkDiggler/gw2-api/internal/errors"
)

type toolConverter func(*gw2.Tool) items.Tool

var toolConverters = map[string]toolConverter{
	"Salvage": convertSalvageTool,
}

// ConvertTool converts the tool sub-record of record
func ConvertTool(record *gw2.ItemDetails) (items.Tool, error) {
	if record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}
	if record.Tool == nil {
		return &items.UnknownTool{}, nil
	}
	wire := record.Tool
	return lookup(toolConverters, wire.Type, kindToolType, convertUnknownTool)(wire), nil
}

func convertSalvageTool(wire *gw2.Tool) items.Tool {
	return &items.SalvageTool{Charges: parseInt("tool.charges", wire.Charges)}
}

func convertUnknownTool(*gw2.Tool) items.Tool {
	return &items.UnknownTool{}
}
