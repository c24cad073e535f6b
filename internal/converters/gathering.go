package converters

import (
	"github.com/KirkDiggler/gw2-api/internal/clients/gw2"
	"github.com/KirkDiggler/gw2-api/internal/entities/items"
	"github.com/KirkDiggler/gw2-api/internal/errors"
)

type gatheringConverter func(*gw2.Gathering) items.GatheringTool

func newGatheringTool[T any, P interface {
	*T
	items.GatheringTool
}](*gw2.Gathering) items.GatheringTool {
	return P(new(T))
}

var gatheringConverters = map[string]gatheringConverter{
	"Foraging": newGatheringTool[items.HarvestingSickle],
	"Logging":  newGatheringTool[items.LoggingAxe],
	"Mining":   newGatheringTool[items.MiningPick],
}

// ConvertGatheringTool converts the gathering sub-record of record
func ConvertGatheringTool(record *gw2.ItemDetails) (items.GatheringTool, error) {
	if record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}

	wire := record.Gathering
	if wire == nil {
		return &items.UnknownGatheringTool{}, nil
	}

	tool := lookup(gatheringConverters, wire.Type, kindGatheringType, newGatheringTool[items.UnknownGatheringTool])(wire)
	tool.GatheringTool().DefaultSkinID = parseInt("default_skin", record.DefaultSkin)

	return tool, nil
}
