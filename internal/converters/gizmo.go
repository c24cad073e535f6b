package converters

import (
	"github.com/KirkDiggler/gw2-api/internal/clients/gw2"
	"github.com/KirkDiggler/gw2-api/internal/entities/items"
	"github.com/KirkDiggler/gw2-api/internal/errors"
)

type gizmoConverter func(*gw2.Gizmo) items.Gizmo

func newGizmo[T any, P interface {
	*T
	items.Gizmo
}](*gw2.Gizmo) items.Gizmo {
	return P(new(T))
}

var gizmoConverters = map[string]gizmoConverter{
	"Default":             newGizmo[items.DefaultGizmo],
	"ContainerKey":        newGizmo[items.ContainerKey],
	"RentableContractNpc": newGizmo[items.RentableContractNpc],
	"UnlimitedConsumable": newGizmo[items.UnlimitedConsumable],
}

// ConvertGizmo converts the gizmo sub-record of record
func ConvertGizmo(record *gw2.ItemDetails) (items.Gizmo, error) {
	if record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}
	if record.Gizmo == nil {
		return &items.UnknownGizmo{}, nil
	}
	wire := record.Gizmo
	return lookup(gizmoConverters, wire.Type, kindGizmoType, newGizmo[items.UnknownGizmo])(wire), nil
}
