package converters

import (
	"github.com/KirkDiggler/gw2-api/internal/clients/gw2"
	"github.com/KirkDiggler/gw2-api/internal/entities/items"
	"github.com/KirkDiggler/gw2-api/internal/errors"
)

type containerConverter func(*gw2.Container) items.Container

func newContainer[T any, P interface {
	*T
	items.Container
}](*gw2.Container) items.Container {
	return P(new(T))
}

var containerConverters = map[string]containerConverter{
	"Default": newContainer[items.DefaultContainer],
	"GiftBox": newContainer[items.GiftBox],
	"OpenUI":  newContainer[items.OpenUIContainer],
}

// ConvertContainer converts the container sub-record of record
func ConvertContainer(record *gw2.ItemDetails) (items.Container, error) {
	if record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}
	if record.Container == nil {
		return &items.UnknownContainer{}, nil
	}
	wire := record.Container
	return lookup(containerConverters, wire.Type, kindContainerType, newContainer[items.UnknownContainer])(wire), nil
}
