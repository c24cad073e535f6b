package items

// Container is implemented by every container variant
type Container interface {
	Item
	Container() *ContainerBase
}

// ContainerBase holds the fields every container carries
type ContainerBase struct {
	Base
}

// Container returns the container fields
func (c *ContainerBase) Container() *ContainerBase {
	return c
}

// DefaultContainer is a regular container
type DefaultContainer struct{ ContainerBase }

// GiftBox is a gift box
type GiftBox struct{ ContainerBase }

// OpenUIContainer opens a selection window
type OpenUIContainer struct{ ContainerBase }

// UnknownContainer is used for container types this module does not know
type UnknownContainer struct{ ContainerBase }
