package items

// Gizmo is implemented by every gizmo variant
type Gizmo interface {
	Item
	Gizmo() *GizmoBase
}

// GizmoBase holds the fields every gizmo carries
type GizmoBase struct {
	Base
}

// Gizmo returns the gizmo fields
func (g *GizmoBase) Gizmo() *GizmoBase {
	return g
}

// DefaultGizmo is a regular gizmo
type DefaultGizmo struct{ GizmoBase }

// ContainerKey opens a locked container
type ContainerKey struct{ GizmoBase }

// RentableContractNpc summons an NPC for a limited time
type RentableContractNpc struct{ GizmoBase }

// UnlimitedConsumable is a consumable with unlimited uses
type UnlimitedConsumable struct{ GizmoBase }

// UnknownGizmo is used for gizmo types this module does not know
type UnknownGizmo struct{ GizmoBase }
