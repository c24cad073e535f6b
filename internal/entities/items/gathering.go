package items

// GatheringTool is implemented by every gathering tool variant
type GatheringTool interface {
	Skinnable
	GatheringTool() *GatheringToolBase
}

// GatheringToolBase holds the fields every gathering tool carries
type GatheringToolBase struct {
	Base
	SkinInfo
}

// GatheringTool returns the gathering tool fields
func (g *GatheringToolBase) GatheringTool() *GatheringToolBase {
	return g
}

// HarvestingSickle is a foraging tool
type HarvestingSickle struct{ GatheringToolBase }

// LoggingAxe is a logging tool
type LoggingAxe struct{ GatheringToolBase }

// MiningPick is a mining tool
type MiningPick struct{ GatheringToolBase }

// UnknownGatheringTool is used for gathering types this module does not know
type UnknownGatheringTool struct{ GatheringToolBase }
