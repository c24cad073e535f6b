package items

// Tool is implemented by every tool variant
type Tool interface {
	Item
	Tool() *ToolBase
}

// ToolBase holds the fields every tool carries
type ToolBase struct {
	Base
}

// Tool returns the tool fields
func (t *ToolBase) Tool() *ToolBase {
	return t
}

// SalvageTool is a salvage kit
type SalvageTool struct {
	ToolBase
	Charges int `json:"charges"`
}

// UnknownTool is used for tool types this module does not know
type UnknownTool struct{ ToolBase }
