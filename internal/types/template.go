package types

// TemplateID selects which rendering pair (preview + document) is used for a
// draft. Adding a template means registering a new rendering pair under a new
// ID; no other component changes.
type TemplateID string

// Available templates.
const (
	TemplateClassic   TemplateID = "classic"
	TemplateModern    TemplateID = "modern"
	TemplateCompact   TemplateID = "compact"
	TemplateExecutive TemplateID = "executive"
	TemplateCanva     TemplateID = "canva"
)

// DefaultTemplate is the template selected for a fresh draft.
const DefaultTemplate = TemplateModern

// TemplateIDs lists all registered template identifiers in catalog order.
var TemplateIDs = []TemplateID{
	TemplateClassic,
	TemplateModern,
	TemplateCompact,
	TemplateExecutive,
	TemplateCanva,
}

// Valid reports whether id names a registered template.
func (id TemplateID) Valid() bool {
	for _, known := range TemplateIDs {
		if id == known {
			return true
		}
	}
	return false
}
