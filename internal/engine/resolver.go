package engine

// FieldKind classifies which attributes of a block hold replaceable text.
// It is resolved once per block from the type name.
type FieldKind int

const (
	// Unsupported marks block types outside the allowed set.
	Unsupported FieldKind = iota
	// SimpleField targets the canonical content attribute.
	SimpleField
	// CitationField targets quote-like citations, plus the legacy value
	// mirror when present.
	CitationField
	// SummaryField targets the collapsible summary line.
	SummaryField
	// TableFields targets the optional caption and every cell of the row
	// sections.
	TableFields
)

// PlanFor resolves the field plan for a block type. Callers check the type
// against the allowed registry first; every text-capable type without a
// special shape falls through to the content attribute.
func PlanFor(blockType string) FieldKind {
	switch blockType {
	case "quote", "pull-quote":
		return CitationField
	case "details":
		return SummaryField
	case "table":
		return TableFields
	default:
		return SimpleField
	}
}
