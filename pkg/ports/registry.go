package ports

// TypeSource supplies the block types whose fields are searchable.
// Implementations must be safe for concurrent reads.
type TypeSource interface {
	// AllowedTypes returns the text-capable type names.
	AllowedTypes() []string
}
