package domain

// Block represents one element of the editable document tree.
// Attribute values are plain strings, rich text values (RichText or a map
// carrying a "raw" key), or nested collections such as table row sections.
// The tree is acyclic by construction; blocks are owned by the content
// store, the engine only reads them and requests mutations.
type Block struct {
	ID          string         `json:"id" yaml:"id" mapstructure:"id"`
	Type        string         `json:"type" yaml:"type" mapstructure:"type"`
	Attributes  map[string]any `json:"attributes,omitempty" yaml:"attributes,omitempty" mapstructure:"attributes"`
	InnerBlocks []Block        `json:"inner_blocks,omitempty" yaml:"inner_blocks,omitempty" mapstructure:"inner_blocks"`
}

// Clone returns a deep copy of the block and its subtree.
func (b Block) Clone() Block {
	out := b
	if b.Attributes != nil {
		out.Attributes = make(map[string]any, len(b.Attributes))
		for k, v := range b.Attributes {
			out.Attributes[k] = cloneValue(v)
		}
	}
	out.InnerBlocks = CloneBlocks(b.InnerBlocks)
	return out
}

// CloneBlocks deep-copies a block sequence, preserving order.
func CloneBlocks(blocks []Block) []Block {
	if blocks == nil {
		return nil
	}
	out := make([]Block, len(blocks))
	for i, b := range blocks {
		out[i] = b.Clone()
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = cloneValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = cloneValue(val)
		}
		return out
	default:
		// Scalars and RichText values are immutable for our purposes.
		return v
	}
}

// Patch merges a partial attribute map into the block with the given ID,
// searching the tree depth-first. It reports whether the block was found.
func Patch(blocks []Block, id string, attrs map[string]any) bool {
	for i := range blocks {
		if blocks[i].ID == id {
			if blocks[i].Attributes == nil {
				blocks[i].Attributes = make(map[string]any, len(attrs))
			}
			for k, v := range attrs {
				blocks[i].Attributes[k] = v
			}
			return true
		}
		if Patch(blocks[i].InnerBlocks, id, attrs) {
			return true
		}
	}
	return false
}
