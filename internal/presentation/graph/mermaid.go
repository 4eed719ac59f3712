package graph

import (
	"fmt"
	"strings"

	"github.com/tovenja/blocksift/pkg/domain"
)

// Overlay marks blocks to highlight on the diagram, typically the blocks a
// pass matched in.
type Overlay struct {
	MatchedBlocks []string
}

// GenerateMermaid produces a Mermaid flowchart (graph TD) of the block tree.
// Container blocks render as rectangles, text-capable leaves as rounded
// boxes, and nesting as edges from parent to child.
func GenerateMermaid(blocks []domain.Block, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for i := range blocks {
		writeBlock(&sb, &blocks[i], "")
	}

	if overlay != nil && len(overlay.MatchedBlocks) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef matched fill:#fff3cd,stroke:#b45309,stroke-width:2px,color:#000;\n")

		seen := make(map[string]bool)
		for _, id := range overlay.MatchedBlocks {
			safeID := sanitizeMermaidID(id)
			if safeID == "" || seen[safeID] {
				continue
			}
			seen[safeID] = true
			sb.WriteString(fmt.Sprintf("    class %s matched;\n", safeID))
		}
	}

	return sb.String()
}

func writeBlock(sb *strings.Builder, b *domain.Block, parentID string) {
	safeID := sanitizeMermaidID(b.ID)

	opener, closer := "(", ")"
	if len(b.InnerBlocks) > 0 {
		opener, closer = "[", "]"
	}
	fmt.Fprintf(sb, "    %s%s\"%s\"%s\n", safeID, opener, b.Type, closer)

	if parentID != "" {
		fmt.Fprintf(sb, "    %s --> %s\n", parentID, safeID)
	}

	for i := range b.InnerBlocks {
		writeBlock(sb, &b.InnerBlocks[i], safeID)
	}
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
