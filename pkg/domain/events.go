package domain

import "context"

// PassEvent describes one evaluation pass. Count is populated on pass end.
type PassEvent struct {
	Search        string `json:"search"`
	CaseSensitive bool   `json:"case_sensitive"`
	Commit        bool   `json:"commit"`
	Count         int    `json:"count"`
}

// BlockEvent describes the outcome of visiting a single block.
type BlockEvent struct {
	BlockID   string `json:"block_id"`
	BlockType string `json:"block_type"`
	Matches   int    `json:"matches"`
}

// MutationEvent describes one attribute update issued to the store.
type MutationEvent struct {
	BlockID   string `json:"block_id"`
	Attribute string `json:"attribute"`
}

// LifecycleHooks defines callbacks for engine observability.
// Hooks run synchronously inside the pass; keep them cheap.
type LifecycleHooks struct {
	OnPassStart  func(context.Context, *PassEvent)
	OnBlockVisit func(context.Context, *BlockEvent)
	OnMutation   func(context.Context, *MutationEvent)
	OnPassEnd    func(context.Context, *PassEvent)
}
