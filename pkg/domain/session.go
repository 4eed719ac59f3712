package domain

// Session describes exactly one search (or replace) pass over the document
// tree. It is created by the caller before the pass and is immutable for the
// pass duration.
type Session struct {
	Search  string `json:"search"`
	Replace string `json:"replace,omitempty"`

	// CaseSensitive is ORed with the engine's configured default.
	CaseSensitive bool `json:"case_sensitive,omitempty"`

	// Commit distinguishes a mutating pass (true) from a dry-run that only
	// counts and records matches (false).
	Commit bool `json:"commit,omitempty"`
}

// Mode returns the human-readable pass mode, used for logs and metrics labels.
func (s Session) Mode() string {
	if s.Commit {
		return "replace"
	}
	return "search"
}
