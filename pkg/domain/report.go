package domain

// Report is the caller-facing result of one pass.
type Report struct {
	Count   int      `json:"count"`
	Matches []string `json:"matches"`
}

// Notice is the payload emitted after each pass for decoupled display
// components (match list, highlight overlay). The JSON field names are part
// of the consumer contract; do not rename them.
type Notice struct {
	MatchString   string   `json:"matchString"`
	CaseSensitive bool     `json:"caseSensitive"`
	ShowMatches   bool     `json:"showMatches"`
	Matches       []string `json:"matches"`
}
