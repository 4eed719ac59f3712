package engine

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tovenja/blocksift/pkg/domain"
)

// Rule is a compiled tag-aware match rule. The zero value matches nothing,
// which is what an empty search term compiles to.
type Rule struct {
	re *regexp.Regexp
}

// Compile builds the match rule for a search term.
//
// The term is embedded verbatim unless literal is set, so regex
// metacharacters keep their raw-regex meaning; literal mode escapes them via
// regexp.QuoteMeta. Matching is whole-word and global, case-folded unless
// caseSensitive.
func Compile(search string, caseSensitive, literal bool) (*Rule, error) {
	if search == "" {
		return &Rule{}, nil
	}
	term := search
	if literal {
		term = regexp.QuoteMeta(search)
	}
	expr := `\b` + term + `\b`
	if !caseSensitive {
		expr = `(?i)` + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBadPattern, err)
	}
	return &Rule{re: re}, nil
}

// Empty reports whether the rule can never match.
func (r *Rule) Empty() bool {
	return r == nil || r.re == nil
}

// Result of applying a rule to one field text.
type Result struct {
	Text  string
	Count int
}

// Apply finds every non-overlapping, tag-safe match in text and splices the
// replacement in literally. RE2 has no lookaround, so the tag exclusion is a
// positional filter over candidates rather than part of the expression.
func (r *Rule) Apply(text, replacement string) Result {
	if r.Empty() {
		return Result{Text: text}
	}
	candidates := r.re.FindAllStringIndex(text, -1)
	if len(candidates) == 0 {
		return Result{Text: text}
	}

	var b strings.Builder
	last, kept := 0, 0
	for _, m := range candidates {
		if insideTag(text, m[0], m[1]) {
			continue
		}
		b.WriteString(text[last:m[0]])
		b.WriteString(replacement)
		last = m[1]
		kept++
	}
	if kept == 0 {
		return Result{Text: text}
	}
	b.WriteString(text[last:])
	return Result{Text: b.String(), Count: kept}
}

// insideTag reports whether the span [start,end) falls inside markup tag
// delimiters: an unclosed '<' before the span means an opening tag, a '>'
// after the span before any '<' means tag attribute text. This is the
// boundary heuristic the editor has always used, not an HTML parser; text
// containing a bare '>' is misjudged on purpose.
func insideTag(s string, start, end int) bool {
	for i := start - 1; i >= 0; i-- {
		if s[i] == '<' {
			return true
		}
		if s[i] == '>' {
			break
		}
	}
	for i := end; i < len(s); i++ {
		if s[i] == '>' {
			return true
		}
		if s[i] == '<' {
			break
		}
	}
	return false
}
