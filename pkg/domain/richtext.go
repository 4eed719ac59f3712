package domain

// RichText is a rich-text attribute value carrying its canonical raw markup.
type RichText struct {
	Raw string `json:"raw" yaml:"raw" mapstructure:"raw"`
}

// EffectiveText resolves the replaceable text behind an attribute value.
// Plain strings are used as-is; rich text values contribute their raw markup
// field. It returns false when the value holds no replaceable text, which
// callers treat as a silent skip rather than an error.
func EffectiveText(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case RichText:
		return t.Raw, true
	case *RichText:
		if t == nil {
			return "", false
		}
		return t.Raw, true
	case map[string]any:
		raw, ok := t["raw"].(string)
		return raw, ok
	default:
		return "", false
	}
}

// WithText rebuilds an attribute value in its original shape around new
// text, so a mutation never changes a field from rich text to plain string
// or vice versa.
func WithText(v any, text string) any {
	switch t := v.(type) {
	case string:
		return text
	case RichText:
		return RichText{Raw: text}
	case *RichText:
		return &RichText{Raw: text}
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = val
		}
		out["raw"] = text
		return out
	default:
		return v
	}
}
