package i18n

import (
	"sort"
	"strings"
)

const (
	LangZhTW = "zh-tw"
	LangEN   = "en"

	// Default is served whenever the request does not ask for English.
	Default = LangZhTW
)

// Negotiate collapses an Accept-Language value to one of the two supported
// locales. Only a value starting with "en" selects English.
func Negotiate(header string) string {
	if strings.HasPrefix(header, "en") {
		return LangEN
	}
	return Default
}

// Translation is one per-language variant row of a localized entity.
type Translation interface {
	Language() string
	Fields() map[string]string
}

// Variants maps language code -> field name -> value.
type Variants map[string]map[string]string

// Collect builds a Variants set from translation rows. A later row for the
// same language replaces an earlier one.
func Collect[T Translation](rows []T) Variants {
	v := make(Variants, len(rows))
	for _, r := range rows {
		v[r.Language()] = r.Fields()
	}
	return v
}

// Resolve returns the value of field in lang when it is non-empty, otherwise
// the first non-empty value found in another language, otherwise "".
// Fallback order is Default, LangEN, then the remaining codes sorted.
func (v Variants) Resolve(field, lang string) string {
	if s := v[lang][field]; s != "" {
		return s
	}
	for _, l := range v.fallbackOrder() {
		if l == lang {
			continue
		}
		if s := v[l][field]; s != "" {
			return s
		}
	}
	return ""
}

// ResolveAll resolves every named field independently, so the result may mix
// languages.
func (v Variants) ResolveAll(lang string, fields ...string) map[string]string {
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		out[f] = v.Resolve(f, lang)
	}
	return out
}

func (v Variants) fallbackOrder() []string {
	order := make([]string, 0, len(v))
	for _, l := range []string{Default, LangEN} {
		if _, ok := v[l]; ok {
			order = append(order, l)
		}
	}
	rest := make([]string, 0, len(v))
	for l := range v {
		if l != Default && l != LangEN {
			rest = append(rest, l)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}
