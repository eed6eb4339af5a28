package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNegotiate(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"en", LangEN},
		{"en-US,en;q=0.9", LangEN},
		{"en-GB", LangEN},
		{"zh-TW,zh;q=0.9", LangZhTW},
		{"fr-FR,en;q=0.8", LangZhTW},
		{"EN-us", LangZhTW},
		{" en", LangZhTW},
		{"", LangZhTW},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, Negotiate(tt.header))
		})
	}
}

func TestResolve_RequestedLanguage(t *testing.T) {
	v := Variants{
		LangZhTW: {"title": "龍鳳呈祥"},
		LangEN:   {"title": "Dragon and Phoenix"},
	}
	assert.Equal(t, "Dragon and Phoenix", v.Resolve("title", LangEN))
	assert.Equal(t, "龍鳳呈祥", v.Resolve("title", LangZhTW))
}

func TestResolve_FallsBackPerField(t *testing.T) {
	v := Variants{
		LangZhTW: {"title": "牡丹", "description": "絲線繡製"},
		LangEN:   {"title": "Peony", "description": ""},
	}

	got := v.ResolveAll(LangEN, "title", "description", "technique")
	assert.Equal(t, map[string]string{
		"title":       "Peony",
		"description": "絲線繡製",
		"technique":   "",
	}, got)
}

func TestResolve_UnknownLanguageUsesDefaultFirst(t *testing.T) {
	v := Variants{
		"ja":     {"title": "牡丹 (ja)"},
		LangEN:   {"title": "Peony"},
		LangZhTW: {"title": "牡丹"},
	}
	assert.Equal(t, "牡丹", v.Resolve("title", "de"))
}

func TestResolve_OnlyOtherLanguages(t *testing.T) {
	v := Variants{
		"ja": {"title": "a"},
		"de": {"title": "b"},
	}
	assert.Equal(t, "b", v.Resolve("title", LangEN))
	assert.Equal(t, []string{"de", "ja"}, v.fallbackOrder())
}

func TestResolve_EmptyNeverPanics(t *testing.T) {
	var v Variants
	assert.Equal(t, "", v.Resolve("title", LangEN))
	assert.Equal(t, "", Variants{}.Resolve("title", ""))
	assert.Empty(t, v.fallbackOrder())
}

type row struct{ lang, title string }

func (r row) Language() string          { return r.lang }
func (r row) Fields() map[string]string { return map[string]string{"title": r.title} }

func TestCollect(t *testing.T) {
	v := Collect([]row{{LangEN, "Crane"}, {LangZhTW, "仙鶴"}})
	assert.Equal(t, "Crane", v.Resolve("title", LangEN))
	assert.Equal(t, []string{LangZhTW, LangEN}, v.fallbackOrder())
}
