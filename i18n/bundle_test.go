package i18n

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestDefaultBundle(t *testing.T) {
	b := Default()
	assert.Equal(t, language.English, b.GetDefaultLanguage())
	assert.True(t, b.HasLanguage(language.English))
	assert.True(t, b.HasLanguage(language.German))
	assert.Equal(t, []language.Tag{language.German, language.English}, b.Languages())
	assert.True(t, b.HasKey(language.German, "caporal.msg.usage"))
	assert.False(t, b.HasKey(language.French, "caporal.msg.usage"))
}

func TestBundle_Message(t *testing.T) {
	b, err := NewBundle()
	require.NoError(t, err)

	assert.Equal(t, "Usage", b.Message(language.English, "caporal.msg.usage"))
	assert.Equal(t, "Verwendung", b.Message(language.German, "caporal.msg.usage"))
	assert.Equal(t, "Usage", b.Message(language.French, "caporal.msg.usage"))
	assert.Equal(t, "no.such.key", b.Message(language.German, "no.such.key"))
	assert.Equal(t, "unknown command 'x'", b.TL(language.English, "caporal.error.unknown_command", "x"))
	assert.Equal(t, "unbekannter Befehl 'x'", b.TL(language.German, "caporal.error.unknown_command", "x"))
}

func TestBundle_Match(t *testing.T) {
	b := Default()
	assert.Equal(t, language.German, b.Match(language.MustParse("de-CH")))
	assert.Equal(t, language.English, b.Match(language.Japanese))
	assert.Equal(t, language.English, b.Match())
}

func TestBundle_AddLanguage(t *testing.T) {
	b := NewEmptyBundle()
	require.NoError(t, b.AddLanguage(language.English, map[string]string{"a": "A", "b": "B"}))

	err := b.AddLanguage(language.French, map[string]string{"a": "fr-A", "c": "fr-C"})
	assert.ErrorIs(t, err, ErrInvalidTranslations)
	assert.Contains(t, err.Error(), `"b"`)
	assert.Contains(t, err.Error(), `"c"`)
	assert.False(t, b.HasLanguage(language.French))

	require.NoError(t, b.AddLanguage(language.French, map[string]string{"a": "fr-A", "b": "fr-B"}))
	assert.Equal(t, "B", b.T("b"))
	b.SetDefaultLanguage(language.French)
	assert.Equal(t, "fr-A", b.T("a"))

	// merging into an existing language is not checked against the key set
	require.NoError(t, b.AddLanguage(language.French, map[string]string{"b": "fr-B2"}))
	assert.Equal(t, "fr-B2", b.Message(language.French, "b"))
	assert.Equal(t, "fr-A", b.Message(language.French, "a"))
}

func TestTrError(t *testing.T) {
	sentinel := NewError("caporal.error.unknown_option")
	err := sentinel.WithArgs("--fil")
	assert.Equal(t, "unknown option '--fil'", err.Error())
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, "caporal.error.unknown_option", err.Key())
	assert.Equal(t, []interface{}{"--fil"}, err.Args())

	cause := errors.New("boom")
	wrapped := NewError("caporal.error.action_failed").WithArgs("deploy").Wrap(cause)
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, "action of command 'deploy' failed: boom", wrapped.Error())
	assert.False(t, errors.Is(wrapped, sentinel))

	german := NewLanguageMessageProvider(Default(), language.German)
	assert.Equal(t, "unbekannte Option '--fil'", err.Format(german))
}

func TestTrError_NestedFormat(t *testing.T) {
	german := NewLanguageMessageProvider(Default(), language.German)
	inner := NewError("caporal.error.not_a_number").WithArgs("x")
	outer := NewError("caporal.error.missing_argument").WithArgs("a").Wrap(inner)

	assert.Equal(t, "erforderliches Argument 'a' fehlt: 'x' ist keine Zahl", outer.Format(german))
}
