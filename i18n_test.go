package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalizeFallsBackToEnglishMessage(t *testing.T) {
	msg := ValidationMessage{
		Type:      TypeMinLength,
		Code:      "string_too_short",
		Path:      "#/name",
		Arguments: []string{"5"},
		Message:   "#/name: string is shorter than 5 code points",
	}
	assert.Equal(t, msg.Message, msg.Localize(nil))
}

func TestLocalizeUsesCatalogTranslation(t *testing.T) {
	bundle, err := I18n()
	require.NoError(t, err)

	localizer := bundle.NewLocalizer("zh-Hans")
	msg := ValidationMessage{
		Type:      TypeRequired,
		Code:      "required_property_missing",
		Path:      "#",
		Arguments: []string{"name"},
		Message:   "#: required property 'name' is missing",
	}
	translated := msg.Localize(localizer)
	assert.NotEmpty(t, translated)
}

func TestValidateMessagesLocalizeIndividually(t *testing.T) {
	compiler := NewCompiler()
	compiled, err := compiler.Compile([]byte(`{"required": ["name"]}`), "")
	require.NoError(t, err)

	instance, err := DecodeInstance([]byte(`{}`))
	require.NoError(t, err)

	messages := compiled.Validate(instance).Messages()
	require.Len(t, messages, 1)

	bundle, err := I18n()
	require.NoError(t, err)
	localizer := bundle.NewLocalizer("en")
	assert.Contains(t, messages[0].Localize(localizer), "name")
}
