//go:build !integration

package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetTranslator(t *testing.T) {
	translator1 := GetTranslator()
	translator2 := GetTranslator()
	assert.NotNil(t, translator1)
	assert.Same(t, translator1, translator2)
}

func TestTranslator_Translate(t *testing.T) {
	translator := NewTranslator()

	tests := []struct {
		name     string
		key      string
		locale   string
		expected string
	}{
		{
			name:     "spanish message",
			key:      SuccessKeyOrderCreated,
			locale:   "es",
			expected: "Pedido creado",
		},
		{
			name:     "english message",
			key:      SuccessKeyOrderCreated,
			locale:   "en",
			expected: "Order created",
		},
		{
			name:     "empty locale defaults to spanish",
			key:      ValKeyClientExists,
			locale:   "",
			expected: "El cliente debe estar registrado",
		},
		{
			name:     "unsupported locale falls back to spanish",
			key:      ErrKeyValidation,
			locale:   "fr",
			expected: "Error de validación",
		},
		{
			name:     "unknown key returns key",
			key:      "unknown.key",
			locale:   "en",
			expected: "unknown.key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, translator.Translate(tt.key, tt.locale))
		})
	}
}

func TestTranslator_EveryLocaleHasEveryKey(t *testing.T) {
	messages := getDefaultMessages()
	for key := range messages[DefaultLocale] {
		for locale, localeMessages := range messages {
			_, ok := localeMessages[key]
			assert.True(t, ok, "locale %s is missing %s", locale, key)
		}
	}
}

func TestTranslator_TranslateAll(t *testing.T) {
	translator := NewTranslator()

	out := translator.TranslateAll(map[string][]string{
		"client_id":          {ValKeyClientRequired},
		"detalle.0.cantidad": {ValKeyCantidadRequired, ValKeyCantidadNumeric},
	}, "es")

	assert.Equal(t, []string{"El cliente es requerido"}, out["client_id"])
	assert.Equal(t, []string{"La cantidad es obligatoria", "La cantidad debe de ser un numero"}, out["detalle.0.cantidad"])
	assert.Nil(t, translator.TranslateAll(nil, "es"))
}

func TestGetLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		acceptLanguage string
		expected       string
	}{
		{name: "no header returns default", acceptLanguage: "", expected: DefaultLocale},
		{name: "english header", acceptLanguage: "en", expected: "en"},
		{name: "spanish header", acceptLanguage: "es", expected: "es"},
		{name: "regional variant", acceptLanguage: "en-US", expected: "en"},
		{name: "latin american spanish", acceptLanguage: "es-419", expected: "es"},
		{name: "weighted list", acceptLanguage: "fr;q=0.9,en;q=0.8", expected: "en"},
		{name: "unsupported language defaults", acceptLanguage: "ja", expected: DefaultLocale},
		{name: "case insensitive", acceptLanguage: "EN", expected: "en"},
		{name: "garbage header", acceptLanguage: ";;;", expected: DefaultLocale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.acceptLanguage != "" {
				req.Header.Set(AcceptLanguageHeader, tt.acceptLanguage)
			}
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = req

			assert.Equal(t, tt.expected, GetLocale(c))
		})
	}
}
