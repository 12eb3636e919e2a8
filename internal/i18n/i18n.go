// Package i18n provides internationalization support for the order service.
// It handles translation of user-facing messages and validation messages.
package i18n

import (
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const (
	// DefaultLocale is the default language locale (Spanish).
	DefaultLocale = "es"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once

	// supportedLocales is ordered to match the tags handed to matcher; the first is the fallback.
	supportedLocales = []string{"es", "en"}
	matcher          = language.NewMatcher([]language.Tag{language.Spanish, language.English})
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// TranslateAll translates every message key of a field-keyed map.
func (t *Translator) TranslateAll(keys map[string][]string, locale string) map[string][]string {
	if keys == nil {
		return nil
	}
	out := make(map[string][]string, len(keys))
	for field, fieldKeys := range keys {
		msgs := make([]string, len(fieldKeys))
		for i, k := range fieldKeys {
			msgs[i] = t.Translate(k, locale)
		}
		out[field] = msgs
	}
	return out
}

// GetLocale negotiates the response locale from the Accept-Language header.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}
	return MatchLocale(acceptLang)
}

// MatchLocale returns the best supported locale for an Accept-Language value.
func MatchLocale(acceptLang string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLang)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}

	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No || idx < 0 || idx >= len(supportedLocales) {
		return DefaultLocale
	}
	return supportedLocales[idx]
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"es": {
			// Error messages
			ErrKeyInvalidRequest:     "Solicitud inválida",
			ErrKeyInvalidRequestBody: "El cuerpo de la solicitud no es válido",
			ErrKeyInternalError:      "Ocurrió un error inesperado",
			ErrKeyUnauthorized:       "No autorizado",
			ErrKeyAPIKeyRequired:     "La clave de API es obligatoria",
			ErrKeyInvalidAPIKey:      "Clave de API inválida",
			ErrKeyForbidden:          "Prohibido",
			ErrKeyNotFound:           "No encontrado",
			ErrKeyRateLimitExceeded:  "Demasiadas solicitudes, intente más tarde",
			ErrKeyConflict:           "Conflicto",
			ErrKeyInvalidToken:       "Token inválido o expirado",
			ErrKeyTokenRequired:      "El token de autenticación es obligatorio",
			ErrKeyTimeout:            "La solicitud excedió el tiempo de espera",
			ErrKeyServiceUnavailable: "Servicio no disponible",

			// Orders
			ErrKeyValidation:   "Error de validación",
			ErrKeyOrdersList:   "Error al traer los pedidos",
			ErrKeyOrderCreate:  "Error al crear el pedido",
			ErrKeyOrdersFilter: "Error al filtrar los pedidos",

			// Validation messages
			ValKeyFechaRequired:         "La fecha de pedido es obligatoria",
			ValKeyFechaDate:             "La fecha debe ser formato de fecha",
			ValKeyDetalleArray:          "El detalle debe de ser un arreglo",
			ValKeyClientRequired:        "El cliente es requerido",
			ValKeyClientExists:          "El cliente debe estar registrado",
			ValKeyProductRequired:       "El producto es obligatorio",
			ValKeyProductExists:         "Seleccione un producto existente",
			ValKeyCantidadRequired:      "La cantidad es obligatoria",
			ValKeyCantidadNumeric:       "La cantidad debe de ser un numero",
			ValKeyPrecioRequired:        "El precio es obligatorio",
			ValKeyPrecioNumeric:         "El precio debe de ser un numero",
			ValKeyFilterClientRequired:  "El ID del cliente es obligatorio",
			ValKeyFilterCategoriaExists: "La categoría debe estar registrada",
			ValKeyFilterProductoExists:  "El producto debe estar registrado",
			ValKeyInvalid:               "El valor no es válido",

			// Success messages
			SuccessKeyOrdersListed:   "Pedidos",
			SuccessKeyOrderCreated:   "Pedido creado",
			SuccessKeyOrdersFiltered: "Pedidos filtrados",
		},
		"en": {
			// Error messages
			ErrKeyInvalidRequest:     "Invalid request",
			ErrKeyInvalidRequestBody: "Invalid request body",
			ErrKeyInternalError:      "An unexpected error occurred",
			ErrKeyUnauthorized:       "Unauthorized",
			ErrKeyAPIKeyRequired:     "API key is required",
			ErrKeyInvalidAPIKey:      "Invalid API key",
			ErrKeyForbidden:          "Forbidden",
			ErrKeyNotFound:           "Not found",
			ErrKeyRateLimitExceeded:  "Too many requests, please try again later",
			ErrKeyConflict:           "Conflict",
			ErrKeyInvalidToken:       "Invalid or expired token",
			ErrKeyTokenRequired:      "Authentication token is required",
			ErrKeyTimeout:            "Request timed out",
			ErrKeyServiceUnavailable: "Service unavailable",

			// Orders
			ErrKeyValidation:   "Validation error",
			ErrKeyOrdersList:   "Error fetching orders",
			ErrKeyOrderCreate:  "Error creating the order",
			ErrKeyOrdersFilter: "Error filtering orders",

			// Validation messages
			ValKeyFechaRequired:         "The order date is required",
			ValKeyFechaDate:             "The order date must be a valid date",
			ValKeyDetalleArray:          "The detail must be an array",
			ValKeyClientRequired:        "The client is required",
			ValKeyClientExists:          "The client must be registered",
			ValKeyProductRequired:       "The product is required",
			ValKeyProductExists:         "Select an existing product",
			ValKeyCantidadRequired:      "The quantity is required",
			ValKeyCantidadNumeric:       "The quantity must be a number",
			ValKeyPrecioRequired:        "The price is required",
			ValKeyPrecioNumeric:         "The price must be a number",
			ValKeyFilterClientRequired:  "The client ID is required",
			ValKeyFilterCategoriaExists: "The category must be registered",
			ValKeyFilterProductoExists:  "The product must be registered",
			ValKeyInvalid:               "The value is invalid",

			// Success messages
			SuccessKeyOrdersListed:   "Orders",
			SuccessKeyOrderCreated:   "Order created",
			SuccessKeyOrdersFiltered: "Filtered orders",
		},
	}
}
