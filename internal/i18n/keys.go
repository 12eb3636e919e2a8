package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates a body that is not valid JSON.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyForbidden indicates insufficient permissions.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyServiceUnavailable indicates a dependency is down.
	ErrKeyServiceUnavailable = "error.service_unavailable"
)

// Order operation keys.
const (
	ErrKeyValidation   = "error.validation"
	ErrKeyOrdersList   = "error.orders.list"
	ErrKeyOrderCreate  = "error.orders.create"
	ErrKeyOrdersFilter = "error.orders.filter"
)

// Validation message keys, one per field and rule.
const (
	ValKeyFechaRequired         = "validation.fecha_pedido.required"
	ValKeyFechaDate             = "validation.fecha_pedido.date"
	ValKeyDetalleArray          = "validation.detalle.array"
	ValKeyClientRequired        = "validation.client_id.required"
	ValKeyClientExists          = "validation.client_id.exists"
	ValKeyProductRequired       = "validation.detalle.product_id.required"
	ValKeyProductExists         = "validation.detalle.product_id.exists"
	ValKeyCantidadRequired      = "validation.detalle.cantidad.required"
	ValKeyCantidadNumeric       = "validation.detalle.cantidad.numeric"
	ValKeyPrecioRequired        = "validation.detalle.precio.required"
	ValKeyPrecioNumeric         = "validation.detalle.precio.numeric"
	ValKeyFilterClientRequired  = "validation.filter.client_id.required"
	ValKeyFilterCategoriaExists = "validation.filter.categoria_id.exists"
	ValKeyFilterProductoExists  = "validation.filter.producto_id.exists"
	// ValKeyInvalid is used for rules without a dedicated message.
	ValKeyInvalid = "validation.invalid"
)

// Success message translation keys.
const (
	SuccessKeyOrdersListed   = "success.orders.listed"
	SuccessKeyOrderCreated   = "success.orders.created"
	SuccessKeyOrdersFiltered = "success.orders.filtered"
)
