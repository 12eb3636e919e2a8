package validation

import "github.com/guttosm/order-service/internal/i18n"

// CreateOrderRules covers dto.CreateOrderRequest.
var CreateOrderRules = RuleSet{
	Messages: map[string]string{
		"fecha_pedido.required":         i18n.ValKeyFechaRequired,
		"fecha_pedido.date":             i18n.ValKeyFechaDate,
		"detalle.array":                 i18n.ValKeyDetalleArray,
		"client_id.required":            i18n.ValKeyClientRequired,
		"client_id.exists":              i18n.ValKeyClientExists,
		"detalle.*.product_id.required": i18n.ValKeyProductRequired,
		"detalle.*.product_id.exists":   i18n.ValKeyProductExists,
		"detalle.*.cantidad.required":   i18n.ValKeyCantidadRequired,
		"detalle.*.cantidad.numeric":    i18n.ValKeyCantidadNumeric,
		"detalle.*.precio.required":     i18n.ValKeyPrecioRequired,
		"detalle.*.precio.numeric":      i18n.ValKeyPrecioNumeric,
	},
	TypeRules: map[string]string{
		"fecha_pedido": "date",
		"detalle":      "array",
	},
}

// FilterOrdersRules covers dto.FilterOrdersRequest.
var FilterOrdersRules = RuleSet{
	Messages: map[string]string{
		"client_id.required":  i18n.ValKeyFilterClientRequired,
		"client_id.exists":    i18n.ValKeyClientExists,
		"categoria_id.exists": i18n.ValKeyFilterCategoriaExists,
		"producto_id.exists":  i18n.ValKeyFilterProductoExists,
	},
}

// Exists records the "exists" rule failure for field.
func (r RuleSet) Exists(errs Errors, field string) {
	errs.Add(field, r.messageKey(field, "exists"))
}
