package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/order-service/internal/middleware"
)

// RouteGroup registers a set of routes on a router group.
type RouteGroup interface {
	RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

// OrderRoutes registers the /pedidos routes.
type OrderRoutes struct {
	handler *OrderHandler
}

// NewOrderRoutes creates the order route group.
func NewOrderRoutes(handler *OrderHandler) *OrderRoutes {
	return &OrderRoutes{handler: handler}
}

// RegisterRoutes mounts list, create and filter under rg. With JWT auth on,
// reads need orders:read and creation needs orders:write.
func (r *OrderRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	var read, write []gin.HandlerFunc
	if cfg.TokenValidator != nil {
		read = []gin.HandlerFunc{middleware.RequireRole(middleware.RoleOrdersRead, middleware.RoleOrdersWrite)}
		write = []gin.HandlerFunc{middleware.RequireRole(middleware.RoleOrdersWrite)}
	}

	pedidos := rg.Group("/pedidos")
	pedidos.GET("", chain(read, r.handler.ListOrders)...)
	pedidos.POST("", chain(write, r.handler.CreateOrder)...)
	pedidos.GET("/filtrar", chain(read, r.handler.FilterOrders)...)
}

func chain(guards []gin.HandlerFunc, handler gin.HandlerFunc) []gin.HandlerFunc {
	return append(append(make([]gin.HandlerFunc, 0, len(guards)+1), guards...), handler)
}
