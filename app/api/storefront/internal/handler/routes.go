// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	cart "ElectroMart/app/api/storefront/internal/handler/cart"
	catalog "ElectroMart/app/api/storefront/internal/handler/catalog"
	chat "ElectroMart/app/api/storefront/internal/handler/chat"
	order "ElectroMart/app/api/storefront/internal/handler/order"
	"ElectroMart/app/api/storefront/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		rest.WithMiddlewares(
			[]rest.Middleware{serverCtx.SessionMiddleware},
			[]rest.Route{
				{
					Method:  http.MethodGet,
					Path:    "/catalog/items",
					Handler: catalog.ListCatalogItemsHandler(serverCtx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/cart",
					Handler: cart.GetCartHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/cart/add",
					Handler: cart.AddCartItemHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/cart/quantity",
					Handler: cart.SetCartQuantityHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/cart/remove",
					Handler: cart.RemoveCartItemHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/cart/clear",
					Handler: cart.ClearCartHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/chat/turn",
					Handler: chat.ConversationTurnHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/order/checkout",
					Handler: order.CheckoutHandler(serverCtx),
				},
			}...,
		),
		rest.WithPrefix("/api"),
	)
}
