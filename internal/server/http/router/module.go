package router

import "go.uber.org/fx"

// OrderServiceModule registers the order service router for fx runtime.
var OrderServiceModule = fx.Provide(NewOrderServiceRouter)

// AdminModule registers the admin router for fx runtime.
var AdminModule = fx.Provide(NewAdminRouter)
