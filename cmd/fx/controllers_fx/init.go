package controllers_fx

import (
	"go.uber.org/fx"

	"tripgen/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewPhotoController))
