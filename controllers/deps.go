package controllers

import (
	"resto-api/config"
	"resto-api/services"
)

// Dependencies are the long-lived collaborators the handlers share. Per-request services
// are built from config.DB.
type Dependencies struct {
	Auth     services.AuthService
	Events   services.OrderEvents
	Notifier services.Notifier
	Billing  config.BillingDefaults
}

var deps Dependencies

func Setup(d Dependencies) {
	deps = d
}
