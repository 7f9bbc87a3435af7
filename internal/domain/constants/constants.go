// Package constants holds shared identifiers used across layers.
package constants

// EnvDevelop is the environment assumed when none is configured
const EnvDevelop = "develop"

// Push channel frame types
const (
	// PushEventRegister registers the session user on a fresh connection
	PushEventRegister = "addNewUser"
	// PushEventSend notifies the counterparty of a sent message
	PushEventSend = "sendMessage"
	// PushEventReceive is an inbound delivery notification
	PushEventReceive = "getMessage"
)

// Location providers
const (
	LocationProviderStatic = "static"
	LocationProviderNone   = "none"
)

// CategoryAll disables the product category filter
const CategoryAll = "All"
