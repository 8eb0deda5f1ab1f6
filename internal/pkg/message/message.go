package message

const (
	InvalidInput     = "Invalid input."
	EventNotFound    = "Event not found."
	ServiceHealthy   = "Service is healthy."
	ServiceUnhealthy = "Service is unhealthy."

	RequestInterrupted = "The request was interrupted. Please try again."
)
