package services

// ServiceContainer holds instances of all the application services.
// Handlers receive it at route registration time.
type ServiceContainer struct {
	RateLookup   RateLookupSvc
	URLShortener URLShortenerSvc
}
