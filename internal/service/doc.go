// Package service provides the service registry for dualgrad providers.
//
// The registry maintains a catalog of available service providers and handles
// service discovery, tool execution, and relevance scoring.
//
// Components:
//   - Registry: Central service catalog
//   - Provider: Interface for service implementations
//   - Service discovery with relevance scoring
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(calculus.NewProvider())
//	services := registry.Discover("derivative", 5)
//	result, err := registry.Execute(ctx, "calculus.add", params, appCtx)
package service
