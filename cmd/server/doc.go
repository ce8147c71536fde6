// Package main is the entry point for the dualgrad calculus server.
//
// The server exposes forward-mode automatic differentiation over dual
// numbers through a REST API: families of named axes are defined at
// runtime, and arithmetic and elementary function tools operate on
// values carrying one derivative slot per axis.
//
// The server provides:
//   - REST API for family definition and tool execution
//   - Service provider registry with discovery
//   - Prometheus metrics
//   - Rate limiting and CORS
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	# Production mode
//	./server -port 8000
//
//	# Development mode (colored logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
