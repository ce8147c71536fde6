// Package server wires the HTTP server together: configuration, logging,
// metrics, middleware, the service registry, and the calculus provider.
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	srv, err := server.NewServer(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	srv.Run()
package server
