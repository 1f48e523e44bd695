// Package server provides HTTP server setup and initialization.
//
// This package orchestrates all components:
//   - HTTP routing with Gin framework
//   - Middleware stack (request IDs, CORS, rate limiting, metrics, recovery)
//   - Engine construction from configuration
//   - Service provider registration
//
// Server Lifecycle:
//  1. Load configuration from environment/flags
//  2. Initialize logger (production or development)
//  3. Build the engine and register providers
//  4. Setup HTTP routes and middleware
//  5. Start HTTP server
//  6. Graceful shutdown on signal
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	srv, err := server.NewServer(cfg, logger)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
