// Package service implements the provider registry for the numerics backend.
//
// Providers register a service definition (tools, parameters, capabilities)
// and the registry routes tool executions to them by the tool ID prefix.
// Discover performs keyword scoring over definitions so the CAS dispatcher
// can surface relevant tools for a natural-language intent.
package service
