package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/solvekit/numerics/internal/shared/types"
)

// Registry manages service discovery and execution
type Registry struct {
	services sync.Map
}

// Provider interface for service implementations
type Provider interface {
	Definition() types.Service
	Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error)
}

// NewRegistry creates a new service registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a service provider
func (r *Registry) Register(provider Provider) error {
	def := provider.Definition()
	if def.ID == "" {
		return fmt.Errorf("service ID cannot be empty")
	}

	r.services.Store(def.ID, provider)
	return nil
}

// Unregister removes a service provider
func (r *Registry) Unregister(serviceID string) {
	r.services.Delete(serviceID)
}

// Get retrieves a service by ID
func (r *Registry) Get(serviceID string) (Provider, bool) {
	val, ok := r.services.Load(serviceID)
	if !ok {
		return nil, false
	}
	return val.(Provider), true
}

// List returns all registered services
func (r *Registry) List(category *types.Category) []types.Service {
	var services []types.Service
	r.services.Range(func(_, value interface{}) bool {
		provider := value.(Provider)
		def := provider.Definition()
		if category == nil || def.Category == *category {
			services = append(services, def)
		}
		return true
	})
	sort.Slice(services, func(i, j int) bool { return services[i].ID < services[j].ID })
	return services
}

// Discover finds relevant services for a given intent
func (r *Registry) Discover(intent string, limit int) []types.Service {
	type scoredService struct {
		service types.Service
		score   float64
	}

	intentLower := strings.ToLower(intent)
	var results []scoredService

	r.services.Range(func(_, value interface{}) bool {
		provider := value.(Provider)
		def := provider.Definition()
		score := relevance(intentLower, def)
		if score > 0 {
			results = append(results, scoredService{service: def, score: score})
		}
		return true
	})

	sort.Slice(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	output := make([]types.Service, 0, limit)
	for i := 0; i < len(results) && i < limit; i++ {
		output = append(output, results[i].service)
	}
	return output
}

// Execute runs a service tool. The tool ID's prefix up to the first dot names
// the service.
func (r *Registry) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	parts := strings.SplitN(toolID, ".", 2)
	if len(parts) < 2 {
		return failure("invalid tool ID format"), fmt.Errorf("invalid tool ID format: %s", toolID)
	}

	serviceID := parts[0]
	provider, ok := r.Get(serviceID)
	if !ok {
		return failure(fmt.Sprintf("service not found: %s", serviceID)), fmt.Errorf("service not found: %s", serviceID)
	}

	return provider.Execute(ctx, toolID, params, appCtx)
}

// Stats returns registry statistics
func (r *Registry) Stats() map[string]interface{} {
	var total, totalTools int
	categories := make(map[string]int)

	r.services.Range(func(_, value interface{}) bool {
		provider := value.(Provider)
		def := provider.Definition()
		total++
		totalTools += len(def.Tools)
		categories[string(def.Category)]++
		return true
	})

	return map[string]interface{}{
		"total_services": total,
		"total_tools":    totalTools,
		"categories":     categories,
	}
}

func relevance(intent string, def types.Service) float64 {
	score := 0.0
	if strings.Contains(intent, def.ID) {
		score += 3
	}
	for _, capability := range def.Capabilities {
		if strings.Contains(intent, capability) || strings.Contains(intent, strings.ReplaceAll(capability, "_", " ")) {
			score += 2
		}
	}
	for _, tool := range def.Tools {
		if strings.Contains(intent, strings.ToLower(tool.Name)) {
			score += 1
		}
	}
	return score
}

func failure(msg string) *types.Result {
	return &types.Result{Success: false, Error: &msg}
}
