package sources

import (
	"fmt"
	"time"
)

// Registry maps portal names to their configuration.
type Registry struct {
	configs map[Name]Config
	unified UnifiedConfig
}

// NewRegistry builds a registry from explicit configs.
func NewRegistry(unified UnifiedConfig, configs ...Config) (*Registry, error) {
	r := &Registry{configs: make(map[Name]Config, len(configs)), unified: unified}
	for _, c := range configs {
		if !c.Name.IsValid() {
			return nil, fmt.Errorf("unknown source %q", c.Name)
		}
		if _, exists := r.configs[c.Name]; exists {
			return nil, fmt.Errorf("source %s already registered", c.Name)
		}
		if len(c.RequiredParams) == 0 {
			return nil, fmt.Errorf("source %s declares no search parameters", c.Name)
		}
		if c.ResponseTime.Max < c.ResponseTime.Min {
			return nil, fmt.Errorf("source %s has an inverted latency range", c.Name)
		}
		r.configs[c.Name] = c
	}
	return r, nil
}

// DefaultRegistry returns the production portal configuration.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(
		UnifiedConfig{Timeout: 30 * time.Second, CacheTTL: 10 * time.Minute},
		Config{
			Name:           DORIS,
			DisplayName:    "DORIS",
			Description:    "Digital Online Registration Information System",
			Timeout:        8 * time.Second,
			RateLimits:     RateLimits{RequestsPerMinute: 50, BurstLimit: 8},
			RequiredParams: []string{ParamPropertyID, ParamRegistrationNumber},
			OptionalParams: []string{ParamDistrict, ParamSubRegistrarOffice},
			ResponseTime:   LatencyRange{Min: 300 * time.Millisecond, Max: 800 * time.Millisecond},
		},
		Config{
			Name:           DLR,
			DisplayName:    "DLR",
			Description:    "Department of Land Records",
			Timeout:        12 * time.Second,
			RateLimits:     RateLimits{RequestsPerMinute: 40, BurstLimit: 6},
			RequiredParams: []string{ParamPropertyID, ParamRegistrationNumber, ParamOwnerName},
			OptionalParams: []string{ParamSurveyNumber, ParamDistrict, ParamVillage},
			ResponseTime:   LatencyRange{Min: 500 * time.Millisecond, Max: 1000 * time.Millisecond},
		},
		Config{
			Name:           CERSAI,
			DisplayName:    "CERSAI",
			Description:    "Central Registry of Securitisation Asset Reconstruction and Security Interest",
			Timeout:        15 * time.Second,
			RateLimits:     RateLimits{RequestsPerMinute: 30, BurstLimit: 5},
			RequiredParams: []string{ParamAssetID, ParamPropertyID, ParamBorrowerName},
			OptionalParams: []string{ParamLenderName, ParamSecurityType},
			ResponseTime:   LatencyRange{Min: 700 * time.Millisecond, Max: 1500 * time.Millisecond},
		},
		Config{
			Name:           MCA21,
			DisplayName:    "MCA21",
			Description:    "Ministry of Corporate Affairs",
			Timeout:        20 * time.Second,
			RateLimits:     RateLimits{RequestsPerMinute: 20, BurstLimit: 4},
			RequiredParams: []string{ParamCINNumber, ParamCompanyName, ParamPropertyID},
			OptionalParams: []string{ParamDirectorName, ParamRegisteredOffice},
			ResponseTime:   LatencyRange{Min: 800 * time.Millisecond, Max: 2000 * time.Millisecond},
		},
	)
	if err != nil {
		panic(err)
	}
	return r
}

// Get returns the configuration for a portal.
func (r *Registry) Get(n Name) (Config, bool) {
	c, ok := r.configs[n]
	return c, ok
}

// MustGet is Get for names known at compile time.
func (r *Registry) MustGet(n Name) Config {
	c, ok := r.configs[n]
	if !ok {
		panic(fmt.Sprintf("source %s not registered", n))
	}
	return c
}

// Unified returns the cross-portal endpoint configuration.
func (r *Registry) Unified() UnifiedConfig {
	return r.unified
}

// Names returns registered portals in precedence order.
func (r *Registry) Names() []Name {
	out := make([]Name, 0, len(r.configs))
	for _, n := range All {
		if _, ok := r.configs[n]; ok {
			out = append(out, n)
		}
	}
	return out
}
