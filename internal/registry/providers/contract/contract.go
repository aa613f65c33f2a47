// Package contract checks that portal adapters honour the envelope contract.
package contract

import (
	"context"
	"net/http"
	"testing"

	"proplink/internal/registry/models"
	"proplink/internal/registry/providers"
	dErrors "proplink/pkg/domain-errors"
	"proplink/pkg/requestcontext"
)

// ContractTest defines a successful lookup and its custom checks
type ContractTest struct {
	Name         string
	Provider     providers.Provider
	Input        map[string]string
	ValidateFunc func(resp *models.SourceResponse) error
}

// ContractSuite is a collection of contract tests for one portal
type ContractSuite struct {
	Source string // upper-case portal label
	Tests  []ContractTest
}

// Run executes all contract tests in the suite
func (s *ContractSuite) Run(t *testing.T) {
	for _, test := range s.Tests {
		t.Run(test.Name, func(t *testing.T) {
			ctx := requestcontext.WithRequestID(context.Background(), "contract-"+test.Name)

			resp := test.Provider.Search(ctx, test.Input)
			if resp == nil {
				t.Fatal("adapter returned no envelope")
			}
			if !resp.Success {
				t.Fatalf("lookup failed: %+v", resp.Errors)
			}

			if resp.Source != s.Source {
				t.Errorf("expected source %s, got %s", s.Source, resp.Source)
			}
			if resp.Status != http.StatusOK {
				t.Errorf("expected status 200, got %d", resp.Status)
			}
			if resp.RequestID != "contract-"+test.Name {
				t.Errorf("request id not propagated: %q", resp.RequestID)
			}
			if resp.Timestamp.IsZero() {
				t.Error("Timestamp not set")
			}
			if resp.Data == nil {
				t.Error("Data not set")
			}
			if len(resp.Errors) != 0 {
				t.Errorf("successful envelope carries errors: %+v", resp.Errors)
			}

			if test.ValidateFunc != nil {
				if err := test.ValidateFunc(resp); err != nil {
					t.Errorf("custom validation failed: %v", err)
				}
			}
		})
	}
}

// ConfigTest validates that the portal configuration is usable
type ConfigTest struct {
	Provider providers.Provider
}

// Run executes a config test
func (ct *ConfigTest) Run(t *testing.T) {
	cfg := ct.Provider.Config()

	if cfg.Name != ct.Provider.Source() {
		t.Errorf("config names %s but adapter serves %s", cfg.Name, ct.Provider.Source())
	}
	if len(cfg.RequiredParams) == 0 {
		t.Error("no search parameters declared")
	}
	if cfg.Timeout <= 0 {
		t.Error("timeout not set")
	}
	if cfg.RateLimits.RequestsPerMinute <= 0 || cfg.RateLimits.BurstLimit <= 0 {
		t.Error("rate limits not set")
	}
	if cfg.ResponseTime.Max >= cfg.Timeout {
		t.Errorf("simulated latency %s can exceed timeout %s", cfg.ResponseTime.Max, cfg.Timeout)
	}

	t.Logf("Portal %s:", cfg.Name.Label())
	t.Logf("  Timeout: %s", cfg.Timeout)
	t.Logf("  Limits: %d/min, burst %d", cfg.RateLimits.RequestsPerMinute, cfg.RateLimits.BurstLimit)
	t.Logf("  Params: %v", cfg.Params())
}

// ErrorContractTest validates that adapter failures follow the taxonomy
type ErrorContractTest struct {
	Name          string
	Provider      providers.Provider
	Input         map[string]string
	ExpectedCode  dErrors.Code
	ExpectedRetry bool
}

// Run executes an error contract test
func (ect *ErrorContractTest) Run(t *testing.T) {
	resp := ect.Provider.Search(context.Background(), ect.Input)
	if resp.Success {
		t.Fatal("expected failure but lookup succeeded")
	}
	if len(resp.Errors) != 1 {
		t.Fatalf("expected exactly one error, got %d", len(resp.Errors))
	}

	got := resp.Errors[0]
	if dErrors.Code(got.Code) != ect.ExpectedCode {
		t.Errorf("expected error code %s, got %s", ect.ExpectedCode, got.Code)
	}
	if got.Source != ect.Provider.Source().Label() {
		t.Errorf("expected error source %s, got %s", ect.Provider.Source().Label(), got.Source)
	}
	if resp.Status != dErrors.HTTPStatus(ect.ExpectedCode) {
		t.Errorf("expected status %d, got %d", dErrors.HTTPStatus(ect.ExpectedCode), resp.Status)
	}
	if retry := dErrors.Retryable(dErrors.Code(got.Code)); retry != ect.ExpectedRetry {
		t.Errorf("expected retryable=%v, got %v", ect.ExpectedRetry, retry)
	}
}
