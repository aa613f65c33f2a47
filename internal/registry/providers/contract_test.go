package providers_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"proplink/internal/registry/crossref"
	"proplink/internal/registry/dataset"
	"proplink/internal/registry/models"
	"proplink/internal/registry/providers"
	"proplink/internal/registry/providers/contract"
	"proplink/internal/registry/sources"
	dErrors "proplink/pkg/domain-errors"
)

func newRegistry(t *testing.T, opts ...providers.Option) *providers.Registry {
	t.Helper()
	data := dataset.Default()
	resolver, err := crossref.NewResolver(data, crossref.DefaultClasses())
	require.NoError(t, err)
	reg, err := providers.NewDefaultRegistry(sources.DefaultRegistry(), data, resolver, opts...)
	require.NoError(t, err)
	return reg
}

func get(t *testing.T, reg *providers.Registry, n sources.Name) providers.Provider {
	t.Helper()
	p, ok := reg.Get(n)
	require.True(t, ok)
	return p
}

func TestPortalContracts(t *testing.T) {
	reg := newRegistry(t)

	lookups := map[sources.Name]map[string]string{
		sources.DORIS:  {"propertyId": "MH7654321"},
		sources.DLR:    {"registrationNumber": "REG/KA/2020/98765"},
		sources.CERSAI: {"assetId": "CERSAI901234"},
		sources.MCA21:  {"cinNumber": "U98765DL2012PLC987654"},
	}

	for _, name := range sources.All {
		p := get(t, reg, name)
		suite := &contract.ContractSuite{
			Source: name.Label(),
			Tests: []contract.ContractTest{
				{
					Name:     "returns a record",
					Provider: p,
					Input:    lookups[name],
				},
				{
					Name:     "record is tagged with its portal",
					Provider: p,
					Input:    lookups[name],
					ValidateFunc: func(resp *models.SourceResponse) error {
						if tag := dataSource(resp.Data); tag != name.Label() {
							return fmt.Errorf("dataSource %q", tag)
						}
						return nil
					},
				},
			},
		}
		t.Run(name.Label(), suite.Run)
	}
}

func dataSource(data any) string {
	switch r := data.(type) {
	case models.DorisRecord:
		return r.DataSource
	case models.DlrRecord:
		return r.DataSource
	case models.CersaiRecord:
		return r.DataSource
	case models.Mca21Record:
		return r.DataSource
	}
	return ""
}

func TestPortalConfigs(t *testing.T) {
	for _, p := range newRegistry(t).All() {
		ct := &contract.ConfigTest{Provider: p}
		t.Run(p.Source().Label(), ct.Run)
	}
}

func TestPortalErrorContracts(t *testing.T) {
	reg := newRegistry(t)
	tests := []contract.ErrorContractTest{
		{
			Name:          "doris missing parameters",
			Provider:      get(t, reg, sources.DORIS),
			Input:         map[string]string{},
			ExpectedCode:  dErrors.CodeMissingParameters,
			ExpectedRetry: false,
		},
		{
			Name:          "mca21 malformed cin",
			Provider:      get(t, reg, sources.MCA21),
			Input:         map[string]string{"cinNumber": "ABC"},
			ExpectedCode:  dErrors.CodeValidation,
			ExpectedRetry: false,
		},
		{
			Name:          "cersai unknown asset",
			Provider:      get(t, reg, sources.CERSAI),
			Input:         map[string]string{"assetId": "CERSAI000000"},
			ExpectedCode:  dErrors.CodeNotFound,
			ExpectedRetry: false,
		},
	}
	for _, ect := range tests {
		t.Run(ect.Name, ect.Run)
	}

	cfg := sources.DefaultRegistry().MustGet(sources.DORIS)
	cfg.Timeout = 10 * time.Millisecond
	slow, err := providers.NewDoris(cfg, dataset.Default(), providers.WithLatency(providers.FixedLatency(time.Minute)))
	require.NoError(t, err)

	ect := contract.ErrorContractTest{
		Name:          "doris timeout",
		Provider:      slow,
		Input:         map[string]string{"propertyId": "MH1234567"},
		ExpectedCode:  dErrors.CodePortalTimeout,
		ExpectedRetry: true,
	}
	t.Run(ect.Name, ect.Run)
}
