package orchestrator

//go:generate mockgen -source=orchestrator.go -destination=mocks/mocks.go -package=mocks Portal,Merger,Resolver

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"proplink/internal/registry/cache"
	"proplink/internal/registry/crossref"
	"proplink/internal/registry/dataset"
	"proplink/internal/registry/merge"
	"proplink/internal/registry/models"
	"proplink/internal/registry/orchestrator/mocks"
	"proplink/internal/registry/sources"
	dErrors "proplink/pkg/domain-errors"
	"proplink/pkg/requestcontext"
)

type OrchestratorSuite struct {
	suite.Suite
	ctx     context.Context
	ctrl    *gomock.Controller
	portals map[sources.Name]*mocks.MockPortal
	merger  *mocks.MockMerger
	cache   *cache.MemoryStore
	orch    *Orchestrator
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorSuite))
}

func (s *OrchestratorSuite) SetupTest() {
	s.ctx = requestcontext.WithTime(context.Background(), time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	s.ctx = requestcontext.WithRequestID(s.ctx, "req-1")
	s.ctrl = gomock.NewController(s.T())

	s.portals = make(map[sources.Name]*mocks.MockPortal, len(sources.All))
	portals := make([]Portal, 0, len(sources.All))
	for _, n := range sources.All {
		p := mocks.NewMockPortal(s.ctrl)
		p.EXPECT().Source().Return(n).AnyTimes()
		s.portals[n] = p
		portals = append(portals, p)
	}
	s.merger = mocks.NewMockMerger(s.ctrl)

	store, err := cache.NewMemoryStore(100)
	s.Require().NoError(err)
	s.cache = store

	resolver, err := crossref.NewResolver(dataset.Default(), crossref.DefaultClasses())
	s.Require().NoError(err)

	orch, err := New(portals, s.merger, resolver,
		sources.UnifiedConfig{Timeout: 5 * time.Second, CacheTTL: 10 * time.Minute},
		WithCache(store),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	s.Require().NoError(err)
	s.orch = orch
}

func ok(src sources.Name, data any) *models.SourceResponse {
	return &models.SourceResponse{Success: true, Source: src.Label(), Data: data, Status: http.StatusOK}
}

func failed(src sources.Name, code dErrors.Code) *models.SourceResponse {
	return &models.SourceResponse{
		Source: src.Label(),
		Errors: []models.APIError{{Code: string(code), Message: "failed", Source: src.Label()}},
		Status: dErrors.HTTPStatus(code),
	}
}

func (s *OrchestratorSuite) expectSearch(src sources.Name, resp *models.SourceResponse) *gomock.Call {
	return s.portals[src].EXPECT().Search(gomock.Any(), gomock.Any()).Return(resp)
}

func mergedRecord(contributors ...sources.Name) merge.Result {
	return merge.Result{
		Record:       &models.PropertyRecord{PropertyID: "MH1234567", DataSource: sources.Merged},
		Contributors: contributors,
	}
}

// =============================================================================
// Validation
// =============================================================================

func (s *OrchestratorSuite) TestValidationFailsBeforeAnyWork() {
	cases := []struct {
		name string
		req  Request
		code dErrors.Code
	}{
		{"no primary parameter", Request{Sources: []string{"doris"}}, dErrors.CodeMissingParameters},
		{"blank primary parameters", Request{PropertyID: "  ", OwnerName: " "}, dErrors.CodeMissingParameters},
		{"malformed property id", Request{PropertyID: "abc"}, dErrors.CodeValidation},
		{"malformed registration number", Request{RegistrationNumber: "REG/MH/22/1"}, dErrors.CodeValidation},
		{"unknown source", Request{PropertyID: "MH1234567", Sources: []string{"doris", "dorris"}}, dErrors.CodeValidation},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			resp, err := s.orch.Lookup(s.ctx, tc.req)
			s.Nil(resp)
			s.True(dErrors.HasCode(err, tc.code), "got %v", err)
		})
	}

	stats, err := s.cache.Stats(s.ctx)
	s.Require().NoError(err)
	s.Zero(stats.Size)
}

func (s *OrchestratorSuite) TestSourceSelectionIsNormalised() {
	s.expectSearch(sources.DLR, ok(sources.DLR, "dlr"))
	s.expectSearch(sources.DORIS, ok(sources.DORIS, "doris"))

	resp, err := s.orch.Lookup(s.ctx, Request{RegistrationNumber: "REG/MH/2022/12345", Sources: []string{"DLR, doris", "dlr"}})
	s.Require().NoError(err)
	s.Equal([]string{"DORIS", "DLR"}, resp.Sources)
	s.Equal(2, resp.Metadata.TotalSources)
}

// =============================================================================
// Combination
// =============================================================================

func (s *OrchestratorSuite) TestSingleContributorKeepsItsOwnEntry() {
	s.expectSearch(sources.DORIS, ok(sources.DORIS, "doris-record"))
	s.merger.EXPECT().MergeAcrossSources(gomock.Any(), "MH1234567", []sources.Name{sources.DORIS}).
		Return(mergedRecord(sources.DORIS))

	resp, err := s.orch.Lookup(s.ctx, Request{PropertyID: "MH1234567", Sources: []string{"doris"}})
	s.Require().NoError(err)

	s.True(resp.Success)
	s.Equal(http.StatusOK, resp.Status)
	s.Equal([]models.SourceData{{Source: "DORIS", Data: "doris-record"}}, resp.Data)
	s.Equal("req-1", resp.RequestID)
}

func (s *OrchestratorSuite) TestMergedViewSupersedesRawEntries() {
	s.expectSearch(sources.DORIS, ok(sources.DORIS, "d"))
	s.expectSearch(sources.DLR, ok(sources.DLR, "l"))
	s.expectSearch(sources.CERSAI, ok(sources.CERSAI, "c"))
	s.expectSearch(sources.MCA21, failed(sources.MCA21, dErrors.CodeNotFound))
	s.merger.EXPECT().MergeAcrossSources(gomock.Any(), "MH1234567", sources.All).
		Return(mergedRecord(sources.DORIS, sources.DLR, sources.CERSAI))

	resp, err := s.orch.Lookup(s.ctx, Request{PropertyID: "MH1234567"})
	s.Require().NoError(err)

	s.True(resp.Success)
	s.Require().Len(resp.Data, 1)
	s.Equal(sources.Merged, resp.Data[0].Source)
	s.Require().Len(resp.Errors, 1, "errors and merged data coexist")
	s.Equal("MCA21", resp.Errors[0].Source)
	s.Equal(4, resp.Metadata.TotalSources)
	s.Equal(3, resp.Metadata.SuccessfulSources)
	s.Equal(1, resp.Metadata.FailedSources)
}

func (s *OrchestratorSuite) TestMergeFillsInWhenEveryAdapterFails() {
	s.expectSearch(sources.DORIS, failed(sources.DORIS, dErrors.CodePortalError))
	s.merger.EXPECT().MergeAcrossSources(gomock.Any(), "MH1234567", gomock.Any()).
		Return(mergedRecord(sources.DORIS))

	resp, err := s.orch.Lookup(s.ctx, Request{PropertyID: "MH1234567", Sources: []string{"doris"}})
	s.Require().NoError(err)

	s.True(resp.Success)
	s.Equal(sources.Merged, resp.Data[0].Source)
	s.Len(resp.Errors, 1)
}

func (s *OrchestratorSuite) TestMergeFailuresAreReported() {
	s.expectSearch(sources.MCA21, ok(sources.MCA21, "m"))
	result := merge.Result{Failures: []*dErrors.Error{
		dErrors.New(dErrors.CodeTransformation, "Failed to transform MCA21 data").WithSource("MCA21"),
	}}
	s.merger.EXPECT().MergeAcrossSources(gomock.Any(), "TN5544332", gomock.Any()).Return(result)

	resp, err := s.orch.Lookup(s.ctx, Request{PropertyID: "TN5544332", Sources: []string{"mca21"}})
	s.Require().NoError(err)

	s.True(resp.Success)
	s.Require().Len(resp.Errors, 1)
	s.Equal(string(dErrors.CodeTransformation), resp.Errors[0].Code)
}

func (s *OrchestratorSuite) TestNotFoundEverywhere() {
	for _, n := range sources.All {
		s.expectSearch(n, failed(n, dErrors.CodeNotFound))
	}
	s.merger.EXPECT().MergeAcrossSources(gomock.Any(), "ZZ0000000", gomock.Any()).Return(merge.Result{})

	resp, err := s.orch.Lookup(s.ctx, Request{PropertyID: "ZZ0000000"})
	s.Require().NoError(err)

	s.False(resp.Success)
	s.Empty(resp.Data)
	s.Len(resp.Errors, 4)
	s.Equal(http.StatusNotFound, resp.Status)
	s.Equal(4, resp.Metadata.FailedSources)
}

func (s *OrchestratorSuite) TestNoMergeWithoutPropertyID() {
	s.expectSearch(sources.DLR, ok(sources.DLR, []string{"a", "b"}))
	s.expectSearch(sources.CERSAI, failed(sources.CERSAI, dErrors.CodeNotFound))

	resp, err := s.orch.Lookup(s.ctx, Request{OwnerName: "Kumar", Sources: []string{"dlr", "cersai"}})
	s.Require().NoError(err)

	s.True(resp.Success)
	s.Equal([]models.SourceData{{Source: "DLR", Data: []string{"a", "b"}}}, resp.Data)
}

func (s *OrchestratorSuite) TestPanickingPortalBecomesInternalError() {
	s.portals[sources.DORIS].EXPECT().Search(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, map[string]string) *models.SourceResponse { panic("boom") })

	resp, err := s.orch.Lookup(s.ctx, Request{RegistrationNumber: "REG/MH/2022/12345", Sources: []string{"doris"}})
	s.Require().NoError(err)

	s.False(resp.Success)
	s.Require().Len(resp.Errors, 1)
	s.Equal(string(dErrors.CodeInternal), resp.Errors[0].Code)
	s.Equal("DORIS", resp.Errors[0].Source)
	s.Equal(http.StatusInternalServerError, resp.Status)
}

// =============================================================================
// Dispatch
// =============================================================================

func (s *OrchestratorSuite) TestParametersAreTranslatedPerPortal() {
	s.portals[sources.DORIS].EXPECT().Search(gomock.Any(), map[string]string{"propertyId": "MH1234567"}).
		Return(ok(sources.DORIS, "d"))
	s.portals[sources.DLR].EXPECT().Search(gomock.Any(), map[string]string{"propertyId": "MH1234567", "ownerName": "Kumar"}).
		Return(ok(sources.DLR, "l"))
	s.portals[sources.CERSAI].EXPECT().Search(gomock.Any(), map[string]string{"assetId": "CERSAI123456", "borrowerName": "Kumar"}).
		Return(ok(sources.CERSAI, "c"))
	s.portals[sources.MCA21].EXPECT().Search(gomock.Any(), map[string]string{"propertyId": "MH1234567", "companyName": "Kumar"}).
		Return(failed(sources.MCA21, dErrors.CodeNotFound))
	s.merger.EXPECT().MergeAcrossSources(gomock.Any(), "MH1234567", gomock.Any()).Return(merge.Result{})

	_, err := s.orch.Lookup(s.ctx, Request{PropertyID: "MH1234567", OwnerName: "Kumar"})
	s.Require().NoError(err)
}

func (s *OrchestratorSuite) TestCinIsUsedForCompanyHoldings() {
	s.portals[sources.MCA21].EXPECT().Search(gomock.Any(), map[string]string{"cinNumber": "U12345MH2010PLC123456"}).
		Return(ok(sources.MCA21, "m"))
	s.merger.EXPECT().MergeAcrossSources(gomock.Any(), "MH7654321", gomock.Any()).Return(merge.Result{})

	_, err := s.orch.Lookup(s.ctx, Request{PropertyID: "MH7654321", Sources: []string{"mca21"}})
	s.Require().NoError(err)
}

func (s *OrchestratorSuite) TestPortalsAreQueriedConcurrently() {
	var arrived sync.WaitGroup
	arrived.Add(len(sources.All))
	allIn := make(chan struct{})
	go func() {
		arrived.Wait()
		close(allIn)
	}()

	for _, n := range sources.All {
		s.portals[n].EXPECT().Search(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, map[string]string) *models.SourceResponse {
				arrived.Done()
				select {
				case <-allIn:
					return ok(n, "x")
				case <-time.After(2 * time.Second):
					return failed(n, dErrors.CodePortalTimeout)
				}
			})
	}

	resp, err := s.orch.Lookup(s.ctx, Request{RegistrationNumber: "REG/MH/2022/12345"})
	s.Require().NoError(err)
	s.Equal(4, resp.Metadata.SuccessfulSources, "every portal call was in flight at once")
}

func (s *OrchestratorSuite) TestRequestIDIsGeneratedWhenMissing() {
	s.expectSearch(sources.DORIS, ok(sources.DORIS, "d"))

	resp, err := s.orch.Lookup(context.Background(), Request{RegistrationNumber: "REG/MH/2022/12345", Sources: []string{"doris"}})
	s.Require().NoError(err)
	s.Regexp(`^req_[0-9a-f-]{36}$`, resp.RequestID)
}

// =============================================================================
// Caching
// =============================================================================

func (s *OrchestratorSuite) TestRepeatedLookupIsServedFromCache() {
	s.expectSearch(sources.DORIS, ok(sources.DORIS, map[string]any{"propertyId": "MH1234567"})).Times(1)
	s.merger.EXPECT().MergeAcrossSources(gomock.Any(), "MH1234567", gomock.Any()).
		Return(mergedRecord(sources.DORIS)).Times(1)

	req := Request{PropertyID: "MH1234567", Sources: []string{"doris"}}
	first, err := s.orch.Lookup(s.ctx, req)
	s.Require().NoError(err)
	s.False(first.Metadata.CacheHit)

	second, err := s.orch.Lookup(requestcontext.WithRequestID(s.ctx, "req-2"), req)
	s.Require().NoError(err)
	s.True(second.Metadata.CacheHit)
	s.True(second.Success)
	s.Equal("req-2", second.RequestID)
	s.Equal(http.StatusOK, second.Status)
	s.Equal(first.Sources, second.Sources)
	s.Require().Len(second.Data, 1)
	s.Equal("DORIS", second.Data[0].Source)
}

func (s *OrchestratorSuite) TestCachedNotFoundKeepsItsStatus() {
	s.expectSearch(sources.DORIS, failed(sources.DORIS, dErrors.CodeNotFound)).Times(1)

	req := Request{RegistrationNumber: "REG/GJ/2020/00001", Sources: []string{"doris"}}
	_, err := s.orch.Lookup(s.ctx, req)
	s.Require().NoError(err)

	resp, err := s.orch.Lookup(s.ctx, req)
	s.Require().NoError(err)
	s.True(resp.Metadata.CacheHit)
	s.Equal(http.StatusNotFound, resp.Status)
}

func (s *OrchestratorSuite) TestRetryableFailuresAreNotCached() {
	s.expectSearch(sources.DORIS, failed(sources.DORIS, dErrors.CodeRateLimitExceeded)).Times(2)

	req := Request{RegistrationNumber: "REG/MH/2022/12345", Sources: []string{"doris"}}
	first, err := s.orch.Lookup(s.ctx, req)
	s.Require().NoError(err)
	s.Equal(http.StatusBadRequest, first.Status)

	second, err := s.orch.Lookup(s.ctx, req)
	s.Require().NoError(err)
	s.False(second.Metadata.CacheHit)
}

func (s *OrchestratorSuite) TestSourceOrderDoesNotChangeCacheKey() {
	s.expectSearch(sources.DORIS, ok(sources.DORIS, "d")).Times(1)
	s.expectSearch(sources.DLR, ok(sources.DLR, "l")).Times(1)

	_, err := s.orch.Lookup(s.ctx, Request{RegistrationNumber: "REG/MH/2022/12345", Sources: []string{"doris", "dlr"}})
	s.Require().NoError(err)

	resp, err := s.orch.Lookup(s.ctx, Request{RegistrationNumber: "REG/MH/2022/12345", Sources: []string{"dlr", "doris"}})
	s.Require().NoError(err)
	s.True(resp.Metadata.CacheHit)
}

// =============================================================================
// Construction
// =============================================================================

func (s *OrchestratorSuite) TestNewRequiresCollaborators() {
	resolver := mocks.NewMockResolver(s.ctrl)
	portal := s.portals[sources.DORIS]

	_, err := New(nil, s.merger, resolver, sources.UnifiedConfig{})
	s.Error(err)
	_, err = New([]Portal{portal}, nil, resolver, sources.UnifiedConfig{})
	s.Error(err)
	_, err = New([]Portal{portal}, s.merger, nil, sources.UnifiedConfig{})
	s.Error(err)
	_, err = New([]Portal{portal, portal}, s.merger, resolver, sources.UnifiedConfig{})
	s.Error(err)
	_, err = New([]Portal{portal}, s.merger, resolver, sources.UnifiedConfig{}, WithCache(s.cache))
	s.Error(err, "cache without ttl")
}
