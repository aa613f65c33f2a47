package providers

import (
	"context"
	"fmt"

	"proplink/internal/registry/models"
	"proplink/internal/registry/sources"
)

// CersaiData is the CERSAI slice of the dataset.
type CersaiData interface {
	Cersai(assetID string) (models.CersaiRecord, bool)
	CersaiRecords() []models.CersaiRecord
}

// NewCersai builds the security interest registry adapter. Lookups go by
// asset id, then property id, then borrower name.
func NewCersai(cfg sources.Config, data CersaiData, opts ...Option) (*Adapter, error) {
	if data == nil {
		return nil, fmt.Errorf("dataset is required")
	}
	s := &cersaiSearch{data: data}
	return newAdapter(cfg, sources.CERSAI, s.search, opts...)
}

type cersaiSearch struct {
	data CersaiData
}

func (s *cersaiSearch) search(ctx context.Context, p map[string]string) (any, error) {
	if asset := p[sources.ParamAssetID]; asset != "" {
		if r, ok := s.data.Cersai(asset); ok {
			if !s.matches(r, p) {
				return nil, notFound(noPropertyMessage, p)
			}
			return r, nil
		}
	}

	if id := p[sources.ParamPropertyID]; id != "" {
		matches, err := s.scan(ctx, p, func(r models.CersaiRecord) bool { return r.PropertyID == id })
		if err != nil || len(matches) > 0 {
			return single(matches), err
		}
	}

	if borrower := p[sources.ParamBorrowerName]; borrower != "" {
		matches, err := s.scan(ctx, p, func(r models.CersaiRecord) bool { return ownedBy(r.BorrowerDetails, borrower) })
		if err != nil || len(matches) > 0 {
			return single(matches), err
		}
	}

	return nil, notFound(noPropertyMessage, p)
}

func (s *cersaiSearch) scan(ctx context.Context, p map[string]string, keep func(models.CersaiRecord) bool) ([]models.CersaiRecord, error) {
	var out []models.CersaiRecord
	for _, r := range s.data.CersaiRecords() {
		if err := checkContext(ctx, sources.CERSAI); err != nil {
			return nil, err
		}
		if keep(r) && s.matches(r, p) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *cersaiSearch) matches(r models.CersaiRecord, p map[string]string) bool {
	var lender string
	if r.LenderDetails != nil {
		lender = r.LenderDetails.Name
	}
	types := make([]string, 0, len(r.SecurityInterests))
	for _, si := range r.SecurityInterests {
		types = append(types, si.Type)
	}
	return matchText(lender, p[sources.ParamLenderName], false) &&
		matchAny(types, p[sources.ParamSecurityType])
}
