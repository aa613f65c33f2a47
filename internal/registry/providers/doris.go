package providers

import (
	"context"
	"fmt"

	"proplink/internal/registry/models"
	"proplink/internal/registry/sources"
)

// DorisData is the DORIS slice of the dataset.
type DorisData interface {
	Doris(propertyID string) (models.DorisRecord, bool)
	DorisRecords() []models.DorisRecord
}

// NewDoris builds the DORIS adapter. Lookups go by property id, then by
// registration number; district and office filters only reject records that
// report a conflicting value.
func NewDoris(cfg sources.Config, data DorisData, opts ...Option) (*Adapter, error) {
	if data == nil {
		return nil, fmt.Errorf("dataset is required")
	}
	s := &dorisSearch{data: data}
	return newAdapter(cfg, sources.DORIS, s.search, opts...)
}

type dorisSearch struct {
	data DorisData
}

func (s *dorisSearch) search(ctx context.Context, p map[string]string) (any, error) {
	if id := p[sources.ParamPropertyID]; id != "" {
		if r, ok := s.data.Doris(id); ok {
			if !s.matches(r, p) {
				return nil, notFound(noPropertyMessage, p)
			}
			return r, nil
		}
	}
	if reg := p[sources.ParamRegistrationNumber]; reg != "" {
		for _, r := range s.data.DorisRecords() {
			if err := checkContext(ctx, sources.DORIS); err != nil {
				return nil, err
			}
			if r.RegistrationNumber == reg && s.matches(r, p) {
				return r, nil
			}
		}
	}
	return nil, notFound(noPropertyMessage, p)
}

func (s *dorisSearch) matches(r models.DorisRecord, p map[string]string) bool {
	var address, office string
	if r.PropertyDetails != nil {
		address = r.PropertyDetails.Address
	}
	if r.RegistrationDetails != nil {
		office = r.RegistrationDetails.RegistrationOffice
	}
	return matchText(address, p[sources.ParamDistrict], true) &&
		matchText(office, p[sources.ParamSubRegistrarOffice], true)
}
