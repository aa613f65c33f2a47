package providers

import (
	"context"
	"fmt"

	"proplink/internal/registry/models"
	"proplink/internal/registry/sources"
	strs "proplink/pkg/platform/strings"
)

// Mca21Data is the MCA21 slice of the dataset.
type Mca21Data interface {
	Mca21(cin string) (models.Mca21Record, bool)
	Mca21Records() []models.Mca21Record
}

// NewMca21 builds the corporate registry adapter. Lookups go by CIN, then
// company name, then the property ids on company books.
func NewMca21(cfg sources.Config, data Mca21Data, opts ...Option) (*Adapter, error) {
	if data == nil {
		return nil, fmt.Errorf("dataset is required")
	}
	s := &mca21Search{data: data}
	return newAdapter(cfg, sources.MCA21, s.search, opts...)
}

type mca21Search struct {
	data Mca21Data
}

func (s *mca21Search) search(ctx context.Context, p map[string]string) (any, error) {
	if cin := p[sources.ParamCINNumber]; cin != "" {
		if r, ok := s.data.Mca21(cin); ok {
			if !s.matches(r, p) {
				return nil, notFound("No company found with the provided details", p)
			}
			return r, nil
		}
	}

	if name := p[sources.ParamCompanyName]; name != "" {
		matches, err := s.scan(ctx, p, func(r models.Mca21Record) bool { return strs.ContainsFold(r.CompanyName, name) })
		if err != nil || len(matches) > 0 {
			return single(matches), err
		}
	}

	if id := p[sources.ParamPropertyID]; id != "" {
		matches, err := s.scan(ctx, p, func(r models.Mca21Record) bool {
			_, ok := r.Holding(id)
			return ok
		})
		if err != nil || len(matches) > 0 {
			return single(matches), err
		}
	}

	return nil, notFound("No company or property found with the provided details", p)
}

func (s *mca21Search) scan(ctx context.Context, p map[string]string, keep func(models.Mca21Record) bool) ([]models.Mca21Record, error) {
	var out []models.Mca21Record
	for _, r := range s.data.Mca21Records() {
		if err := checkContext(ctx, sources.MCA21); err != nil {
			return nil, err
		}
		if keep(r) && s.matches(r, p) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *mca21Search) matches(r models.Mca21Record, p map[string]string) bool {
	if director := p[sources.ParamDirectorName]; director != "" {
		names := make([]string, 0, len(r.Directors))
		for _, d := range r.Directors {
			names = append(names, d.Name)
		}
		if !matchAny(names, director) {
			return false
		}
	}
	return matchText(r.RegisteredAddress, p[sources.ParamRegisteredOffice], false)
}
