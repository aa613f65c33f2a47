package providers

import (
	"context"
	"fmt"
	"strings"

	"proplink/internal/registry/models"
	"proplink/internal/registry/sources"
	dErrors "proplink/pkg/domain-errors"
	strs "proplink/pkg/platform/strings"
)

// DlrData is the DLR slice of the dataset.
type DlrData interface {
	Dlr(propertyID string) (models.DlrRecord, bool)
	DlrRecords() []models.DlrRecord
}

// CrossReference resolves ids between portals.
type CrossReference interface {
	ResolveInSource(id string, target sources.Name) (string, bool)
	ExistsInSource(id string, target sources.Name) bool
}

// NewDlr builds the land records adapter. A property id unknown to DLR is
// followed through the cross reference; when it only exists in other portals
// the not-found error says where.
func NewDlr(cfg sources.Config, data DlrData, xref CrossReference, opts ...Option) (*Adapter, error) {
	if data == nil {
		return nil, fmt.Errorf("dataset is required")
	}
	if xref == nil {
		return nil, fmt.Errorf("cross reference is required")
	}
	s := &dlrSearch{data: data, xref: xref}
	return newAdapter(cfg, sources.DLR, s.search, opts...)
}

type dlrSearch struct {
	data DlrData
	xref CrossReference
}

func (s *dlrSearch) search(ctx context.Context, p map[string]string) (any, error) {
	if id := p[sources.ParamPropertyID]; id != "" {
		r, ok := s.byPropertyID(id)
		if ok {
			if !s.matches(r, p) {
				return nil, notFound(noPropertyMessage, p)
			}
			return r, nil
		}
		if err := s.elsewhere(id); err != nil {
			return nil, err
		}
	}

	if reg := p[sources.ParamRegistrationNumber]; reg != "" {
		for _, r := range s.data.DlrRecords() {
			if err := checkContext(ctx, sources.DLR); err != nil {
				return nil, err
			}
			if r.RegistrationNumber == reg && s.matches(r, p) {
				return r, nil
			}
		}
	}

	if owner := p[sources.ParamOwnerName]; owner != "" {
		var matches []models.DlrRecord
		for _, r := range s.data.DlrRecords() {
			if err := checkContext(ctx, sources.DLR); err != nil {
				return nil, err
			}
			if ownedBy(r.OwnerDetails, owner) && s.matches(r, p) {
				matches = append(matches, r)
			}
		}
		if len(matches) > 0 {
			return single(matches), nil
		}
	}

	return nil, notFound(noPropertyMessage, p)
}

func (s *dlrSearch) byPropertyID(id string) (models.DlrRecord, bool) {
	if r, ok := s.data.Dlr(id); ok {
		return r, true
	}
	if resolved, ok := s.xref.ResolveInSource(id, sources.DLR); ok {
		return s.data.Dlr(resolved)
	}
	return models.DlrRecord{}, false
}

// elsewhere reports a property that other portals know but DLR does not.
func (s *dlrSearch) elsewhere(id string) error {
	details := map[string]any{"propertyId": id}
	known := false
	for _, src := range []sources.Name{sources.DORIS, sources.CERSAI, sources.MCA21} {
		exists := s.xref.ExistsInSource(id, src)
		details["existsIn"+titleCase(src.Label())] = exists
		known = known || exists
	}
	if !known {
		return nil
	}
	return dErrors.New(dErrors.CodeNotFound, "The property exists in other databases but not in DLR").
		WithDetails(details)
}

func (s *dlrSearch) matches(r models.DlrRecord, p map[string]string) bool {
	var khasra, district, village string
	if d := r.LandRecordDetails; d != nil {
		khasra, district, village = d.KhasraNumber, d.RevenueDistrict, d.Village
	}
	if survey := p[sources.ParamSurveyNumber]; survey != "" && khasra != survey {
		return false
	}
	return matchText(district, p[sources.ParamDistrict], false) &&
		matchText(village, p[sources.ParamVillage], false)
}

func ownedBy(owners []models.Owner, name string) bool {
	for _, o := range owners {
		if strs.ContainsFold(o.Name, name) {
			return true
		}
	}
	return false
}

// titleCase turns "CERSAI" into "Cersai".
func titleCase(label string) string {
	if label == "" {
		return label
	}
	return label[:1] + strings.ToLower(label[1:])
}
