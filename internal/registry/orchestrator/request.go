package orchestrator

import (
	"fmt"
	"strings"

	"proplink/internal/registry/cache"
	"proplink/internal/registry/sources"
	dErrors "proplink/pkg/domain-errors"
	strs "proplink/pkg/platform/strings"
)

// Request is a unified lookup as received from a caller.
type Request struct {
	PropertyID         string   `json:"propertyId"`
	RegistrationNumber string   `json:"registrationNumber"`
	OwnerName          string   `json:"ownerName"`
	Sources            []string `json:"sources"`
}

// query is a validated Request.
type query struct {
	propertyID         string
	registrationNumber string
	ownerName          string
	sources            []sources.Name
}

var unifiedParams = []string{sources.ParamPropertyID, sources.ParamRegistrationNumber, sources.ParamOwnerName}

// prepare validates req and resolves its source selection. Nothing is
// dispatched, cached or counted for a request that fails here.
func (o *Orchestrator) prepare(req Request) (query, error) {
	q := query{
		propertyID:         strings.TrimSpace(req.PropertyID),
		registrationNumber: strings.TrimSpace(req.RegistrationNumber),
		ownerName:          strings.TrimSpace(req.OwnerName),
	}
	if q.propertyID == "" && q.registrationNumber == "" && q.ownerName == "" {
		return query{}, dErrors.New(dErrors.CodeMissingParameters,
			fmt.Sprintf("At least one of the following parameters is required: %s", strings.Join(unifiedParams, ", "))).
			WithDetails(map[string]any{"required": unifiedParams})
	}
	if err := sources.ValidateFormats(map[string]string{
		sources.ParamPropertyID:         q.propertyID,
		sources.ParamRegistrationNumber: q.registrationNumber,
	}); err != nil {
		return query{}, err
	}

	selected, err := o.selectSources(req.Sources)
	if err != nil {
		return query{}, err
	}
	q.sources = selected
	return q, nil
}

// selectSources parses the requested portal names, defaulting to every
// registered portal. The result is in precedence order without duplicates.
func (o *Orchestrator) selectSources(raw []string) ([]sources.Name, error) {
	names := strs.SplitListLower(raw...)
	if len(names) == 0 {
		return o.Sources(), nil
	}
	want := make(map[sources.Name]bool, len(names))
	for _, n := range names {
		name, err := sources.ParseName(n)
		if err != nil {
			return nil, err
		}
		if _, ok := o.portals[name]; !ok {
			return nil, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("Source %s is not enabled", name.Label())).
				WithDetails(map[string]any{"source": n})
		}
		want[name] = true
	}
	out := make([]sources.Name, 0, len(want))
	for _, n := range sources.All {
		if want[n] {
			out = append(out, n)
		}
	}
	return out, nil
}

// paramsFor translates the unified parameters into one portal's vocabulary.
// CERSAI and MCA21 get their own key for the property when one is known.
func (q query) paramsFor(src sources.Name, resolver Resolver) map[string]string {
	p := make(map[string]string, 3)
	set := func(k, v string) {
		if v != "" {
			p[k] = v
		}
	}
	switch src {
	case sources.DORIS:
		set(sources.ParamPropertyID, q.propertyID)
		set(sources.ParamRegistrationNumber, q.registrationNumber)
	case sources.DLR:
		set(sources.ParamPropertyID, q.propertyID)
		set(sources.ParamRegistrationNumber, q.registrationNumber)
		set(sources.ParamOwnerName, q.ownerName)
	case sources.CERSAI:
		if q.propertyID != "" {
			if asset, ok := resolver.ResolveInSource(q.propertyID, sources.CERSAI); ok {
				p[sources.ParamAssetID] = asset
			} else {
				p[sources.ParamPropertyID] = q.propertyID
			}
		}
		set(sources.ParamBorrowerName, q.ownerName)
	case sources.MCA21:
		if q.propertyID != "" {
			if cin, ok := resolver.ResolveInSource(q.propertyID, sources.MCA21); ok {
				p[sources.ParamCINNumber] = cin
			} else {
				p[sources.ParamPropertyID] = q.propertyID
			}
		}
		set(sources.ParamCompanyName, q.ownerName)
	}
	return p
}

func (q query) cacheKey() string {
	return cache.Key(cacheScope,
		[]string{sources.ParamPropertyID, sources.ParamRegistrationNumber, sources.ParamOwnerName, "sources"},
		map[string]string{
			sources.ParamPropertyID:         q.propertyID,
			sources.ParamRegistrationNumber: q.registrationNumber,
			sources.ParamOwnerName:          q.ownerName,
			"sources":                       labels(q.sources),
		})
}
