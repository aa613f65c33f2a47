// Package merge reconciles the records every portal holds for one property
// into a single canonical record.
package merge

import (
	"context"
	"fmt"
	"log/slog"

	"proplink/internal/registry/crossref"
	"proplink/internal/registry/models"
	"proplink/internal/registry/sources"
	"proplink/internal/registry/transform"
	dErrors "proplink/pkg/domain-errors"
	"proplink/pkg/requestcontext"
)

// Dataset is the read-only portal data the engine queries directly.
type Dataset interface {
	Doris(propertyID string) (models.DorisRecord, bool)
	Dlr(propertyID string) (models.DlrRecord, bool)
	Cersai(assetID string) (models.CersaiRecord, bool)
	Mca21(cin string) (models.Mca21Record, bool)
	CersaiRecords() []models.CersaiRecord
	Mca21Records() []models.Mca21Record
}

// Result is the outcome of one merge.
type Result struct {
	// Record is nil when no enabled source contributed.
	Record       *models.PropertyRecord
	Contributors []sources.Name
	// Failures holds records that were found but could not be normalised.
	Failures []*dErrors.Error
}

// Engine merges portal records. It holds no mutable state and is safe for
// concurrent use.
type Engine struct {
	resolver *crossref.Resolver
	data     Dataset
	policy   Policy
	logger   *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithPolicy overrides the default precedence policy.
func WithPolicy(p Policy) Option {
	return func(e *Engine) {
		e.policy = p
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates a merge engine.
func New(resolver *crossref.Resolver, data Dataset, opts ...Option) (*Engine, error) {
	if resolver == nil {
		return nil, fmt.Errorf("resolver is required")
	}
	if data == nil {
		return nil, fmt.Errorf("dataset is required")
	}
	e := &Engine{
		resolver: resolver,
		data:     data,
		policy:   DefaultPolicy(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if len(e.policy.Order) == 0 {
		e.policy.Order = append([]sources.Name(nil), sources.All...)
	}
	return e, nil
}

// MergeAcrossSources resolves id in every enabled portal, normalises what it
// finds and merges the results in policy order. A nil or empty enabled set
// means every portal.
func (e *Engine) MergeAcrossSources(ctx context.Context, id string, enabled []sources.Name) Result {
	ids := e.resolver.ResolveAll(id)
	allow := enabledSet(enabled)

	var (
		acc       accumulator
		result    Result
		requestID = requestcontext.RequestID(ctx)
	)
	acc.policy = e.policy

	for _, src := range e.policy.Order {
		if !allow(src) {
			continue
		}
		rec, found, err := e.fetch(src, id, ids)
		if err != nil {
			de := dErrors.From(err)
			e.logger.WarnContext(ctx, "merge input skipped",
				"request_id", requestID,
				"source", src.String(),
				"property_id", id,
				"error", de.Message,
			)
			result.Failures = append(result.Failures, de)
			continue
		}
		if !found {
			continue
		}
		acc.add(rec)
		result.Contributors = append(result.Contributors, src)
	}

	if len(result.Contributors) == 0 {
		return result
	}
	out := acc.record
	out.PropertyID = id
	out.DataSource = sources.Merged
	result.Record = &out

	e.logger.InfoContext(ctx, "records merged",
		"request_id", requestID,
		"property_id", id,
		"contributors", len(result.Contributors),
		"owners", len(out.OwnerDetails),
		"encumbrances", len(out.Encumbrances),
	)
	return result
}

func (e *Engine) fetch(src sources.Name, id string, ids map[sources.Name]string) (models.PropertyRecord, bool, error) {
	key := ids[src]
	if key == "" {
		key = id
	}
	switch src {
	case sources.DORIS:
		raw, ok := e.data.Doris(key)
		if !ok {
			return models.PropertyRecord{}, false, nil
		}
		rec, err := transform.Doris(raw)
		return rec, err == nil, err
	case sources.DLR:
		raw, ok := e.data.Dlr(key)
		if !ok {
			return models.PropertyRecord{}, false, nil
		}
		rec, err := transform.Dlr(raw)
		return rec, err == nil, err
	case sources.CERSAI:
		raw, ok := e.data.Cersai(key)
		if !ok {
			raw, ok = e.cersaiByProperty(id, ids[sources.DORIS], ids[sources.DLR])
		}
		if !ok {
			return models.PropertyRecord{}, false, nil
		}
		rec, err := transform.Cersai(raw)
		return rec, err == nil, err
	case sources.MCA21:
		propertyIDs := []string{id, ids[sources.DORIS], ids[sources.DLR]}
		company, ok := e.data.Mca21(key)
		if ok {
			if _, held := company.Holding(propertyIDs...); !held {
				ok = false
			}
		}
		if !ok {
			company, ok = e.companyHolding(propertyIDs...)
		}
		if !ok {
			return models.PropertyRecord{}, false, nil
		}
		rec, err := transform.Mca21(company, propertyIDs...)
		return rec, err == nil, err
	}
	return models.PropertyRecord{}, false, nil
}

func (e *Engine) cersaiByProperty(ids ...string) (models.CersaiRecord, bool) {
	for _, r := range e.data.CersaiRecords() {
		for _, id := range ids {
			if id != "" && r.PropertyID == id {
				return r, true
			}
		}
	}
	return models.CersaiRecord{}, false
}

func (e *Engine) companyHolding(ids ...string) (models.Mca21Record, bool) {
	for _, c := range e.data.Mca21Records() {
		if _, ok := c.Holding(ids...); ok {
			return c, true
		}
	}
	return models.Mca21Record{}, false
}

func enabledSet(enabled []sources.Name) func(sources.Name) bool {
	if len(enabled) == 0 {
		return func(sources.Name) bool { return true }
	}
	set := make(map[sources.Name]struct{}, len(enabled))
	for _, n := range enabled {
		set[n] = struct{}{}
	}
	return func(n sources.Name) bool {
		_, ok := set[n]
		return ok
	}
}

// accumulator builds the merged record. Lists are freshly allocated so the
// output never aliases an input.
type accumulator struct {
	policy       Policy
	record       models.PropertyRecord
	owners       map[string]struct{}
	encumbrances map[string]struct{}
	transactions map[string]struct{}
	documents    map[string]struct{}
}

func (a *accumulator) add(in models.PropertyRecord) {
	if a.owners == nil {
		a.owners = make(map[string]struct{})
		a.encumbrances = make(map[string]struct{})
		a.transactions = make(map[string]struct{})
		a.documents = make(map[string]struct{})
	}
	in = in.Clone()
	r := &a.record
	r.RegistrationNumber = a.policy.takeScalar(r.RegistrationNumber, in.RegistrationNumber)
	r.OwnerDetails = union(r.OwnerDetails, a.owners, in.OwnerDetails, ownerKey)
	r.PropertyDetails = a.policy.mergeDetails(r.PropertyDetails, in.PropertyDetails)
	r.Encumbrances = union(r.Encumbrances, a.encumbrances, in.Encumbrances, encumbranceKey)
	r.TransactionHistory = union(r.TransactionHistory, a.transactions, in.TransactionHistory, transactionKey)
	r.Documents = union(r.Documents, a.documents, in.Documents, documentKey)
	r.LastUpdated = latest(r.LastUpdated, in.LastUpdated)
}
