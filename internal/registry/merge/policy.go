package merge

import (
	"strings"
	"time"

	"proplink/internal/registry/models"
	"proplink/internal/registry/sources"
)

// ScalarRule decides which source's value a single-valued field keeps.
type ScalarRule int

const (
	// FirstWins keeps the value from the earliest source in Order.
	FirstWins ScalarRule = iota
	// LastWins lets every later source overwrite.
	LastWins
)

// Policy is the per-field-category precedence used when combining records.
// Lists are always unioned by their dedup key and lastUpdated always keeps
// the most recent timestamp; only scalar precedence is configurable.
type Policy struct {
	Order  []sources.Name
	Scalar ScalarRule
}

// DefaultPolicy merges in DORIS, DLR, CERSAI, MCA21 order with first-wins scalars.
func DefaultPolicy() Policy {
	return Policy{Order: append([]sources.Name(nil), sources.All...), Scalar: FirstWins}
}

func (p Policy) takeScalar(current, incoming string) string {
	if incoming == "" {
		return current
	}
	if current == "" || p.Scalar == LastWins {
		return incoming
	}
	return current
}

func ownerKey(o models.Owner) string {
	if o.IdentificationNumber != "" {
		return o.IdentificationNumber
	}
	return "name:" + strings.ToLower(strings.TrimSpace(o.Name))
}

func encumbranceKey(e models.Encumbrance) string {
	return e.Holder + "|" + e.DateCreated
}

func transactionKey(t models.Transaction) string {
	return t.Date + "|" + t.DocumentReference
}

func documentKey(d models.Document) string {
	return d.Number
}

// union appends items from incoming whose key is not yet present.
func union[T any](acc []T, seen map[string]struct{}, incoming []T, key func(T) string) []T {
	for _, item := range incoming {
		k := key(item)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		acc = append(acc, item)
	}
	return acc
}

var timestampLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// latest returns whichever timestamp is more recent. Unparseable values lose
// to parseable ones.
func latest(current, incoming string) string {
	if incoming == "" {
		return current
	}
	if current == "" {
		return incoming
	}
	ct, cok := parseTimestamp(current)
	it, iok := parseTimestamp(incoming)
	switch {
	case !iok:
		return current
	case !cok:
		return incoming
	case it.After(ct):
		return incoming
	default:
		return current
	}
}

func (p Policy) mergeDetails(acc *models.PropertyDetails, in *models.PropertyDetails) *models.PropertyDetails {
	if in == nil {
		return acc
	}
	if acc == nil {
		d := in.Clone()
		return &d
	}
	acc.Address = p.takeScalar(acc.Address, in.Address)
	acc.Area = p.takeScalar(acc.Area, in.Area)
	acc.AreaUnit = p.takeScalar(acc.AreaUnit, in.AreaUnit)
	acc.Type = p.takeScalar(acc.Type, in.Type)
	acc.SubType = p.takeScalar(acc.SubType, in.SubType)
	acc.Description = p.takeScalar(acc.Description, in.Description)
	acc.SurveyNumber = p.takeScalar(acc.SurveyNumber, in.SurveyNumber)
	acc.LandMark = p.takeScalar(acc.LandMark, in.LandMark)
	if in.Coordinates != nil && (acc.Coordinates == nil || p.Scalar == LastWins) {
		c := *in.Coordinates
		acc.Coordinates = &c
	}
	if in.Boundaries != nil && (acc.Boundaries == nil || p.Scalar == LastWins) {
		b := *in.Boundaries
		acc.Boundaries = &b
	}
	return acc
}
