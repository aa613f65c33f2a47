// Package dataset holds the read-only portal datasets the adapters and the
// merge engine query. Every accessor returns a deep copy.
package dataset

import (
	"sort"

	"proplink/internal/registry/models"
	"proplink/internal/registry/sources"
)

// Store is an immutable in-memory view of the four portals.
type Store struct {
	doris  map[string]models.DorisRecord
	dlr    map[string]models.DlrRecord
	cersai map[string]models.CersaiRecord
	mca21  map[string]models.Mca21Record
}

// New indexes the given records by their portal key.
func New(doris []models.DorisRecord, dlr []models.DlrRecord, cersai []models.CersaiRecord, mca21 []models.Mca21Record) *Store {
	s := &Store{
		doris:  make(map[string]models.DorisRecord, len(doris)),
		dlr:    make(map[string]models.DlrRecord, len(dlr)),
		cersai: make(map[string]models.CersaiRecord, len(cersai)),
		mca21:  make(map[string]models.Mca21Record, len(mca21)),
	}
	for _, r := range doris {
		s.doris[r.PropertyID] = r.Clone()
	}
	for _, r := range dlr {
		s.dlr[r.PropertyID] = r.Clone()
	}
	for _, r := range cersai {
		s.cersai[r.AssetID] = r.Clone()
	}
	for _, r := range mca21 {
		s.mca21[r.CINNumber] = r.Clone()
	}
	return s
}

// Default returns the bundled portal data.
func Default() *Store {
	return New(dorisRecords(), dlrRecords(), cersaiRecords(), mca21Records())
}

func (s *Store) Doris(propertyID string) (models.DorisRecord, bool) {
	r, ok := s.doris[propertyID]
	return r.Clone(), ok
}

func (s *Store) Dlr(propertyID string) (models.DlrRecord, bool) {
	r, ok := s.dlr[propertyID]
	return r.Clone(), ok
}

func (s *Store) Cersai(assetID string) (models.CersaiRecord, bool) {
	r, ok := s.cersai[assetID]
	return r.Clone(), ok
}

func (s *Store) Mca21(cin string) (models.Mca21Record, bool) {
	r, ok := s.mca21[cin]
	return r.Clone(), ok
}

// DorisRecords returns all DORIS records ordered by property id.
func (s *Store) DorisRecords() []models.DorisRecord {
	return sortedValues(s.doris, models.DorisRecord.Clone)
}

// DlrRecords returns all DLR records ordered by property id.
func (s *Store) DlrRecords() []models.DlrRecord {
	return sortedValues(s.dlr, models.DlrRecord.Clone)
}

// CersaiRecords returns all CERSAI assets ordered by asset id.
func (s *Store) CersaiRecords() []models.CersaiRecord {
	return sortedValues(s.cersai, models.CersaiRecord.Clone)
}

// Mca21Records returns all companies ordered by CIN.
func (s *Store) Mca21Records() []models.Mca21Record {
	return sortedValues(s.mca21, models.Mca21Record.Clone)
}

// Contains reports whether id is a primary key of the given portal.
func (s *Store) Contains(source sources.Name, id string) bool {
	var ok bool
	switch source {
	case sources.DORIS:
		_, ok = s.doris[id]
	case sources.DLR:
		_, ok = s.dlr[id]
	case sources.CERSAI:
		_, ok = s.cersai[id]
	case sources.MCA21:
		_, ok = s.mca21[id]
	}
	return ok
}

func sortedValues[T any](m map[string]T, clone func(T) T) []T {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]T, 0, len(keys))
	for _, k := range keys {
		out = append(out, clone(m[k]))
	}
	return out
}
