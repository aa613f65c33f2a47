// Package transform normalises portal records into the canonical PropertyRecord.
package transform

import (
	"proplink/internal/registry/models"
	"proplink/internal/registry/sources"
	dErrors "proplink/pkg/domain-errors"
)

// Doris normalises a DORIS record. DORIS already uses the canonical layout.
func Doris(r models.DorisRecord) (models.PropertyRecord, error) {
	if r.PropertyID == "" {
		return models.PropertyRecord{}, failed(sources.DORIS, "record has no property id", r)
	}
	out := r.PropertyRecord.Clone()
	out.DataSource = sources.DORIS.Label()
	return out, nil
}

// Dlr normalises a DLR record, surfacing the khasra number as survey number.
func Dlr(r models.DlrRecord) (models.PropertyRecord, error) {
	if r.PropertyID == "" {
		return models.PropertyRecord{}, failed(sources.DLR, "record has no property id", r)
	}
	out := r.PropertyRecord.Clone()
	if r.LandRecordDetails != nil && r.LandRecordDetails.KhasraNumber != "" {
		if out.PropertyDetails == nil {
			out.PropertyDetails = &models.PropertyDetails{}
		}
		out.PropertyDetails.SurveyNumber = r.LandRecordDetails.KhasraNumber
	}
	out.DataSource = sources.DLR.Label()
	return out, nil
}

// Cersai normalises a CERSAI asset: borrowers become owners and security
// interests become encumbrances.
func Cersai(r models.CersaiRecord) (models.PropertyRecord, error) {
	if r.AssetID == "" && r.PropertyID == "" {
		return models.PropertyRecord{}, failed(sources.CERSAI, "asset has neither asset id nor property id", r)
	}
	out := r.PropertyRecord.Clone()
	if len(r.BorrowerDetails) > 0 {
		out.OwnerDetails = r.Clone().BorrowerDetails
	}
	if len(r.SecurityInterests) > 0 {
		out.Encumbrances = make([]models.Encumbrance, 0, len(r.SecurityInterests))
		for _, si := range r.SecurityInterests {
			out.Encumbrances = append(out.Encumbrances, models.Encumbrance{
				Type:        si.Type,
				Holder:      si.Holder,
				Amount:      si.Amount,
				DateCreated: si.DateCreated,
				DateExpiry:  si.DateExpiry,
				Status:      si.Status,
				Details:     si.Details,
			})
		}
	}
	out.DataSource = sources.CERSAI.Label()
	return out, nil
}

// Mca21 normalises one company holding into a property record owned by the
// company. The holding is the first whose property id is in propertyIDs, or
// the company's first holding when none are given.
func Mca21(r models.Mca21Record, propertyIDs ...string) (models.PropertyRecord, error) {
	if r.CINNumber == "" || r.CompanyName == "" {
		return models.PropertyRecord{}, failed(sources.MCA21, "company has no CIN or name", r)
	}

	var (
		holding models.PropertyHolding
		ok      bool
	)
	if len(propertyIDs) > 0 {
		holding, ok = r.Holding(propertyIDs...)
	} else if len(r.PropertyHoldings) > 0 {
		holding, ok = r.PropertyHoldings[0], true
	}
	if !ok {
		return models.PropertyRecord{}, failed(sources.MCA21, "company holds no matching property", r)
	}

	owner := models.Owner{
		Name:                 r.CompanyName,
		IdentificationNumber: r.CINNumber,
		IdentificationType:   "CIN",
		OwnershipType:        "CORPORATE",
	}
	if r.RegisteredAddress != "" {
		owner.ContactInformation = &models.Contact{Address: r.RegisteredAddress}
	}

	return models.PropertyRecord{
		PropertyID:         holding.PropertyID,
		RegistrationNumber: holding.RegistrationNumber,
		OwnerDetails:       []models.Owner{owner},
		PropertyDetails: &models.PropertyDetails{
			Address: holding.Address,
			Area:    holding.Area,
			Type:    holding.Type,
		},
		Encumbrances: append([]models.Encumbrance(nil), holding.Encumbrances...),
		LastUpdated:  r.LastUpdated,
		DataSource:   sources.MCA21.Label(),
	}, nil
}

func failed(source sources.Name, msg string, original any) *dErrors.Error {
	return dErrors.New(dErrors.CodeTransformation, "Failed to transform "+source.Label()+" data: "+msg).
		WithDetails(map[string]any{"originalData": original}).
		WithSource(source.Label())
}
