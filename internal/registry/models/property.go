// Package models holds the record shapes returned by the portals and the
// canonical shape they are reconciled into.
package models

// Owner is one holder of rights in a property.
type Owner struct {
	Name                 string   `json:"name"`
	IdentificationNumber string   `json:"identificationNumber,omitempty"`
	IdentificationType   string   `json:"identificationType,omitempty"` // PAN, AADHAAR, PASSPORT, CIN, ...
	OwnershipPercentage  *float64 `json:"ownershipPercentage,omitempty"`
	OwnershipType        string   `json:"ownershipType,omitempty"` // SOLE, JOINT, CORPORATE, TRUST
	ContactInformation   *Contact `json:"contactInformation,omitempty"`
}

// Contact is postal/phone/email contact data.
type Contact struct {
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

type Coordinates struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

type Boundaries struct {
	North string `json:"north,omitempty"`
	South string `json:"south,omitempty"`
	East  string `json:"east,omitempty"`
	West  string `json:"west,omitempty"`
}

// PropertyDetails describes the physical property. Empty strings and nil
// pointers mean "not reported".
type PropertyDetails struct {
	Address      string       `json:"address,omitempty"`
	Area         string       `json:"area,omitempty"`
	AreaUnit     string       `json:"areaUnit,omitempty"` // SQ_FT, SQ_M, ACRE, HECTARE
	Type         string       `json:"type,omitempty"`
	SubType      string       `json:"subType,omitempty"`
	Description  string       `json:"description,omitempty"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
	Boundaries   *Boundaries  `json:"boundaries,omitempty"`
	SurveyNumber string       `json:"surveyNumber,omitempty"`
	LandMark     string       `json:"landMark,omitempty"`
}

// Encumbrance is a charge registered against the property.
type Encumbrance struct {
	Type               string `json:"type"`
	Holder             string `json:"holder"`
	Amount             int64  `json:"amount,omitempty"`
	DateCreated        string `json:"dateCreated"`
	DateExpiry         string `json:"dateExpiry,omitempty"`
	Status             string `json:"status"`
	Details            string `json:"details,omitempty"`
	DocumentReference  string `json:"documentReference,omitempty"`
	RegistrationNumber string `json:"registrationNumber,omitempty"`
}

// Party takes part in a transaction.
type Party struct {
	Role                 string `json:"role"`
	Name                 string `json:"name"`
	IdentificationNumber string `json:"identificationNumber,omitempty"`
}

// Transaction is one entry of the property's deed history.
type Transaction struct {
	Date               string  `json:"date"`
	Type               string  `json:"type"`
	Parties            []Party `json:"parties"`
	Amount             int64   `json:"amount,omitempty"`
	DocumentReference  string  `json:"documentReference,omitempty"`
	RegistrationNumber string  `json:"registrationNumber,omitempty"`
	RegistrationDate   string  `json:"registrationDate,omitempty"`
	RegistrationOffice string  `json:"registrationOffice,omitempty"`
}

// Document is a certificate or deed issued for the property.
type Document struct {
	Type       string `json:"type"`
	Number     string `json:"number"`
	IssuedDate string `json:"issuedDate"`
	IssuedBy   string `json:"issuedBy"`
	ExpiryDate string `json:"expiryDate,omitempty"`
	URL        string `json:"url,omitempty"`
	Status     string `json:"status,omitempty"`
}

// PropertyRecord is the canonical shape every portal record normalises to.
type PropertyRecord struct {
	PropertyID         string           `json:"propertyId,omitempty"`
	RegistrationNumber string           `json:"registrationNumber,omitempty"`
	OwnerDetails       []Owner          `json:"ownerDetails,omitempty"`
	PropertyDetails    *PropertyDetails `json:"propertyDetails,omitempty"`
	Encumbrances       []Encumbrance    `json:"encumbrances,omitempty"`
	TransactionHistory []Transaction    `json:"transactionHistory,omitempty"`
	Documents          []Document       `json:"documents,omitempty"`
	LastUpdated        string           `json:"lastUpdated,omitempty"`
	DataSource         string           `json:"dataSource,omitempty"`
}

// Clone returns a deep copy so callers can never alias dataset slices.
func (r PropertyRecord) Clone() PropertyRecord {
	out := r
	out.OwnerDetails = cloneOwners(r.OwnerDetails)
	if r.PropertyDetails != nil {
		pd := r.PropertyDetails.Clone()
		out.PropertyDetails = &pd
	}
	out.Encumbrances = append([]Encumbrance(nil), r.Encumbrances...)
	if r.TransactionHistory != nil {
		out.TransactionHistory = make([]Transaction, len(r.TransactionHistory))
		for i, t := range r.TransactionHistory {
			t.Parties = append([]Party(nil), t.Parties...)
			out.TransactionHistory[i] = t
		}
	}
	out.Documents = append([]Document(nil), r.Documents...)
	return out
}

// Clone returns a deep copy of the details.
func (d PropertyDetails) Clone() PropertyDetails {
	out := d
	if d.Coordinates != nil {
		c := Coordinates{Latitude: cloneFloat(d.Coordinates.Latitude), Longitude: cloneFloat(d.Coordinates.Longitude)}
		out.Coordinates = &c
	}
	if d.Boundaries != nil {
		b := *d.Boundaries
		out.Boundaries = &b
	}
	return out
}

func cloneOwners(in []Owner) []Owner {
	if in == nil {
		return nil
	}
	out := make([]Owner, len(in))
	for i, o := range in {
		o.OwnershipPercentage = cloneFloat(o.OwnershipPercentage)
		if o.ContactInformation != nil {
			c := *o.ContactInformation
			o.ContactInformation = &c
		}
		out[i] = o
	}
	return out
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}

// Float returns a pointer to v, for literal datasets.
func Float(v float64) *float64 {
	return &v
}
