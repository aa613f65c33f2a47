package models

// RegistrationDetails is DORIS's registration office block.
type RegistrationDetails struct {
	RegistrationDate   string `json:"registrationDate"`
	RegistrationOffice string `json:"registrationOffice"`
	RegistrationFee    int64  `json:"registrationFee"`
	StampDuty          int64  `json:"stampDuty"`
}

// DorisRecord is a property as registered with DORIS.
type DorisRecord struct {
	PropertyRecord
	DorisSpecificField  string               `json:"dorisSpecificField,omitempty"`
	RegistrationDetails *RegistrationDetails `json:"registrationDetails,omitempty"`
}

// LandRecordDetails is DLR's revenue record block.
type LandRecordDetails struct {
	KhasraNumber       string `json:"khasraNumber,omitempty"`
	KhataNumber        string `json:"khataNumber,omitempty"`
	LandUse            string `json:"landUse,omitempty"`
	LandClassification string `json:"landClassification,omitempty"`
	RevenueDistrict    string `json:"revenueDistrict,omitempty"`
	Tehsil             string `json:"tehsil,omitempty"`
	Village            string `json:"village,omitempty"`
}

// DlrRecord is a property as held in the land records.
type DlrRecord struct {
	PropertyRecord
	DlrSpecificField  string             `json:"dlrSpecificField,omitempty"`
	LandRecordDetails *LandRecordDetails `json:"landRecordDetails,omitempty"`
}

// SecurityInterest is a charge registered with CERSAI.
type SecurityInterest struct {
	Type               string  `json:"type"`
	Holder             string  `json:"holder"`
	Amount             int64   `json:"amount,omitempty"`
	DateCreated        string  `json:"dateCreated"`
	DateExpiry         string  `json:"dateExpiry,omitempty"`
	Status             string  `json:"status"`
	Details            string  `json:"details,omitempty"`
	LoanAccountNumber  string  `json:"loanAccountNumber,omitempty"`
	InterestRate       float64 `json:"interestRate,omitempty"`
	LoanTenure         int     `json:"loanTenure,omitempty"` // months
	MonthlyInstallment int64   `json:"monthlyInstallment,omitempty"`
}

// Lender is the secured creditor of a CERSAI asset.
type Lender struct {
	Name               string   `json:"name"`
	Branch             string   `json:"branch,omitempty"`
	IFSCCode           string   `json:"ifscCode,omitempty"`
	ContactInformation *Contact `json:"contactInformation,omitempty"`
}

// CersaiRecord is a secured asset in the CERSAI registry.
type CersaiRecord struct {
	PropertyRecord
	CersaiSpecificField string             `json:"cersaiSpecificField,omitempty"`
	AssetID             string             `json:"assetId"`
	SecurityInterests   []SecurityInterest `json:"securityInterests,omitempty"`
	BorrowerDetails     []Owner            `json:"borrowerDetails,omitempty"`
	LenderDetails       *Lender            `json:"lenderDetails,omitempty"`
}

// Director sits on a company board.
type Director struct {
	Name            string `json:"name"`
	DIN             string `json:"din"`
	Designation     string `json:"designation"`
	AppointmentDate string `json:"appointmentDate"`
}

// PropertyHolding is a property on a company's books.
type PropertyHolding struct {
	PropertyID         string        `json:"propertyId"`
	RegistrationNumber string        `json:"registrationNumber"`
	Address            string        `json:"address"`
	Type               string        `json:"type"`
	Area               string        `json:"area"`
	AcquisitionDate    string        `json:"acquisitionDate"`
	AcquisitionValue   int64         `json:"acquisitionValue"`
	Encumbrances       []Encumbrance `json:"encumbrances"`
}

// FinancialInformation is the latest filed summary.
type FinancialInformation struct {
	LastFiledYear  string `json:"lastFiledYear"`
	Turnover       int64  `json:"turnover"`
	NetWorth       int64  `json:"netWorth"`
	ProfitAfterTax int64  `json:"profitAfterTax"`
}

// Mca21Record is a company filing in MCA21.
type Mca21Record struct {
	PropertyRecord
	Mca21SpecificField   string                `json:"mca21SpecificField,omitempty"`
	CINNumber            string                `json:"cinNumber"`
	CompanyName          string                `json:"companyName"`
	RegisteredAddress    string                `json:"registeredAddress,omitempty"`
	DateOfIncorporation  string                `json:"dateOfIncorporation,omitempty"`
	AuthorizedCapital    int64                 `json:"authorizedCapital,omitempty"`
	PaidUpCapital        int64                 `json:"paidUpCapital,omitempty"`
	CompanyStatus        string                `json:"companyStatus,omitempty"`
	Directors            []Director            `json:"directors,omitempty"`
	PropertyHoldings     []PropertyHolding     `json:"propertyHoldings,omitempty"`
	FinancialInformation *FinancialInformation `json:"financialInformation,omitempty"`
}

// Holding returns the holding whose property id is any of ids.
func (m Mca21Record) Holding(ids ...string) (PropertyHolding, bool) {
	for _, h := range m.PropertyHoldings {
		for _, id := range ids {
			if id != "" && h.PropertyID == id {
				return h, true
			}
		}
	}
	return PropertyHolding{}, false
}

// Clone returns a deep copy.
func (r DorisRecord) Clone() DorisRecord {
	out := r
	out.PropertyRecord = r.PropertyRecord.Clone()
	if r.RegistrationDetails != nil {
		d := *r.RegistrationDetails
		out.RegistrationDetails = &d
	}
	return out
}

// Clone returns a deep copy.
func (r DlrRecord) Clone() DlrRecord {
	out := r
	out.PropertyRecord = r.PropertyRecord.Clone()
	if r.LandRecordDetails != nil {
		d := *r.LandRecordDetails
		out.LandRecordDetails = &d
	}
	return out
}

// Clone returns a deep copy.
func (r CersaiRecord) Clone() CersaiRecord {
	out := r
	out.PropertyRecord = r.PropertyRecord.Clone()
	out.SecurityInterests = append([]SecurityInterest(nil), r.SecurityInterests...)
	out.BorrowerDetails = cloneOwners(r.BorrowerDetails)
	if r.LenderDetails != nil {
		l := *r.LenderDetails
		if l.ContactInformation != nil {
			c := *l.ContactInformation
			l.ContactInformation = &c
		}
		out.LenderDetails = &l
	}
	return out
}

// Clone returns a deep copy.
func (r Mca21Record) Clone() Mca21Record {
	out := r
	out.PropertyRecord = r.PropertyRecord.Clone()
	out.Directors = append([]Director(nil), r.Directors...)
	if r.PropertyHoldings != nil {
		out.PropertyHoldings = make([]PropertyHolding, len(r.PropertyHoldings))
		for i, h := range r.PropertyHoldings {
			h.Encumbrances = append([]Encumbrance(nil), h.Encumbrances...)
			out.PropertyHoldings[i] = h
		}
	}
	if r.FinancialInformation != nil {
		f := *r.FinancialInformation
		out.FinancialInformation = &f
	}
	return out
}
