// Package sources is the static registry of government portals the gateway
// reconciles: their names, search vocabulary, rate limits, latency bounds and
// timeouts.
package sources

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	dErrors "proplink/pkg/domain-errors"
)

// Name identifies a portal.
type Name string

const (
	DORIS  Name = "doris"
	DLR    Name = "dlr"
	CERSAI Name = "cersai"
	MCA21  Name = "mca21"
)

// Merged tags records reconciled from several portals.
const Merged = "MERGED"

// All lists every portal in default merge precedence order.
var All = []Name{DORIS, DLR, CERSAI, MCA21}

// Label is the upper-case tag used in envelopes and errors.
func (n Name) Label() string {
	return strings.ToUpper(string(n))
}

func (n Name) String() string {
	return string(n)
}

// IsValid reports whether n is a known portal.
func (n Name) IsValid() bool {
	switch n {
	case DORIS, DLR, CERSAI, MCA21:
		return true
	}
	return false
}

// ParseName validates a portal name, case-insensitively.
func ParseName(s string) (Name, error) {
	n := Name(strings.ToLower(strings.TrimSpace(s)))
	if !n.IsValid() {
		return "", dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("Unknown source %q. Valid sources are: doris, dlr, cersai, mca21", s)).
			WithDetails(map[string]any{"source": s})
	}
	return n, nil
}

// Search parameter names shared by adapters and the unified endpoint.
const (
	ParamPropertyID         = "propertyId"
	ParamRegistrationNumber = "registrationNumber"
	ParamOwnerName          = "ownerName"
	ParamDistrict           = "district"
	ParamSubRegistrarOffice = "subRegistrarOffice"
	ParamSurveyNumber       = "surveyNumber"
	ParamVillage            = "village"
	ParamAssetID            = "assetId"
	ParamBorrowerName       = "borrowerName"
	ParamLenderName         = "lenderName"
	ParamSecurityType       = "securityType"
	ParamCINNumber          = "cinNumber"
	ParamCompanyName        = "companyName"
	ParamDirectorName       = "directorName"
	ParamRegisteredOffice   = "registeredOffice"
)

// RateLimits are the per-(portal, client) thresholds.
type RateLimits struct {
	RequestsPerMinute int
	BurstLimit        int
}

// LatencyRange bounds the simulated portal response time.
type LatencyRange struct {
	Min time.Duration
	Max time.Duration
}

// Config is the static description of one portal.
type Config struct {
	Name           Name
	DisplayName    string
	Description    string
	Timeout        time.Duration
	RateLimits     RateLimits
	RequiredParams []string // at least one must be supplied
	OptionalParams []string
	ResponseTime   LatencyRange
}

// Params lists every parameter the portal accepts, required-one-of first.
// Cache keys are built in this order.
func (c Config) Params() []string {
	out := make([]string, 0, len(c.RequiredParams)+len(c.OptionalParams))
	out = append(out, c.RequiredParams...)
	return append(out, c.OptionalParams...)
}

// UnifiedConfig describes the cross-portal endpoint.
type UnifiedConfig struct {
	Timeout  time.Duration
	CacheTTL time.Duration
}

var (
	propertyIDPattern   = regexp.MustCompile(`^[A-Z]{2}\d{5,7}$`)
	registrationPattern = regexp.MustCompile(`^REG/[A-Z]{2}/\d{4}/\d{5}$`)
	cinPattern          = regexp.MustCompile(`^[UL]\d{5}[A-Z]{2}\d{4}PLC\d{6}$`)
)

// IsPropertyID reports whether s is a property identifier (two letters, 5–7 digits).
func IsPropertyID(s string) bool { return propertyIDPattern.MatchString(s) }

// IsRegistrationNumber reports whether s matches REG/XX/YYYY/NNNNN.
func IsRegistrationNumber(s string) bool { return registrationPattern.MatchString(s) }

// IsCIN reports whether s is a corporate identification number.
func IsCIN(s string) bool { return cinPattern.MatchString(s) }

// ValidateFormats checks every format-constrained parameter present in params.
func ValidateFormats(params map[string]string) error {
	if v := params[ParamPropertyID]; v != "" && !IsPropertyID(v) {
		return dErrors.New(dErrors.CodeValidation, "Invalid property ID format").
			WithDetails(map[string]any{"field": ParamPropertyID, "value": v})
	}
	if v := params[ParamRegistrationNumber]; v != "" && !IsRegistrationNumber(v) {
		return dErrors.New(dErrors.CodeValidation, "Invalid registration number format").
			WithDetails(map[string]any{"field": ParamRegistrationNumber, "value": v})
	}
	if v := params[ParamCINNumber]; v != "" && !IsCIN(v) {
		return dErrors.New(dErrors.CodeValidation, "Invalid CIN number format").
			WithDetails(map[string]any{"field": ParamCINNumber, "value": v})
	}
	return nil
}
