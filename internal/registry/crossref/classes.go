package crossref

import "proplink/internal/registry/sources"

// DefaultClasses are the known equivalences across the bundled portal data.
// Order matters for companies holding several properties: the first class
// listing a company wins its single-valued lookups.
func DefaultClasses() []Class {
	return []Class{
		{sources.DORIS: "MH1234567", sources.DLR: "MH1234567", sources.CERSAI: "CERSAI123456"},
		{sources.DORIS: "MH7654321", sources.DLR: "MH7654321", sources.MCA21: "U12345MH2010PLC123456"},
		{sources.DORIS: "DL8765432", sources.DLR: "DL8765432", sources.CERSAI: "CERSAI345678", sources.MCA21: "U98765DL2012PLC987654"},
		{sources.DLR: "KA9876543", sources.CERSAI: "CERSAI789012"},
		{sources.DLR: "KA1122334", sources.MCA21: "L67890KA2015PLC654321"},
		{sources.DLR: "TN5544332", sources.CERSAI: "CERSAI901234", sources.MCA21: "L67890KA2015PLC654321"},
	}
}
