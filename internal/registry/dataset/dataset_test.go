package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proplink/internal/registry/sources"
)

func TestDefaultDataset(t *testing.T) {
	s := Default()

	assert.Len(t, s.DorisRecords(), 3)
	assert.Len(t, s.DlrRecords(), 6)
	assert.Len(t, s.CersaiRecords(), 4)
	assert.Len(t, s.Mca21Records(), 3)

	assert.True(t, s.Contains(sources.DORIS, "MH1234567"))
	assert.True(t, s.Contains(sources.DLR, "TN5544332"))
	assert.True(t, s.Contains(sources.CERSAI, "CERSAI901234"))
	assert.True(t, s.Contains(sources.MCA21, "U98765DL2012PLC987654"))
	assert.False(t, s.Contains(sources.DORIS, "KA9876543"))
	assert.False(t, s.Contains(sources.Name("registry"), "MH1234567"))
}

func TestRecordsAreOrderedByKey(t *testing.T) {
	recs := Default().DlrRecords()
	for i := 1; i < len(recs); i++ {
		assert.Less(t, recs[i-1].PropertyID, recs[i].PropertyID)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := Default()

	first, ok := s.Doris("MH1234567")
	require.True(t, ok)
	first.OwnerDetails[0].Name = "Mutated"
	first.PropertyDetails.Address = "Mutated"
	*first.OwnerDetails[0].OwnershipPercentage = 1

	again, _ := s.Doris("MH1234567")
	assert.Equal(t, "Rajesh Kumar", again.OwnerDetails[0].Name)
	assert.Equal(t, "123, Pali Hill, Bandra West, Mumbai - 400050", again.PropertyDetails.Address)
	assert.InDelta(t, 50, *again.OwnerDetails[0].OwnershipPercentage, 0.001)

	company, ok := s.Mca21("L67890KA2015PLC654321")
	require.True(t, ok)
	company.PropertyHoldings[1].Encumbrances[0].Holder = "Mutated"
	company, _ = s.Mca21("L67890KA2015PLC654321")
	assert.Equal(t, "HDFC Bank", company.PropertyHoldings[1].Encumbrances[0].Holder)
}

func TestMissingKeys(t *testing.T) {
	s := Default()
	_, ok := s.Cersai("CERSAI000000")
	assert.False(t, ok)
	_, ok = s.Mca21("U00000XX0000PLC000000")
	assert.False(t, ok)
}
