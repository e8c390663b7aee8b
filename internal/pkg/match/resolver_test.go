package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameResolver_RawContainsCandidate(t *testing.T) {
	r := NewNameResolver("company", []Candidate{
		{Code: "DN001", Name: "ABC"},
		{Code: "DN002", Name: "XYZ"},
	})

	code, ok := r.Resolve("Cong ty ABC")
	require.True(t, ok)
	assert.Equal(t, "DN001", code)

	code, ok = r.Resolve("Công ty TNHH XYZ")
	require.True(t, ok)
	assert.Equal(t, "DN002", code)
}

func TestNameResolver_CandidateContainsRaw(t *testing.T) {
	r := NewNameResolver("teacher", []Candidate{
		{Code: "GV001", Name: "TS. Trần Bình"},
	})

	code, ok := r.Resolve("Trần Bình")
	require.True(t, ok)
	assert.Equal(t, "GV001", code)
}

func TestNameResolver_DiacriticInsensitive(t *testing.T) {
	r := NewNameResolver("teacher", []Candidate{
		{Code: "GV001", Name: "Nguyễn Văn Đức"},
	})

	code, ok := r.Resolve("nguyen van duc")
	require.True(t, ok)
	assert.Equal(t, "GV001", code)
}

func TestNameResolver_MissIsNotAnError(t *testing.T) {
	r := NewNameResolver("teacher", []Candidate{
		{Code: "GV001", Name: "Tran B"},
	})

	code, ok := r.Resolve("Hoang Van Thu")
	assert.False(t, ok)
	assert.Empty(t, code)

	code, ok = r.Resolve("   ")
	assert.False(t, ok)
	assert.Empty(t, code)
}

func TestNameResolver_FirstCandidateWinsOnAmbiguity(t *testing.T) {
	// Both candidates substring-match; table order decides.
	r := NewNameResolver("company", []Candidate{
		{Code: "DN001", Name: "FPT Software"},
		{Code: "DN002", Name: "FPT"},
	})

	code, ok := r.Resolve("FPT Software Da Nang")
	require.True(t, ok)
	assert.Equal(t, "DN001", code)
}

func TestNameResolver_EmptyCandidateNamesIgnored(t *testing.T) {
	r := NewNameResolver("company", []Candidate{
		{Code: "DN001", Name: ""},
		{Code: "DN002", Name: "ABC"},
	})

	code, ok := r.Resolve("Cong ty ABC")
	require.True(t, ok)
	assert.Equal(t, "DN002", code)
}
