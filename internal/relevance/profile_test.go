package relevance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextStoreLookup(t *testing.T) {
	store := NewContextStore([]EntityProfile{
		{
			Name:              "Traba",
			IndustryTerms:     []string{"staffing"},
			IdentifierPhrases: []string{"Traba Inc"},
			MinScore:          0.55,
		},
		{Name: "Acme"}, //no threshold configured
	})

	assert.Equal(t, 2, store.Len())

	p := store.ProfileFor("traba") //lookup is case-insensitive
	assert.Equal(t, "Traba", p.Name)
	assert.Equal(t, 0.55, p.MinScore)

	//zero threshold gets the default
	assert.Equal(t, DefaultMinScore, store.ProfileFor("Acme").MinScore)
}

func TestContextStoreUnknownCompanyDefault(t *testing.T) {
	store := NewContextStore(nil)

	p := store.ProfileFor("Initech")
	assert.Equal(t, "Initech", p.Name)
	assert.Equal(t, DefaultMinScore, p.MinScore)
	assert.Empty(t, p.IndustryTerms)
	assert.Empty(t, p.IdentifierPhrases)
}

func TestContextStoreCopiesTermSlices(t *testing.T) {
	terms := []string{"staffing"}
	store := NewContextStore([]EntityProfile{{Name: "Traba", IndustryTerms: terms}})

	//mutating the caller's slice must not leak into the store
	terms[0] = "mutated"
	assert.Equal(t, []string{"staffing"}, store.ProfileFor("Traba").IndustryTerms)
}
