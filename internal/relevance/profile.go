package relevance

import "strings"

// DefaultMinScore is the relevance threshold applied to companies with no
// configured profile.
const DefaultMinScore = 0.6

// EntityProfile is the static per-company context used to judge whether a
// document is genuinely about that company.
type EntityProfile struct {
	// Name is the canonical company name, matched whole-word in text.
	Name string
	// IndustryTerms are weak domain-association keywords ("staffing",
	// "gig economy") shared across the sector.
	IndustryTerms []string
	// IdentifierPhrases are strong, near-unambiguous markers ("Traba Inc").
	IdentifierPhrases []string
	// MinScore is the inclusive confidence threshold for relevance.
	MinScore float64
}

// ContextStore maps company name -> EntityProfile. Built once at startup,
// read-only afterwards, so it is safe to share across scoring goroutines.
type ContextStore struct {
	profiles map[string]EntityProfile
}

// NewContextStore copies the given profiles into an immutable lookup.
// Profiles with a zero MinScore get the default threshold.
func NewContextStore(profiles []EntityProfile) *ContextStore {
	m := make(map[string]EntityProfile, len(profiles))
	for _, p := range profiles {
		if p.MinScore == 0 {
			p.MinScore = DefaultMinScore
		}
		p.IndustryTerms = append([]string(nil), p.IndustryTerms...)
		p.IdentifierPhrases = append([]string(nil), p.IdentifierPhrases...)
		m[strings.ToLower(p.Name)] = p
	}
	return &ContextStore{profiles: m}
}

// ProfileFor looks up a company by name. Unknown companies get a default
// profile (empty term sets, default threshold), which reduces the relevance
// decision to the name-frequency gate; lookup never fails.
func (s *ContextStore) ProfileFor(name string) EntityProfile {
	if p, ok := s.profiles[strings.ToLower(name)]; ok {
		return p
	}
	return EntityProfile{Name: name, MinScore: DefaultMinScore}
}

// Names returns the configured company names.
func (s *ContextStore) Names() []string {
	names := make([]string, 0, len(s.profiles))
	for _, p := range s.profiles {
		names = append(names, p.Name)
	}
	return names
}

// Len is the number of configured profiles.
func (s *ContextStore) Len() int {
	return len(s.profiles)
}
