package relevance

import (
	"math"
	"strings"
	"testing"

	"go-newspulse-automation/internal/ner"

	"github.com/stretchr/testify/assert"
)

//fake recognizer that always finds the given organization
type stubRecognizer struct {
	org string
}

func (s stubRecognizer) Recognize(string) ([]ner.Entity, error) {
	if s.org == "" {
		return nil, nil
	}
	return []ner.Entity{{Text: s.org, Type: ner.Organization}}, nil
}

func (s stubRecognizer) Name() string { return "stub" }

var trabaProfile = EntityProfile{
	Name:              "Traba",
	IndustryTerms:     []string{"staffing", "gig economy"},
	IdentifierPhrases: []string{"Traba Inc"},
	MinScore:          0.6,
}

func TestScoreEmptyInputs(t *testing.T) {
	s := NewScorer(ner.Disabled{})

	for _, text := range []string{"", "some unrelated text"} {
		b := s.Score(text, trabaProfile)
		assert.Equal(t, 0.0, b.Confidence)
		assert.False(t, b.Relevant)
	}

	b := s.Score("Traba raised funding", EntityProfile{Name: ""})
	assert.Equal(t, 0.0, b.Confidence)
	assert.False(t, b.Relevant)
}

func TestScoreZeroMentionsIsHardGate(t *testing.T) {
	s := NewScorer(stubRecognizer{org: "Traba"})

	//all other signals present, but the company is never named
	text := "A staffing startup in the gig economy raised funding."
	b := s.Score(text, trabaProfile)
	assert.Equal(t, 0, b.Mentions)
	assert.Equal(t, 0.0, b.Confidence)
	assert.False(t, b.Relevant)
}

func TestScoreWordBoundaries(t *testing.T) {
	s := NewScorer(ner.Disabled{})

	//"Traba" must not match inside "Trabant"
	b := s.Score("The Trabant is an East German car.", trabaProfile)
	assert.Equal(t, 0, b.Mentions)
	assert.False(t, b.Relevant)

	b = s.Score("traba, TRABA and Traba.", trabaProfile)
	assert.Equal(t, 3, b.Mentions)
}

func TestNameFrequencyMonotoneAndCapped(t *testing.T) {
	s := NewScorer(ner.Disabled{})

	prev := 0.0
	for m := 1; m <= 40; m++ {
		text := strings.TrimSpace(strings.Repeat("Traba ", m))
		b := s.Score(text, trabaProfile)
		assert.Equal(t, m, b.Mentions)
		assert.GreaterOrEqual(t, b.NameFrequency, prev)
		assert.LessOrEqual(t, b.NameFrequency, 0.7)
		prev = b.NameFrequency
	}
}

func TestScoreIdempotent(t *testing.T) {
	s := NewScorer(stubRecognizer{org: "Traba Inc"})
	text := "Traba Inc is a staffing startup in the gig economy."

	first := s.Score(text, trabaProfile)
	second := s.Score(text, trabaProfile)
	assert.Equal(t, first, second)
}

func TestConfidenceIsWeightedSum(t *testing.T) {
	s := NewScorer(stubRecognizer{org: "Traba Inc"})
	text := "Traba Inc is a staffing startup, Traba again."

	b := s.Score(text, trabaProfile)
	want := 0.15*b.NameFrequency + 0.25*b.EntityRecognition +
		0.30*b.IndustryTerms + 0.30*b.IdentifierTerms
	assert.InDelta(t, want, b.Confidence, 1e-9)
}

func TestThresholdBoundaryInclusive(t *testing.T) {
	s := NewScorer(ner.Disabled{})
	text := "Traba Inc is a staffing startup in the gig economy, Traba Inc raised funding"

	b := s.Score(text, trabaProfile)

	//engineer the threshold to be exactly the confidence: still relevant
	profile := trabaProfile
	profile.MinScore = b.Confidence
	b = s.Score(text, profile)
	assert.True(t, b.Relevant)
}

// Full scenario with NER unavailable (neutral 0.4 fallback)
func TestScoreFundingAnnouncement(t *testing.T) {
	s := NewScorer(ner.Disabled{})
	text := "Traba Inc is a staffing startup in the gig economy, Traba Inc raised funding"

	b := s.Score(text, trabaProfile)

	assert.Equal(t, 2, b.Mentions)
	assert.InDelta(t, 0.2+0.5*math.Log(3)/math.Log(11), b.NameFrequency, 1e-9)
	assert.InDelta(t, 0.4, b.EntityRecognition, 1e-9) //disabled => neutral
	assert.InDelta(t, 0.8, b.IndustryTerms, 1e-9)     //2/2 matched
	assert.InDelta(t, 1.0, b.IdentifierTerms, 1e-9)   //1/1 matched
	assert.ElementsMatch(t, []string{"staffing", "gig economy"}, b.MatchedIndustryTerms)
	assert.ElementsMatch(t, []string{"Traba Inc"}, b.MatchedIdentifiers)
	assert.True(t, b.Relevant)
}

// Identifier phrase present but zero industry-term signal: below threshold
func TestScoreOffTopicMention(t *testing.T) {
	s := NewScorer(ner.Disabled{})
	text := "Traba Inc builds video games for children"

	b := s.Score(text, trabaProfile)

	assert.Equal(t, 1, b.Mentions)
	assert.InDelta(t, 0.2+0.5*math.Log(2)/math.Log(11), b.NameFrequency, 1e-9)
	assert.InDelta(t, 0.4, b.EntityRecognition, 1e-9)
	assert.Equal(t, 0.0, b.IndustryTerms)
	assert.InDelta(t, 1.0, b.IdentifierTerms, 1e-9)
	assert.False(t, b.Relevant)
	assert.Less(t, b.Confidence, 0.6)
}

func TestRecognitionMatchScoresFlat(t *testing.T) {
	text := "Traba raised a new round. Traba also hired. Traba again. Traba more."

	//organization containing the name => flat 0.7
	b := NewScorer(stubRecognizer{org: "Traba Inc"}).Score(text, trabaProfile)
	assert.InDelta(t, 0.7, b.EntityRecognition, 1e-9)

	//recognizer finds nothing => 0
	b = NewScorer(stubRecognizer{}).Score(text, trabaProfile)
	assert.Equal(t, 0.0, b.EntityRecognition)
}

func TestScoreUnknownCompanyDefaultProfile(t *testing.T) {
	store := NewContextStore(nil)
	profile := store.ProfileFor("Acme")
	s := NewScorer(ner.Disabled{})

	//no identifying terms configured: frequency + neutral NER alone cannot
	//reach the default threshold
	b := s.Score(strings.Repeat("Acme ", 50), profile)
	assert.Greater(t, b.Confidence, 0.0)
	assert.False(t, b.Relevant)
}

func TestScoreShortTextClampsWindow(t *testing.T) {
	s := NewScorer(stubRecognizer{org: "Traba"})

	//text shorter than the window on both sides must not panic
	b := s.Score("Traba", trabaProfile)
	assert.Equal(t, 1, b.Mentions)
	assert.InDelta(t, 0.7, b.EntityRecognition, 1e-9)
}
