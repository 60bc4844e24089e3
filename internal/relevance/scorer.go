// Relevance scorer: decides whether a block of text is genuinely about a
// target company. Pure function over (text, profile) plus the injected NER
// capability; no cross-call state, safe for concurrent use.

package relevance

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"go-newspulse-automation/internal/ner"

	mapset "github.com/deckarep/golang-set/v2"
)

const (
	// context window around each mention handed to NER
	windowRadius = 50
	// NER runs on at most this many windows per document (cost control)
	maxRecognitionWindows = 3

	// per-signal caps: no single signal can saturate the confidence past
	// its weight share
	nameFrequencyBase = 0.2
	nameFrequencyCap  = 0.7
	recognitionScore  = 0.7
	recognitionNeutralScore = 0.4
	industryTermsCap  = 0.8
	identifierBase    = 0.5

	// weights sum to 1.0: explicit identifiers and domain-term density are
	// stronger evidence than raw name frequency
	weightNameFrequency = 0.15
	weightRecognition   = 0.25
	weightIndustry      = 0.30
	weightIdentifier    = 0.30
)

// Breakdown is the result of one scoring call.
type Breakdown struct {
	Mentions          int     `json:"mentions"`
	NameFrequency     float64 `json:"name_frequency"`
	EntityRecognition float64 `json:"entity_recognition"`
	IndustryTerms     float64 `json:"industry_terms"`
	IdentifierTerms   float64 `json:"identifier_terms"`

	MatchedIndustryTerms []string `json:"matched_industry_terms,omitempty"`
	MatchedIdentifiers   []string `json:"matched_identifiers,omitempty"`

	Confidence float64 `json:"confidence"`
	Relevant   bool    `json:"relevant"`
}

type Scorer struct {
	recognizer ner.Recognizer
}

// NewScorer builds a scorer around the given recognition capability.
// Passing nil selects the disabled backend (fixed neutral sub-score).
func NewScorer(recognizer ner.Recognizer) *Scorer {
	if recognizer == nil {
		recognizer = ner.Disabled{}
	}
	return &Scorer{recognizer: recognizer}
}

// Score runs the full signal pipeline over text for one company profile.
// Empty text or an empty profile name is not an error: confidence 0.
func (s *Scorer) Score(text string, profile EntityProfile) Breakdown {
	if text == "" || profile.Name == "" {
		return Breakdown{}
	}

	//step 1: whole-word mention count is a hard gate
	matches := findMentions(text, profile.Name)
	if len(matches) == 0 {
		return Breakdown{}
	}
	result := Breakdown{Mentions: len(matches)}

	//step 2: diminishing-returns frequency score
	result.NameFrequency = nameFrequencyScore(len(matches))

	//step 3: ±50 char windows, one per mention, overlaps kept
	windows := contextWindows(text, matches)
	if len(windows) == 0 {
		// should not happen after step 1
		return Breakdown{}
	}

	//step 4: NER over the first windows
	result.EntityRecognition = s.recognitionScore(windows, profile.Name)

	//steps 5-6: term matching over the full text
	lowerText := strings.ToLower(text)
	result.IndustryTerms, result.MatchedIndustryTerms = termScore(
		lowerText, profile.IndustryTerms, 0, industryTermsCap)
	result.IdentifierTerms, result.MatchedIdentifiers = termScore(
		lowerText, profile.IdentifierPhrases, identifierBase, 1.0)

	//steps 7-8: weighted confidence, inclusive threshold
	result.Confidence = weightNameFrequency*result.NameFrequency +
		weightRecognition*result.EntityRecognition +
		weightIndustry*result.IndustryTerms +
		weightIdentifier*result.IdentifierTerms
	result.Relevant = result.Confidence >= profile.MinScore

	return result
}

// IsAboutCompany is the retain/discard form used by the collection pipeline.
func (s *Scorer) IsAboutCompany(text string, profile EntityProfile) (bool, float64) {
	b := s.Score(text, profile)
	return b.Relevant, b.Confidence
}

// MentionCount counts case-insensitive whole-word occurrences of name in
// text. Exposed for cheap prefiltering before a full scoring pass.
func MentionCount(text, name string) int {
	if text == "" || name == "" {
		return 0
	}
	return len(findMentions(text, name))
}

// findMentions returns the byte ranges of case-insensitive whole-word
// occurrences of name, so "Traba" does not match inside "Trabant".
func findMentions(text, name string) [][]int {
	if hasWordEdges(name) {
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(name) + `\b`)
		if err == nil {
			return re.FindAllStringIndex(text, -1)
		}
	}

	// names with non-word edges defeat \b; fall back to substring scan
	var matches [][]int
	lowerText, lowerName := strings.ToLower(text), strings.ToLower(name)
	for from := 0; ; {
		i := strings.Index(lowerText[from:], lowerName)
		if i < 0 {
			break
		}
		start := from + i
		matches = append(matches, []int{start, start + len(lowerName)})
		from = start + len(lowerName)
	}
	return matches
}

func hasWordEdges(name string) bool {
	first, _ := utf8.DecodeRuneInString(name)
	last, _ := utf8.DecodeLastRuneInString(name)
	return isWordRune(first) && isWordRune(last)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// nameFrequencyScore maps mention count m (m >= 1) to [0.2, 0.7]:
// min(0.7, 0.2 + 0.5*log(1+m)/log(1+10)). A single mention already carries
// partial evidence; further mentions add diminishing confidence.
func nameFrequencyScore(m int) float64 {
	return math.Min(nameFrequencyCap,
		nameFrequencyBase+0.5*math.Log(1+float64(m))/math.Log(11))
}

// contextWindows clamps each mention window to the text bounds.
func contextWindows(text string, matches [][]int) []string {
	windows := make([]string, 0, len(matches))
	for _, m := range matches {
		start := m[0] - windowRadius
		if start < 0 {
			start = 0
		}
		end := m[1] + windowRadius
		if end > len(text) {
			end = len(text)
		}
		windows = append(windows, text[start:end])
	}
	return windows
}

// recognitionScore runs NER over at most the first three windows. Any
// organization entity containing the target name scores a flat 0.7. A
// disabled recognizer degrades to the fixed neutral 0.4; other recognizer
// errors just skip the window.
func (s *Scorer) recognitionScore(windows []string, name string) float64 {
	lowerName := strings.ToLower(name)
	limit := len(windows)
	if limit > maxRecognitionWindows {
		limit = maxRecognitionWindows
	}

	for _, window := range windows[:limit] {
		entities, err := s.recognizer.Recognize(window)
		if errors.Is(err, ner.ErrUnavailable) {
			return recognitionNeutralScore
		}
		if err != nil {
			continue
		}
		for _, e := range entities {
			if e.Type != ner.Organization {
				continue
			}
			if strings.Contains(strings.ToLower(e.Text), lowerName) {
				return recognitionScore
			}
		}
	}
	return 0
}

// termScore counts the configured terms appearing (case-insensitive) as
// substrings of the full text. Industry terms (base 0) score
// ceil*matched/total; identifier phrases (base 0.5) score
// base + 0.5*matched/total once at least one phrase hits.
func termScore(lowerText string, terms []string, base, ceil float64) (float64, []string) {
	if len(terms) == 0 {
		return 0, nil
	}

	matched := mapset.NewThreadUnsafeSet[string]()
	for _, term := range terms {
		if term == "" {
			continue
		}
		if strings.Contains(lowerText, strings.ToLower(term)) {
			matched.Add(term)
		}
	}
	if matched.Cardinality() == 0 {
		return 0, nil
	}

	fraction := float64(matched.Cardinality()) / float64(len(terms))
	var score float64
	if base > 0 {
		score = base + 0.5*fraction
	} else {
		score = ceil * fraction
	}

	//set iteration order is random; keep Score deterministic
	matchedTerms := matched.ToSlice()
	sort.Strings(matchedTerms)
	return math.Min(ceil, score), matchedTerms
}
