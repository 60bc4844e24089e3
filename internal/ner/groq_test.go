package ner

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func groqReply(content string) string {
	return `{"choices":[{"message":{"content":` + content + `}}]}`
}

func TestGroqRecognizerParsesEntities(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Write([]byte(groqReply(`"[{\"text\": \"Traba Inc\", \"type\": \"ORG\"}, {\"text\": \"Mike\", \"type\": \"PERSON\"}]"`)))
	}))
	defer srv.Close()

	c := NewGroqRecognizer("test-key")
	c.baseURL = srv.URL

	entities, err := c.Recognize("Traba Inc was founded by Mike.")

	assert.NoError(t, err)
	assert.Equal(t, []Entity{
		{Text: "Traba Inc", Type: Organization},
		{Text: "Mike", Type: Person},
	}, entities)
}

func TestGroqRecognizerStripsMarkdownFence(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(groqReply(`"` + "```json\\n[{\\\"text\\\": \\\"Acme\\\", \\\"type\\\": \\\"COMPANY\\\"}]\\n```" + `"`)))
	}))
	defer srv.Close()

	c := NewGroqRecognizer("test-key")
	c.baseURL = srv.URL

	entities, err := c.Recognize("Acme shipped a product.")

	assert.NoError(t, err)
	assert.Equal(t, []Entity{{Text: "Acme", Type: Organization}}, entities)
}

func TestGroqRecognizerAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer srv.Close()

	c := NewGroqRecognizer("test-key")
	c.baseURL = srv.URL

	_, err := c.Recognize("anything")
	assert.Error(t, err)
}

func TestDisabledRecognizer(t *testing.T) {
	_, err := Disabled{}.Recognize("Traba raised funding")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestNormalizeType(t *testing.T) {
	assert.Equal(t, Organization, normalizeType("org"))
	assert.Equal(t, Organization, normalizeType(" Company "))
	assert.Equal(t, Person, normalizeType("PER"))
	assert.Equal(t, Location, normalizeType("LOC"))
	assert.Equal(t, Other, normalizeType("DATE"))
}
