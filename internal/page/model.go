package page

import (
	"encoding/json"
	"time"
)

type ContentType string

const (
	ContentText ContentType = "text"
	ContentFAQ  ContentType = "faq"
)

func ValidContentType(t ContentType) bool {
	return t == ContentText || t == ContentFAQ
}

type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Content is the decoded form of a page body: plain prose or a FAQ list,
// depending on Type. The store keeps both shapes in the same text column.
type Content struct {
	Type ContentType
	Text string
	FAQ  []QA
}

// MarshalJSON renders text content as a JSON string and faq content as the
// structured list, so API clients never have to re-parse embedded JSON.
func (c Content) MarshalJSON() ([]byte, error) {
	if c.Type == ContentFAQ {
		if c.FAQ == nil {
			return json.Marshal([]QA{})
		}
		return json.Marshal(c.FAQ)
	}
	return json.Marshal(c.Text)
}

type Page struct {
	ID          string      `json:"id"`
	TitleRU     string      `json:"titleRu"`
	TitleEN     string      `json:"titleEn"`
	ContentType ContentType `json:"contentType"`
	ContentRU   Content     `json:"contentRu"`
	ContentEN   Content     `json:"contentEn"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// Params carries a page write. Content arrives raw: prose for text pages,
// a JSON array of {question, answer} for faq pages.
type Params struct {
	ID          string
	TitleRU     string
	TitleEN     string
	ContentType ContentType
	ContentRU   string
	ContentEN   string
}

// decodeContent turns a stored text column into the tagged union. A faq
// column that no longer parses is surfaced as an error rather than served
// broken.
func decodeContent(t ContentType, raw string) (Content, error) {
	if t != ContentFAQ {
		return Content{Type: ContentText, Text: raw}, nil
	}

	faq := []QA{}
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &faq); err != nil {
			return Content{}, ErrInvalidFAQ
		}
	}
	return Content{Type: ContentFAQ, FAQ: faq}, nil
}
