package recipe

import (
	"net/url"
	"strings"
)

// Source records where a recipe came from. It is either a URLSource or
// an OtherSource.
type Source interface {
	String() string
	isSource()
}

// URLSource is a source that parsed as an absolute URL.
type URLSource struct {
	URL *url.URL
}

// OtherSource is any source text that is not a URL, such as a book title.
type OtherSource struct {
	Text string
}

func (s URLSource) String() string {
	if s.URL == nil {
		return ""
	}
	return s.URL.String()
}

func (s OtherSource) String() string { return s.Text }

func (URLSource) isSource()   {}
func (OtherSource) isSource() {}

// ParseSource converts s into a Source. It never fails: text that does not
// parse as an absolute URL, or that contains whitespace, is kept verbatim
// as an OtherSource. Only URL-shaped text becomes a URLSource; a title such
// as "https://example.com/a b" stays as written instead of being
// percent-encoded.
func ParseSource(s string) Source {
	if strings.ContainsAny(s, " \t\n\r\f\v") {
		return OtherSource{Text: s}
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return OtherSource{Text: s}
	}
	return URLSource{URL: u}
}
