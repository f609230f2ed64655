package domain

// RawDocument is one publication of a source before parsing.
// Fetchers and file readers produce it; parsers consume it.
type RawDocument struct {
	// Source names the publication format (e.g. "studentenwerk").
	Source string

	// Location is the canteen key. Required for HTML sources.
	Location string

	// URI is the original location (file path, URL).
	URI string

	// MIMEType is the content type ("text/html" or "text/plain").
	MIMEType string

	// Content is the raw bytes.
	Content []byte

	// Year and Week identify the ISO calendar week of a text publication.
	// Text files do not state their own dates.
	Year int
	Week int
}
