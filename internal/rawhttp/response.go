package rawhttp

import (
	"fmt"
	"strconv"
	"strings"
)

// Response holds the parsed components of a raw HTTP response.
type Response struct {
	// Protocol is the protocol token of the status line, e.g. "HTTP/1.1".
	Protocol string

	// StatusCode is the numeric status code, e.g. 200.
	StatusCode int

	// StatusMessage is the reason phrase, e.g. "OK".
	StatusMessage string

	// Headers maps header names to values, one entry per header line.
	// Later duplicates overwrite earlier ones.
	Headers map[string]string

	// Body is everything after the first blank line, rejoined with CRLF.
	Body string
}

// Parse splits a raw HTTP response string into its components.
//
// The first line is the status line (protocol, numeric code, reason phrase).
// Subsequent "key: value" lines are collected as headers until the first
// blank line; everything after that is the body. Lines without a colon in
// the header block are skipped.
//
// Returns an error if the input is empty, the status line does not have
// three space-separated parts, or the status code is not numeric. Chunked
// bodies and multi-part header blocks are not understood; the body is
// returned verbatim.
func Parse(raw string) (Response, error) {
	if raw == "" {
		return Response{}, fmt.Errorf("empty response")
	}

	lines := strings.Split(raw, CRLF)

	// First line is the status line.
	parts := strings.SplitN(lines[0], " ", 3)
	if len(parts) < 3 {
		return Response{}, fmt.Errorf("malformed status line %q", lines[0])
	}

	statusCode, err := strconv.Atoi(parts[1])
	if err != nil {
		return Response{}, fmt.Errorf("non-numeric status code %q: %w", parts[1], err)
	}

	// Headers run until the first empty line.
	headers := make(map[string]string)
	bodyStart := len(lines)
	for i := 1; i < len(lines); i++ {
		line := lines[i]
		if line == "" {
			bodyStart = i + 1
			break
		}
		if key, value, found := strings.Cut(line, ":"); found {
			headers[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}
	}

	// Body is everything after the headers.
	var body string
	if bodyStart < len(lines) {
		body = strings.Join(lines[bodyStart:], CRLF)
	}

	return Response{
		Protocol:      parts[0],
		StatusCode:    statusCode,
		StatusMessage: parts[2],
		Headers:       headers,
		Body:          body,
	}, nil
}
