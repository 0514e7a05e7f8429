package rawhttp

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/url"
	"strings"
)

// CRLF is the HTTP/1.1 line terminator.
const CRLF = "\r\n"

// Request describes one raw HTTP exchange to perform.
type Request struct {
	// URL is the absolute target URL (http or https).
	URL string

	// Method is the HTTP method; empty defaults to GET.
	Method string

	// Headers are additional request headers sent after Host and
	// Connection: close.
	Headers map[string]string

	// Body is the optional request body. When non-empty a Content-Length
	// header is added automatically.
	Body string
}

// Do performs a single blocking HTTP exchange over a fresh socket.
//
// It resolves host, port, and path from req.URL (port defaults to 80 for
// http and 443 for https), dials the peer, writes one well-formed HTTP/1.1
// request, and reads the response until the peer closes the connection. The
// socket is closed unconditionally before returning.
//
// ctx cancels the dial; once the request has been written the read blocks
// until EOF, mirroring the exchange's "Connection: close" contract.
//
// The returned string is the complete raw response: status line, headers,
// and body, exactly as received.
func Do(ctx context.Context, req Request) (string, error) {
	target, err := url.Parse(req.URL)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	if target.Scheme != "http" && target.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", target.Scheme)
	}

	host := target.Hostname()
	if host == "" {
		return "", fmt.Errorf("url %q has no host", req.URL)
	}

	port := target.Port()
	if port == "" {
		if target.Scheme == "https" {
			port = "443"
		} else {
			port = "80"
		}
	}

	conn, err := dial(ctx, target.Scheme, host, port)
	if err != nil {
		return "", fmt.Errorf("dial %s:%s: %w", host, port, err)
	}
	defer conn.Close()

	if _, err = conn.Write([]byte(BuildRequest(req, host))); err != nil {
		return "", fmt.Errorf("write request: %w", err)
	}

	// Read everything the peer sends before closing the connection.
	raw, err := io.ReadAll(conn)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	return string(raw), nil
}

// BuildRequest renders the full HTTP/1.1 request text for req, targeting
// host. The request always carries Host and Connection: close, then any
// caller headers in map order, then Content-Length and the body when a body
// is present. The header block is terminated by an empty line.
func BuildRequest(req Request, host string) string {
	method := req.Method
	if method == "" {
		method = "GET"
	}

	path := "/"
	if target, err := url.Parse(req.URL); err == nil {
		if target.Path != "" {
			path = target.Path
		}
		if target.RawQuery != "" {
			path += "?" + target.RawQuery
		}
	}

	lines := []string{
		fmt.Sprintf("%s %s HTTP/1.1", method, path),
		fmt.Sprintf("Host: %s", host),
		"Connection: close",
	}

	for key, value := range req.Headers {
		lines = append(lines, fmt.Sprintf("%s: %s", key, value))
	}

	if req.Body != "" {
		lines = append(lines, fmt.Sprintf("Content-Length: %d", len(req.Body)))
		lines = append(lines, "") // empty line before body
		lines = append(lines, req.Body)
		return strings.Join(lines, CRLF)
	}

	// No body: terminate the last header line and add the blank line that
	// ends the header block.
	return strings.Join(lines, CRLF) + CRLF + CRLF
}

func dial(ctx context.Context, scheme, host, port string) (net.Conn, error) {
	address := net.JoinHostPort(host, port)

	if scheme == "https" {
		dialer := &tls.Dialer{Config: &tls.Config{ServerName: host}}
		return dialer.DialContext(ctx, "tcp", address)
	}

	dialer := &net.Dialer{}
	return dialer.DialContext(ctx, "tcp", address)
}
