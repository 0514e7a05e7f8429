// Package rawhttp performs single-shot HTTP/1.1 exchanges directly over a
// TCP (or TLS) socket, without net/http. It exists to show what an HTTP
// library does on the caller's behalf: building the request text, writing it
// to the connection, and splitting the response bytes back into status line,
// headers, and body.
//
// The client is intentionally minimal. Every request carries
// "Connection: close" and the response is read until the peer closes the
// connection; chunked transfer encoding, keep-alive, redirects, retries, and
// timeouts are all out of scope.
package rawhttp
