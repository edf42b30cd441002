/*
Package server implements msgpack IPC for word completion over
stdin/stdout.

The protocol is request/response: clients write one msgpack-encoded
Request per message and read one encoded response. Every message carries
an ID the response echoes back.

A completion request and its response:

	{"id": "req_001", "cmd": "complete", "p": "ca"}
	{"id": "req_001", "s": [{"w": "cat", "f": 3}, {"w": "cap", "f": 2}], "c": 2, "t": 145}

Word insertion and liveness checks:

	{"id": "add_001", "cmd": "add", "w": "cat"}
	{"id": "png_001", "cmd": "ping"}

Failures come back as structured errors with an HTTP-flavored code:

	{"id": "req_002", "e": "Missing 'p' parameter", "c": 400}

The server never returns more than ten suggestions per request; the
optional limit field can only narrow that further.
*/
package server

// Request is the single incoming message shape; Cmd selects the
// operation: "complete", "add" or "ping".
type Request struct {
	ID     string `msgpack:"id"`
	Cmd    string `msgpack:"cmd"`
	Prefix string `msgpack:"p,omitempty"`
	Word   string `msgpack:"w,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`
}

// ResponseSuggestion is one ranked completion in a response.
type ResponseSuggestion struct {
	Word      string `msgpack:"w"`
	Frequency int    `msgpack:"f"`
}

// CompletionResponse answers a "complete" request. TimeTaken is in
// microseconds.
type CompletionResponse struct {
	ID          string               `msgpack:"id"`
	Suggestions []ResponseSuggestion `msgpack:"s"`
	Count       int                  `msgpack:"c"`
	TimeTaken   int64                `msgpack:"t"`
}

// StatusResponse answers "add" and "ping" requests and announces server
// readiness at startup.
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
	Words  int    `msgpack:"words,omitempty"`
}

// ErrorResponse holds basic error information for failed requests.
type ErrorResponse struct {
	ID    string `msgpack:"id,omitempty"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
