/*
Package server implements msgpack IPC for the search core.

The server reads a stream of msgpack-encoded requests from stdin and writes
one msgpack response per request to stdout, the same process-communication
shape the Mini App dev harness and editor-style integrations use. Messages
carry an ID the client echoes back to correlate responses.

Parse a search query into free text, tags and backend parameters:

	{"id": "q1", "cmd": "parse", "q": "отпуск от:Иван >5mb"}

Ask for completions of the trailing partial word:

	{"id": "c1", "cmd": "complete", "p": "отп", "l": 8}

Manage the dictionary at runtime:

	{"id": "d1", "cmd": "dict", "action": "info"}
	{"id": "d2", "cmd": "dict", "action": "reload"}

Responses include per-request timing in microseconds. Bad frames produce an
ErrorResponse; only a broken stdin stream stops the loop.
*/
package server

import "github.com/filebox/searchkit/pkg/query"

// Request is the envelope for every incoming command.
type Request struct {
	ID       string `msgpack:"id"`
	Cmd      string `msgpack:"cmd"`
	Query    string `msgpack:"q,omitempty"`      // parse
	Prefix   string `msgpack:"p,omitempty"`      // complete
	Limit    int    `msgpack:"l,omitempty"`      // complete
	Action   string `msgpack:"action,omitempty"` // dict: "info" | "reload"
	Category string `msgpack:"cat,omitempty"`    // dict reload filter
}

// ParseResponse answers a parse command.
type ParseResponse struct {
	ID        string            `msgpack:"id"`
	Text      string            `msgpack:"text"`
	Tags      []query.Tag       `msgpack:"tags"`
	Params    map[string]string `msgpack:"params"`
	TimeTaken int64             `msgpack:"t"`
}

// CompleteResponse answers a complete command.
type CompleteResponse struct {
	ID        string   `msgpack:"id"`
	Words     []string `msgpack:"s"`
	Count     int      `msgpack:"c"`
	TimeTaken int64    `msgpack:"t"`
}

// DictResponse answers a dict command.
type DictResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
	Words  int    `msgpack:"words,omitempty"`
	Error  string `msgpack:"error,omitempty"`
}

// ErrorResponse reports a request-level failure.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
