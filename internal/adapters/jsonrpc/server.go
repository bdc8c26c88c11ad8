// Package jsonrpc connects a launcher host to the application over newline-delimited JSON-RPC 2.0.
package jsonrpc

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"sync"

	"go.trai.ch/edgetabs/internal/core/domain"
	"go.trai.ch/edgetabs/internal/core/ports"
	"go.trai.ch/edgetabs/internal/json"
	"go.trai.ch/zerr"
)

// MethodActivate is the method results call back with [snapshotID, entryID].
const MethodActivate = "activate"

// Server answers host requests one line at a time.
type Server struct {
	runtime ports.HostRuntime
	logger  ports.Logger
	mu      sync.Mutex
}

// NewServer creates a Server driving runtime.
func NewServer(runtime ports.HostRuntime, logger ports.Logger) *Server {
	return &Server{runtime: runtime, logger: logger}
}

type line struct {
	data []byte
	err  error
}

// Serve reads requests from in until it is exhausted or ctx is done and writes
// responses to out. It returns nil at end of input.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	lines := make(chan line)
	go func() {
		defer close(lines)
		reader := bufio.NewReader(in)
		for {
			data, err := reader.ReadBytes('\n')
			if len(bytes.TrimSpace(data)) > 0 {
				select {
				case lines <- line{data: data}:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					select {
					case lines <- line{err: err}:
					case <-ctx.Done():
					}
				}
				return
			}
		}
	}()

	enc := json.NewEncoder(out)
	for {
		select {
		case <-ctx.Done():
			return nil
		case l, ok := <-lines:
			if !ok {
				return nil
			}
			if l.err != nil {
				return zerr.Wrap(l.err, domain.ErrHostIO.Error())
			}
			resp, reply := s.Handle(ctx, l.data)
			if !reply {
				continue
			}
			if err := s.write(enc, resp); err != nil {
				return err
			}
		}
	}
}

func (s *Server) write(enc *json.Encoder, resp Response) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := enc.Encode(resp); err != nil {
		return zerr.Wrap(err, domain.ErrHostIO.Error())
	}
	return nil
}

// Handle processes one raw request. It reports false for notifications, which get no response.
func (s *Server) Handle(ctx context.Context, data []byte) (Response, bool) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		s.logger.Warn("malformed request: " + err.Error())
		return errorResponse(nullID, CodeParseError, "parse error"), true
	}

	notification := len(req.ID) == 0
	id := req.ID
	if notification {
		id = nullID
	}

	if req.JSONRPC != version || req.Method == "" {
		return errorResponse(id, CodeInvalidRequest, "invalid request"), true
	}

	result, rpcErr := s.dispatch(ctx, req)
	if notification {
		return Response{}, false
	}
	if rpcErr != nil {
		return Response{JSONRPC: version, ID: id, Error: rpcErr}, true
	}
	return Response{JSONRPC: version, ID: id, Result: result}, true
}

func (s *Server) dispatch(ctx context.Context, req Request) (any, *Error) {
	switch req.Method {
	case "initialize":
		var params InitializeParams
		if err := decodeParams(req.Params, &params, false); err != nil {
			return nil, err
		}
		s.runtime.Init(ctx, domain.HostContext{
			PluginName:    params.PluginName,
			Version:       params.Version,
			ActionKeyword: params.ActionKeyword,
		})
		return true, nil

	case "query":
		var params QueryParams
		if err := decodeParams(req.Params, &params, true); err != nil {
			return nil, err
		}
		entries := s.runtime.Query(ctx, domain.Query{Search: params.Search, ActionKeyword: params.ActionKeyword})
		return toResults(entries), nil

	case MethodActivate:
		var params []string
		if err := decodeParams(req.Params, &params, true); err != nil {
			return nil, err
		}
		if len(params) != 2 {
			return nil, &Error{Code: CodeInvalidParams, Message: "expected [snapshotID, entryID]"}
		}
		if err := s.runtime.Activate(ctx, params[0], params[1]); err != nil {
			s.logger.Error(err)
			return nil, &Error{Code: CodeInternalError, Message: err.Error()}
		}
		return true, nil

	case "invalidate":
		s.runtime.Invalidate()
		return true, nil

	default:
		return nil, &Error{Code: CodeMethodNotFound, Message: "method not found: " + req.Method}
	}
}

func decodeParams(raw json.RawMessage, target any, required bool) *Error {
	if len(raw) == 0 || bytes.Equal(raw, nullID) {
		if required {
			return &Error{Code: CodeInvalidParams, Message: "missing params"}
		}
		return nil
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return &Error{Code: CodeInvalidParams, Message: "invalid params: " + err.Error()}
	}
	return nil
}

func toResults(entries []domain.TabEntry) []Result {
	results := make([]Result, len(entries))
	for i, e := range entries {
		results[i] = Result{
			Title:    e.Title,
			SubTitle: e.Category,
			IcoPath:  e.Icon,
			Score:    e.Score,
			JSONRPCAction: Action{
				Method:     MethodActivate,
				Parameters: []string{e.Snapshot, e.ID},
			},
		}
	}
	return results
}

func errorResponse(id json.RawMessage, code int, msg string) Response {
	return Response{JSONRPC: version, ID: id, Error: &Error{Code: code, Message: msg}}
}
