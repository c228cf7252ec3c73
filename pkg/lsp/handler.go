// Package lsp serves document formatting and syntax diagnostics for Java
// files over the Language Server Protocol.
package lsp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"sync"
	"unicode"

	"github.com/creachadair/jrpc2"
	"github.com/spf13/afero"

	"github.com/vito/jfmt/pkg/javaparse"
	"github.com/vito/jfmt/pkg/jfmt"
)

// Handler dispatches LSP methods. It implements jrpc2.Assigner.
type Handler struct {
	fs afero.Fs

	mu       sync.Mutex
	srv      *jrpc2.Server
	files    map[DocumentURI]*File
	rootPath string
	config   jfmt.Config
	// projectConfig is set when config came from a jfmt.toml, which takes
	// precedence over the client's formatting options.
	projectConfig bool
	shutdown      bool
}

// File is an open document.
type File struct {
	LanguageID  string
	Text        string
	Version     int
	Diagnostics []Diagnostic
}

// NewHandler returns a handler that looks up jfmt.toml on fs.
func NewHandler(fs afero.Fs) *Handler {
	return &Handler{
		fs:     fs,
		files:  map[DocumentURI]*File{},
		config: jfmt.DefaultConfig(),
	}
}

// SetServer gives the handler a server to push notifications through.
func (h *Handler) SetServer(srv *jrpc2.Server) {
	h.mu.Lock()
	h.srv = srv
	h.mu.Unlock()
}

// Assign implements jrpc2.Assigner.
func (h *Handler) Assign(ctx context.Context, method string) jrpc2.Handler {
	slog.DebugContext(ctx, "assign", "method", method)

	switch method {
	case "initialize":
		return h.handleInitialize
	case "initialized":
		return noop
	case "shutdown":
		return h.handleShutdown
	case "exit":
		return h.handleExit
	}

	h.mu.Lock()
	down := h.shutdown
	h.mu.Unlock()
	if down {
		return func(context.Context, *jrpc2.Request) (any, error) {
			return nil, jrpc2.Errorf(jrpc2.InvalidRequest, "server is shutting down")
		}
	}

	switch method {
	case "textDocument/didOpen":
		return h.handleTextDocumentDidOpen
	case "textDocument/didChange":
		return h.handleTextDocumentDidChange
	case "textDocument/didSave":
		return noop
	case "textDocument/didClose":
		return h.handleTextDocumentDidClose
	case "textDocument/formatting":
		return h.handleTextDocumentFormatting
	}
	return nil
}

// Names implements jrpc2.Namer.
func (h *Handler) Names() []string {
	return []string{
		"exit",
		"initialize",
		"initialized",
		"shutdown",
		"textDocument/didChange",
		"textDocument/didClose",
		"textDocument/didOpen",
		"textDocument/didSave",
		"textDocument/formatting",
	}
}

func noop(context.Context, *jrpc2.Request) (any, error) {
	return nil, nil
}

func isWindowsDrivePath(path string) bool {
	if len(path) < 4 {
		return false
	}
	return unicode.IsLetter(rune(path[0])) && path[1] == ':'
}

func isWindowsDriveURI(uri string) bool {
	if len(uri) < 4 {
		return false
	}
	return uri[0] == '/' && unicode.IsLetter(rune(uri[1])) && uri[2] == ':'
}

func fromURI(uri DocumentURI) (string, error) {
	u, err := url.ParseRequestURI(string(uri))
	if err != nil {
		return "", err
	}
	if u.Scheme != "file" {
		return "", fmt.Errorf("only file URIs are supported, got %v", u.Scheme)
	}
	if isWindowsDriveURI(u.Path) {
		u.Path = u.Path[1:]
	}
	return u.Path, nil
}

func toURI(path string) DocumentURI {
	if isWindowsDrivePath(path) {
		path = "/" + path
	}
	return DocumentURI((&url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(path),
	}).String())
}

func (h *Handler) notify(ctx context.Context, method string, params any) {
	h.mu.Lock()
	srv := h.srv
	h.mu.Unlock()
	if srv == nil {
		return
	}
	if err := srv.Notify(ctx, method, params); err != nil {
		slog.ErrorContext(ctx, "failed to notify", "method", method, "error", err)
	}
}

func (h *Handler) logMessage(ctx context.Context, typ MessageType, message string) {
	h.notify(ctx, "window/logMessage", &LogMessageParams{
		Type:    typ,
		Message: message,
	})
}

func (h *Handler) file(uri DocumentURI) (File, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	f, ok := h.files[uri]
	if !ok {
		return File{}, false
	}
	return *f, true
}

func (h *Handler) openFile(uri DocumentURI, languageID string, version int) {
	h.mu.Lock()
	h.files[uri] = &File{
		LanguageID: languageID,
		Version:    version,
	}
	h.mu.Unlock()
}

func (h *Handler) closeFile(ctx context.Context, uri DocumentURI) {
	h.mu.Lock()
	delete(h.files, uri)
	h.mu.Unlock()

	// clear stale diagnostics
	h.notify(ctx, "textDocument/publishDiagnostics", &PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: []Diagnostic{},
	})
}

// updateFile stores new text for uri, parses it and publishes the
// resulting diagnostics.
func (h *Handler) updateFile(ctx context.Context, uri DocumentURI, text string, version int) error {
	path, err := fromURI(uri)
	if err != nil {
		return fmt.Errorf("file path from URI: %w", err)
	}

	diagnostics := []Diagnostic{}
	if _, err := javaparse.Parse(ctx, path, []byte(text)); err != nil {
		slog.DebugContext(ctx, "parse failed", "path", path, "error", err)
		diagnostics = append(diagnostics, errorToDiagnostic(err))
	}

	h.mu.Lock()
	f, ok := h.files[uri]
	if !ok {
		h.mu.Unlock()
		return fmt.Errorf("document not found: %v", uri)
	}
	f.Text = text
	f.Version = version
	f.Diagnostics = diagnostics
	h.mu.Unlock()

	slog.InfoContext(ctx, "file updated", "path", path, "version", version)

	h.notify(ctx, "textDocument/publishDiagnostics", &PublishDiagnosticsParams{
		URI:         uri,
		Version:     version,
		Diagnostics: diagnostics,
	})
	return nil
}

// errorToDiagnostic places a parse failure at its reported position.
// Errors without one land at the start of the document.
func errorToDiagnostic(err error) Diagnostic {
	var line, col int
	var syntaxErr *javaparse.SyntaxError
	var unsupportedErr *javaparse.UnsupportedError
	switch {
	case errors.As(err, &syntaxErr):
		line, col = syntaxErr.Line, syntaxErr.Column
	case errors.As(err, &unsupportedErr):
		line, col = unsupportedErr.Line, unsupportedErr.Column
	}

	// LSP positions are 0-based, parser positions 1-based
	start := Position{}
	if line > 0 {
		start = Position{Line: line - 1, Character: max(col-1, 0)}
	}
	return Diagnostic{
		Range: Range{
			Start: start,
			End:   Position{Line: start.Line, Character: start.Character + 1},
		},
		Severity: SeverityError,
		Source:   "jfmt",
		Message:  err.Error(),
	}
}
