package lsp

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf16"

	"github.com/creachadair/jrpc2"

	"github.com/vito/jfmt/pkg/jfmt"
)

func (h *Handler) handleTextDocumentFormatting(ctx context.Context, req *jrpc2.Request) (any, error) {
	if !req.HasParams() {
		return nil, jrpc2.Errorf(jrpc2.InvalidParams, "missing parameters")
	}

	var params DocumentFormattingParams
	if err := req.UnmarshalParams(&params); err != nil {
		return nil, err
	}

	f, ok := h.file(params.TextDocument.URI)
	if !ok {
		return nil, jrpc2.Errorf(jrpc2.InvalidParams, "document not found: %v", params.TextDocument.URI)
	}

	formatted, err := jfmt.Source(ctx, string(params.TextDocument.URI), []byte(f.Text), h.formatConfig(params.Options))
	if err != nil {
		// the parse error is already published as a diagnostic
		slog.DebugContext(ctx, "not formatting", "uri", params.TextDocument.URI, "error", err)
		return []TextEdit{}, nil
	}

	if formatted == f.Text {
		return []TextEdit{}, nil
	}

	// Return a single edit that replaces the entire document
	return []TextEdit{
		{
			Range: Range{
				Start: Position{Line: 0, Character: 0},
				End:   endOf(f.Text),
			},
			NewText: formatted,
		},
	}, nil
}

// formatConfig applies the client's indentation preference unless the
// workspace has a jfmt.toml.
func (h *Handler) formatConfig(opts FormattingOptions) jfmt.Config {
	h.mu.Lock()
	defer h.mu.Unlock()

	cfg := h.config
	if h.projectConfig || opts.TabSize <= 0 {
		return cfg
	}
	if opts.InsertSpaces {
		cfg.Indent = strings.Repeat(" ", opts.TabSize)
	} else {
		cfg.Indent = "\t"
	}
	return cfg
}

// endOf returns the position just past the last character of text, with
// the character offset counted in UTF-16 code units.
func endOf(text string) Position {
	line := strings.Count(text, "\n")
	last := text[strings.LastIndex(text, "\n")+1:]
	return Position{
		Line:      line,
		Character: len(utf16.Encode([]rune(last))),
	}
}
