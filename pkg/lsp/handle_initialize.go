package lsp

import (
	"context"
	"path/filepath"

	"github.com/creachadair/jrpc2"

	"github.com/vito/jfmt/pkg/jfmt"
)

func (h *Handler) handleInitialize(ctx context.Context, req *jrpc2.Request) (any, error) {
	if !req.HasParams() {
		return nil, jrpc2.Errorf(jrpc2.InvalidParams, "missing parameters")
	}

	var params InitializeParams
	if err := req.UnmarshalParams(&params); err != nil {
		return nil, err
	}

	if params.RootURI != "" {
		rootPath, err := fromURI(params.RootURI)
		if err != nil {
			return nil, err
		}
		rootPath = filepath.Clean(rootPath)

		cfgPath, cfg, err := jfmt.FindConfig(h.fs, rootPath)
		if err != nil {
			h.logMessage(ctx, MTWarning, err.Error())
			cfg = jfmt.DefaultConfig()
		}
		cfg, err = cfg.WithEnv(nil)
		if err != nil {
			h.logMessage(ctx, MTWarning, err.Error())
		}

		h.mu.Lock()
		h.rootPath = rootPath
		h.config = cfg
		h.projectConfig = cfgPath != ""
		h.mu.Unlock()
	}

	return InitializeResult{
		Capabilities: ServerCapabilities{
			TextDocumentSync:           TDSKFull,
			DocumentFormattingProvider: true,
		},
		ServerInfo: &ServerInfo{Name: "jfmt"},
	}, nil
}
