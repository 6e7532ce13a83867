// Package lsp serves function-body regions to editors over the Language
// Server Protocol.
package lsp

import (
	"sync"

	"github.com/arjunmahishi/tsfold/config"
	"github.com/arjunmahishi/tsfold/tsfold"
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	proto "github.com/tliron/glsp/protocol_3_16"
	serv "github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const serverName = "tsfold"

// Server holds the editor-facing state: open documents, descriptors and the
// active-language policy. The region engine itself keeps no state.
type Server struct {
	mu         sync.RWMutex
	registry   *tsfold.Registry
	activation *config.Activation
	docs       map[proto.DocumentUri]*document

	log     commonlog.Logger
	version string
}

// Options configures a Server.
type Options struct {
	// Registry supplies descriptors. If nil, a copy of the defaults is used.
	Registry *tsfold.Registry

	// Activation selects the languages served. If nil, every language in
	// Registry is active.
	Activation *config.Activation

	Version string
}

// NewServer creates a Server.
func NewServer(opts Options) *Server {
	if opts.Registry == nil {
		opts.Registry = tsfold.DefaultRegistry()
	}
	if opts.Activation == nil {
		opts.Activation = config.NewActivation(opts.Registry.Languages()...)
	}
	return &Server{
		registry:   opts.Registry,
		activation: opts.Activation,
		docs:       make(map[proto.DocumentUri]*document),
		log:        commonlog.GetLogger("tsfold.lsp"),
		version:    opts.Version,
	}
}

// Handler returns the glsp handler chain for this server.
func (s *Server) Handler() glsp.Handler {
	return &RequestHandler{
		Handlers: []glsp.Handler{
			&proto.Handler{
				Initialize:                      s.initialize,
				Initialized:                     s.initialized,
				Shutdown:                        s.shutdown,
				SetTrace:                        s.setTrace,
				TextDocumentDidOpen:             s.didOpen,
				TextDocumentDidChange:           s.didChange,
				TextDocumentDidClose:            s.didClose,
				WorkspaceDidChangeConfiguration: s.didChangeConfiguration,
				TextDocumentFoldingRange:        s.foldingRange,
			},
			&CustomHandlers{
				EnclosingBody: s.enclosingBody,
			},
		},
	}
}

// RunStdio serves LSP over stdin/stdout until the client exits.
func (s *Server) RunStdio() error {
	server := serv.NewServer(s.Handler(), serverName, false)
	return server.RunStdio()
}

// RequestHandler dispatches a request to the first handler that knows the
// method.
type RequestHandler struct {
	Handlers []glsp.Handler
}

func (req *RequestHandler) Handle(ctx *glsp.Context) (res any, validMethod bool, validParams bool, err error) {
	for _, h := range req.Handlers {
		res, validMethod, validParams, err = h.Handle(ctx)

		if validMethod {
			return
		}
	}

	return
}

func (s *Server) initialize(_ *glsp.Context, params *proto.InitializeParams) (any, error) {
	if params != nil && params.InitializationOptions != nil {
		if err := s.configure(params.InitializationOptions); err != nil {
			return nil, err
		}
	}

	syncKind := proto.TextDocumentSyncKindFull
	info := &proto.InitializeResultServerInfo{Name: serverName}
	if s.version != "" {
		info.Version = &s.version
	}

	return proto.InitializeResult{
		ServerInfo: info,
		Capabilities: proto.ServerCapabilities{
			TextDocumentSync: proto.TextDocumentSyncOptions{
				OpenClose: &proto.True,
				Change:    &syncKind,
			},
			FoldingRangeProvider: true,
		},
	}, nil
}

func (s *Server) initialized(_ *glsp.Context, _ *proto.InitializedParams) error {
	s.mu.RLock()
	act := s.activation
	s.mu.RUnlock()

	s.log.Infof("serving languages: %v", act.Languages())
	return nil
}

func (s *Server) shutdown(_ *glsp.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = make(map[proto.DocumentUri]*document)
	return nil
}

func (s *Server) setTrace(_ *glsp.Context, _ *proto.SetTraceParams) error {
	return nil
}

func (s *Server) didChangeConfiguration(_ *glsp.Context, params *proto.DidChangeConfigurationParams) error {
	if params == nil || params.Settings == nil {
		return nil
	}
	return s.configure(params.Settings)
}

// configure applies editor settings. Settings may be nested under a
// "tsfold" key, as most clients namespace them.
func (s *Server) configure(settings any) error {
	if m, ok := settings.(map[string]any); ok {
		if nested, ok := m[serverName]; ok {
			settings = nested
		}
	}

	cfg, err := config.Decode(settings)
	if err != nil {
		return err
	}
	if err := cfg.Apply(s.registry); err != nil {
		return err
	}
	for _, w := range cfg.Validate(s.registry) {
		s.log.Warningf("%s", w)
	}

	act := cfg.Activation(s.registry)
	s.mu.Lock()
	s.activation = act
	s.mu.Unlock()

	s.log.Infof("configuration applied, active languages: %v", act.Languages())
	return nil
}
