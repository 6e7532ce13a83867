package lsp

import (
	"context"
	"net/url"
	"os"

	"github.com/arjunmahishi/tsfold/lang"
	"github.com/arjunmahishi/tsfold/parser"
	"github.com/arjunmahishi/tsfold/tsfold"
	"github.com/tliron/glsp"
	proto "github.com/tliron/glsp/protocol_3_16"
)

type document struct {
	uri        proto.DocumentUri
	languageID string
	text       string
}

func (s *Server) didOpen(_ *glsp.Context, params *proto.DidOpenTextDocumentParams) error {
	doc := &document{
		uri:        params.TextDocument.URI,
		languageID: params.TextDocument.LanguageID,
		text:       params.TextDocument.Text,
	}

	s.mu.Lock()
	s.docs[doc.uri] = doc
	s.mu.Unlock()

	s.log.Debugf("open %s (%s)", doc.uri, doc.languageID)
	return nil
}

func (s *Server) didChange(_ *glsp.Context, params *proto.DidChangeTextDocumentParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[params.TextDocument.URI]
	if !ok {
		return nil
	}

	// Full sync is advertised, so every change carries the whole text.
	for _, wrap := range params.ContentChanges {
		switch change := wrap.(type) {
		case proto.TextDocumentContentChangeEventWhole:
			doc.text = change.Text

		case proto.TextDocumentContentChangeEvent:
			if change.Range == nil {
				doc.text = change.Text
			}
		}
	}

	return nil
}

func (s *Server) didClose(_ *glsp.Context, params *proto.DidCloseTextDocumentParams) error {
	s.mu.Lock()
	delete(s.docs, params.TextDocument.URI)
	s.mu.Unlock()
	return nil
}

// snapshot returns the text and language of a document. Documents that are
// not open are read from disk when the URI is a file URI.
func (s *Server) snapshot(uri proto.DocumentUri) (text []byte, language string, ok bool) {
	s.mu.RLock()
	doc, open := s.docs[uri]
	s.mu.RUnlock()

	if open {
		return []byte(doc.text), s.languageOf(doc.languageID, uri), true
	}

	path, err := uriToPath(uri)
	if err != nil {
		return nil, "", false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", false
	}
	return data, s.languageOf("", uri), true
}

// languageOf prefers the client's languageId and falls back to the file
// extension.
func (s *Server) languageOf(languageID string, uri proto.DocumentUri) string {
	if languageID != "" && lang.Get(languageID) != nil {
		return languageID
	}
	if g := lang.ByPath(uri); g != nil {
		return g.Name()
	}
	return languageID
}

// descriptorFor returns the descriptor of an active language. A language
// without a bundled grammar cannot be parsed and is treated as inactive.
func (s *Server) descriptorFor(language string) (*tsfold.LanguageDescriptor, bool) {
	s.mu.RLock()
	act := s.activation
	s.mu.RUnlock()

	if !act.Active(language) || lang.Get(language) == nil {
		return nil, false
	}
	return s.registry.Lookup(language)
}

// parse parses one snapshot. The caller must Close the tree.
func parse(text []byte, language string) (*parser.Tree, error) {
	p, err := parser.ForLanguage(language)
	if err != nil {
		return nil, err
	}
	defer p.Close()

	return p.Parse(context.Background(), text)
}

func uriToPath(uri proto.DocumentUri) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", err
	}
	if u.Scheme != "file" {
		return "", &url.Error{Op: "path", URL: uri, Err: os.ErrInvalid}
	}
	return u.Path, nil
}
