package lsp

import (
	"encoding/json"

	"github.com/arjunmahishi/tsfold/tsfold"
	"github.com/tliron/glsp"
	proto "github.com/tliron/glsp/protocol_3_16"
)

const regionKind = "region"

// EnclosingBodyMethod is the custom request answered by enclosingBody.
const EnclosingBodyMethod = "tsfold/enclosingBody"

// EnclosingBodyFunc handles a tsfold/enclosingBody request.
type EnclosingBodyFunc func(*glsp.Context, *EnclosingBodyParams) (*EnclosingBodyResult, error)

// P returns a pointer to a copy of src.
func P[T ~string | ~int32 | ~uint32](src T) *T {
	return &src
}

func (s *Server) foldingRange(_ *glsp.Context, params *proto.FoldingRangeParams) ([]proto.FoldingRange, error) {
	res := make([]proto.FoldingRange, 0)

	text, language, ok := s.snapshot(params.TextDocument.URI)
	if !ok {
		return res, nil
	}
	d, ok := s.descriptorFor(language)
	if !ok {
		return res, nil
	}

	tree, err := parse(text, language)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	lines := tree.Lines()
	for _, r := range tsfold.FindAllBodyRegions(tree.Root(), d) {
		rng := toRange(lines, r)

		if rng.Start.Line == rng.End.Line {
			continue
		}

		res = append(res, proto.FoldingRange{
			StartLine:      rng.Start.Line,
			StartCharacter: &rng.Start.Character,
			EndLine:        rng.End.Line,
			EndCharacter:   &rng.End.Character,
			Kind:           P(regionKind),
		})
	}

	return res, nil
}

// EnclosingBodyParams asks for the body enclosing a cursor position.
type EnclosingBodyParams struct {
	TextDocument proto.TextDocumentIdentifier `json:"textDocument"`
	Position     proto.Position               `json:"position"`
}

// EnclosingBodyResult is the body region enclosing the cursor.
type EnclosingBodyResult struct {
	Range proto.Range `json:"range"`
	Start uint32      `json:"start"`
	End   uint32      `json:"end"`
}

// enclosingBody answers tsfold/enclosingBody. Editors call it after their
// own navigation completes and decide themselves whether to show or toggle
// the returned region.
func (s *Server) enclosingBody(_ *glsp.Context, params *EnclosingBodyParams) (*EnclosingBodyResult, error) {
	text, language, ok := s.snapshot(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	d, ok := s.descriptorFor(language)
	if !ok {
		return nil, nil
	}

	tree, err := parse(text, language)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	lines := tree.Lines()
	offset, ok := lines.OffsetUTF16(int(params.Position.Line), int(params.Position.Character))
	if !ok {
		return nil, nil
	}

	r, ok := tsfold.FindEnclosingBodyRegion(tree.Root(), d, offset)
	if !ok {
		return nil, nil
	}

	return &EnclosingBodyResult{
		Range: toRange(lines, r),
		Start: r.Start,
		End:   r.End,
	}, nil
}

func toRange(lines *tsfold.LineIndex, r tsfold.Region) proto.Range {
	sl, sc := lines.PointUTF16(r.Start)
	el, ec := lines.PointUTF16(r.End)
	return proto.Range{
		Start: proto.Position{Line: uint32(sl), Character: uint32(sc)},
		End:   proto.Position{Line: uint32(el), Character: uint32(ec)},
	}
}

// CustomHandlers serves the tsfold/* methods that are not part of LSP.
type CustomHandlers struct {
	EnclosingBody EnclosingBodyFunc
}

func (req *CustomHandlers) Handle(ctx *glsp.Context) (res any, validMethod bool, validParams bool, err error) {
	switch ctx.Method {
	case EnclosingBodyMethod:
		validMethod = true

		var params EnclosingBodyParams
		if err = json.Unmarshal(ctx.Params, &params); err == nil {
			validParams = true
			res, err = req.EnclosingBody(ctx, &params)
		}
	}

	return
}
