package rewrite

import (
	"errors"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/signadot/jsdoctype/ast"
	"github.com/signadot/jsdoctype/debug"
)

var ErrRewrite = errors.New("rewrite error")

// Patch is a decoded RFC 6902 patch over the JSON form of a tree.
type Patch struct {
	ops jsonpatch.Patch
}

func DecodePatch(d []byte) (*Patch, error) {
	ops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRewrite, err)
	}
	return &Patch{ops: ops}, nil
}

func (p *Patch) Len() int {
	return len(p.ops)
}

// Apply returns the tree resulting from patching node, which is left
// unchanged.
func (p *Patch) Apply(node ast.Node) (ast.Node, error) {
	return transform(node, func(d []byte) ([]byte, error) {
		return p.ops.Apply(d)
	})
}

// Apply decodes patch and applies it to node.
func Apply(node ast.Node, patch []byte) (ast.Node, error) {
	p, err := DecodePatch(patch)
	if err != nil {
		return nil, err
	}
	return p.Apply(node)
}

// Merge applies an RFC 7386 merge patch to node.
func Merge(node ast.Node, patch []byte) (ast.Node, error) {
	return transform(node, func(d []byte) ([]byte, error) {
		return jsonpatch.MergePatch(d, patch)
	})
}

func transform(node ast.Node, f func([]byte) ([]byte, error)) (ast.Node, error) {
	d, err := ast.MarshalJSON(node)
	if err != nil {
		return nil, err
	}
	out, err := f(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRewrite, err)
	}
	if debug.Rewrite() {
		debug.Logf("rewrite %s\n    -> %s\n", d, out)
	}
	res, err := ast.UnmarshalJSON(out)
	if err != nil {
		return nil, err
	}
	if err := Check(res); err != nil {
		return nil, err
	}
	return res, nil
}
