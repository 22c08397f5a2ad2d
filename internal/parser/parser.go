// Package parser dispatches raw scan input to the parser for the
// scan's surface.
package parser

import (
	"fmt"

	"github.com/a11yscan/a11yscan/internal/parser/canvas"
	"github.com/a11yscan/a11yscan/internal/parser/domsnap"
	"github.com/a11yscan/a11yscan/internal/parser/modeldriven"
	"github.com/a11yscan/a11yscan/pkg/engine"
	"github.com/a11yscan/a11yscan/pkg/uitree"
)

// Func converts raw source bytes into a fully materialized UI tree.
type Func func(data []byte) (*uitree.Node, error)

// ForSurface returns the parser for the surface. Portal pages are
// HTML documents, so they share the DOM snapshot parser.
func ForSurface(surface engine.Surface) (Func, error) {
	switch surface {
	case engine.SurfaceCanvasApp:
		return canvas.Parse, nil
	case engine.SurfaceModelDrivenApp:
		return modeldriven.Parse, nil
	case engine.SurfacePortalPage, engine.SurfaceDomSnapshot:
		return domsnap.Parse, nil
	default:
		return nil, fmt.Errorf("no parser for surface %q", surface)
	}
}
