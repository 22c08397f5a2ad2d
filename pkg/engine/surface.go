package engine

import "strings"

// Surface is the category of application the UI tree was extracted
// from. The set is closed; unknown surfaces are rejected at scan
// start, never mid-scan.
type Surface string

const (
	SurfaceCanvasApp      Surface = "CanvasApp"
	SurfaceModelDrivenApp Surface = "ModelDrivenApp"
	SurfacePortalPage     Surface = "PortalPage"
	SurfaceDomSnapshot    Surface = "DomSnapshot"
)

// Surfaces lists every supported surface.
func Surfaces() []Surface {
	return []Surface{
		SurfaceCanvasApp,
		SurfaceModelDrivenApp,
		SurfacePortalPage,
		SurfaceDomSnapshot,
	}
}

// Valid reports whether s is a member of the closed surface set.
func (s Surface) Valid() bool {
	switch s {
	case SurfaceCanvasApp, SurfaceModelDrivenApp, SurfacePortalPage, SurfaceDomSnapshot:
		return true
	}
	return false
}

func (s Surface) String() string {
	return string(s)
}

// ParseSurface resolves a user-supplied surface name, ignoring case.
func ParseSurface(name string) (Surface, error) {
	for _, s := range Surfaces() {
		if strings.EqualFold(name, string(s)) {
			return s, nil
		}
	}
	return "", &UnknownSurfaceError{Name: name}
}
