package domain

import (
	"path/filepath"
	"strconv"
	"strings"
)

// InputLocation points at the place in build configuration a plugin was
// declared.
type InputLocation struct {
	ModelID  string `json:"model_id"`
	Location string `json:"location,omitempty"`
	Line     int    `json:"line"`
}

// ProjectCoordinates identifies the module that invoked a plugin.
type ProjectCoordinates struct {
	Group    string `json:"group"`
	Artifact string `json:"artifact"`
	Version  string `json:"version"`
	File     string `json:"file,omitempty"`
}

// FormatDeclaration renders a declaration location as
// "<model> (<location>) @ line <n>". URLs and paths outside rootDir are
// kept verbatim; paths under rootDir are made relative to it. A nil
// location renders as "unknown".
func FormatDeclaration(loc *InputLocation, rootDir string) string {
	if loc == nil || (loc.ModelID == "" && loc.Location == "") {
		return "unknown"
	}

	var b strings.Builder
	b.WriteString(loc.ModelID)
	if loc.Location != "" {
		b.WriteString(" (")
		switch {
		case strings.Contains(loc.Location, "://"):
			b.WriteString(loc.Location)
		case rootDir != "" && strings.HasPrefix(loc.Location, rootDir):
			b.WriteString(relativize(rootDir, loc.Location))
		default:
			b.WriteString(loc.Location)
		}
		b.WriteString(")")
	}
	b.WriteString(" @ line ")
	b.WriteString(strconv.Itoa(loc.Line))
	return b.String()
}

// FormatOccurrence renders the invoking module as "g:a:v (<file>)" with
// the file relative to rootDir. The file part is omitted when unknown.
func FormatOccurrence(p *ProjectCoordinates, rootDir string) string {
	if p == nil {
		return ""
	}
	result := PluginKey(p.Group, p.Artifact, p.Version)
	if p.File != "" {
		result += " (" + relativize(rootDir, p.File) + ")"
	}
	return result
}

func relativize(rootDir, path string) string {
	if rootDir == "" {
		return path
	}
	rel, err := filepath.Rel(rootDir, path)
	if err != nil {
		return path
	}
	return rel
}
