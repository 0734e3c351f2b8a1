package format

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ironsheep/ocr-markdown-mcp/internal/ocr"
)

// Snapshot node roles.
const (
	RoleGeneric = "generic"
	RoleText    = "text"
)

// Node is one entry in the snapshot tree.
type Node struct {
	Role     string  `yaml:"role"`
	Ref      string  `yaml:"ref"`
	Name     string  `yaml:"name,omitempty"`
	BBox     any     `yaml:"bbox,omitempty"`
	Children []*Node `yaml:"children,omitempty"`
}

// BoxGeometry is axis-aligned bbox geometry in original-image pixels.
type BoxGeometry struct {
	XMin int `yaml:"x_min"`
	YMin int `yaml:"y_min"`
	XMax int `yaml:"x_max"`
	YMax int `yaml:"y_max"`
}

// PolygonGeometry is quadrilateral bbox geometry in original-image
// pixels, four [x, y] vertices.
type PolygonGeometry struct {
	Polygon [][]int `yaml:"polygon"`
}

// Snapshot renders the recognition result as a YAML tree. The root
// names the source image; a metadata child records the source path
// and language; each page with recognized text contributes one
// container of text leaves. Geometry is rescaled to original-image
// coordinates through rs and omitted when the engine supplied none.
func Snapshot(imagePath, language string, pages []ocr.Page, rs Rescaler) (string, error) {
	root := &Node{
		Role: RoleGeneric,
		Ref:  newRef(),
		Name: fmt.Sprintf("OCR Result: %s", filepath.Base(imagePath)),
	}

	meta := &Node{
		Role: RoleGeneric,
		Ref:  newRef(),
		Name: "Metadata",
		Children: []*Node{
			{Role: RoleText, Ref: newRef(), Name: fmt.Sprintf("Source Image: %s", imagePath)},
			{Role: RoleText, Ref: newRef(), Name: fmt.Sprintf("Language: %s", language)},
		},
	}
	root.Children = append(root.Children, meta)

	pageNum := 0
	for _, page := range pages {
		leaves := textLeaves(page, rs)
		if len(leaves) == 0 {
			continue
		}
		pageNum++
		root.Children = append(root.Children, &Node{
			Role:     RoleGeneric,
			Ref:      newRef(),
			Name:     fmt.Sprintf("Page %d", pageNum),
			Children: leaves,
		})
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode([]*Node{root}); err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return buf.String(), nil
}

// textLeaves converts a page's units into snapshot leaf nodes,
// dropping empty texts.
func textLeaves(page ocr.Page, rs Rescaler) []*Node {
	var leaves []*Node
	for _, u := range page.Units {
		text := strings.TrimSpace(u.Text)
		if text == "" {
			continue
		}
		leaf := &Node{Role: RoleText, Ref: newRef(), Name: text}
		if geom, ok := unitGeometry(u, rs); ok {
			leaf.BBox = geom
		}
		leaves = append(leaves, leaf)
	}
	return leaves
}

// unitGeometry picks the unit's geometry representation. An
// axis-aligned box wins over a polygon; a polygon needs at least four
// vertices, of which the first four are kept.
func unitGeometry(u ocr.Unit, rs Rescaler) (any, bool) {
	if u.Box != nil {
		return BoxGeometry{
			XMin: rs.X(u.Box.XMin),
			YMin: rs.Y(u.Box.YMin),
			XMax: rs.X(u.Box.XMax),
			YMax: rs.Y(u.Box.YMax),
		}, true
	}
	if len(u.Polygon) >= 4 {
		poly := make([][]int, 4)
		for i := 0; i < 4; i++ {
			poly[i] = []int{rs.X(u.Polygon[i].X), rs.Y(u.Polygon[i].Y)}
		}
		return PolygonGeometry{Polygon: poly}, true
	}
	return nil, false
}
