package ocr

import "strings"

// Box is an axis-aligned bounding box in prepared-image pixel
// coordinates.
type Box struct {
	XMin float64
	YMin float64
	XMax float64
	YMax float64
}

// Point is one polygon vertex in prepared-image pixel coordinates.
type Point struct {
	X float64
	Y float64
}

// Unit is one detected text span. Geometry is optional: Box takes
// priority over Polygon when both are present; both may be absent.
type Unit struct {
	Text    string
	Box     *Box
	Polygon []Point
}

// Page holds the ordered recognition units for one page of input.
type Page struct {
	Units []Unit
}

// Texts returns the page's trimmed, non-empty text strings in order.
func (p Page) Texts() []string {
	out := make([]string, 0, len(p.Units))
	for _, u := range p.Units {
		if t := strings.TrimSpace(u.Text); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// CollectTexts flattens the trimmed, non-empty texts of all pages, in
// page order.
func CollectTexts(pages []Page) []string {
	var out []string
	for _, p := range pages {
		out = append(out, p.Texts()...)
	}
	return out
}
