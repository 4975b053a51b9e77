package svgbob

import (
	"fmt"
	"html"
	"strings"
)

// RenderSVG renders fragments into an SVG document string: a backdrop
// rect, a defs block of markers, an inline stylesheet, then one element
// per fragment. This stage sits outside the recognition core and is
// built on the standard library -- see DESIGN.md for why no pack
// SVG-writing library could serve it.
func RenderSVG(fragments []Fragment, settings Settings, legend *Legend) string {
	min, max := fragmentsBounds(fragments)
	width := max.X - min.X
	height := max.Y - min.Y
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" font-family="%s" font-size="%.0f">`+"\n",
		width, height, html.EscapeString(settings.FontFamily), settings.FontSize)

	if settings.IncludeBackdrop {
		fmt.Fprintf(&b, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", html.EscapeString(settings.Background))
	}
	if settings.IncludeDefs {
		b.WriteString(markerDefs(settings))
	}
	if settings.IncludeStyles {
		b.WriteString(styleBlock(settings, legend))
	}

	for _, f := range fragments {
		b.WriteString(renderFragment(f, settings))
		b.WriteString("\n")
	}

	b.WriteString("</svg>\n")
	return b.String()
}

func fragmentsBounds(fragments []Fragment) (min, max Point) {
	if len(fragments) == 0 {
		return Point{}, Point{}
	}
	min, max = fragments[0].Bounds()
	for _, f := range fragments[1:] {
		fmin, fmax := f.Bounds()
		if fmin.X < min.X {
			min.X = fmin.X
		}
		if fmin.Y < min.Y {
			min.Y = fmin.Y
		}
		if fmax.X > max.X {
			max.X = fmax.X
		}
		if fmax.Y > max.Y {
			max.Y = fmax.Y
		}
	}
	return min, max
}

func markerDefs(s Settings) string {
	var b strings.Builder
	b.WriteString("<defs>\n")
	fmt.Fprintf(&b, `<marker id="arrow" markerWidth="10" markerHeight="10" refX="5" refY="5" orient="auto"><path d="M0,0 L10,5 L0,10 z" fill="%s"/></marker>`+"\n", html.EscapeString(s.StrokeColor))
	fmt.Fprintf(&b, `<marker id="diamond" markerWidth="10" markerHeight="10" refX="5" refY="5"><path d="M0,5 L5,0 L10,5 L5,10 z" fill="%s"/></marker>`+"\n", html.EscapeString(s.StrokeColor))
	fmt.Fprintf(&b, `<marker id="circle-filled" markerWidth="8" markerHeight="8" refX="4" refY="4"><circle cx="4" cy="4" r="3" fill="%s"/></marker>`+"\n", html.EscapeString(s.StrokeColor))
	fmt.Fprintf(&b, `<marker id="circle-open" markerWidth="8" markerHeight="8" refX="4" refY="4"><circle cx="4" cy="4" r="3" fill="%s" stroke="%s"/></marker>`+"\n", html.EscapeString(s.Background), html.EscapeString(s.StrokeColor))
	fmt.Fprintf(&b, `<marker id="circle-open-big" markerWidth="12" markerHeight="12" refX="6" refY="6"><circle cx="6" cy="6" r="5" fill="%s" stroke="%s"/></marker>`+"\n", html.EscapeString(s.Background), html.EscapeString(s.StrokeColor))
	b.WriteString("</defs>\n")
	return b.String()
}

func styleBlock(s Settings, legend *Legend) string {
	var b strings.Builder
	b.WriteString("<style>\n")
	fmt.Fprintf(&b, "line,path.line{stroke:%s;stroke-width:%.0f;fill:none;}\n", html.EscapeString(s.StrokeColor), s.StrokeWidth)
	fmt.Fprintf(&b, ".filled{fill:%s;}\n", html.EscapeString(s.FillColor))
	fmt.Fprintf(&b, "text{fill:%s;}\n", html.EscapeString(s.FillColor))
	if legend != nil {
		for _, rule := range legend.Rules {
			fmt.Fprintf(&b, ".%s{%s}\n", rule.Name, rule.Body)
		}
	}
	b.WriteString("</style>\n")
	return b.String()
}

func markerURL(m Marker) string {
	switch m {
	case ArrowMarker:
		return "url(#arrow)"
	case DiamondMarker:
		return "url(#diamond)"
	case FilledCircleMarker:
		return "url(#circle-filled)"
	case OpenCircleMarker:
		return "url(#circle-open)"
	case BigOpenCircleMarker:
		return "url(#circle-open-big)"
	}
	return ""
}

func renderFragment(f Fragment, s Settings) string {
	switch v := f.(type) {
	case *Line:
		return fmt.Sprintf(`<line x1="%g" y1="%g" x2="%g" y2="%g"/>`, v.Start.X, v.Start.Y, v.End.X, v.End.Y)
	case *MarkerLine:
		var attrs []string
		if u := markerURL(v.StartMarker); u != "" {
			attrs = append(attrs, fmt.Sprintf(`marker-start="%s"`, u))
		}
		if u := markerURL(v.EndMarker); u != "" {
			attrs = append(attrs, fmt.Sprintf(`marker-end="%s"`, u))
		}
		return fmt.Sprintf(`<line x1="%g" y1="%g" x2="%g" y2="%g" %s/>`, v.Start.X, v.Start.Y, v.End.X, v.End.Y, strings.Join(attrs, " "))
	case *Arc:
		sweepFlag := 0
		if v.Sweep {
			sweepFlag = 1
		}
		return fmt.Sprintf(`<path d="M %g %g A %g %g 0 0 %d %g %g" fill="none"/>`,
			v.Start.X, v.Start.Y, v.Radius, v.Radius, sweepFlag, v.End.X, v.End.Y)
	case *Circle:
		fill := s.Background
		if v.Filled {
			fill = s.FillColor
		}
		return fmt.Sprintf(`<circle cx="%g" cy="%g" r="%g" fill="%s"/>`, v.Center.X, v.Center.Y, v.Radius, html.EscapeString(fill))
	case *Rect:
		fill := "none"
		if v.Filled {
			fill = s.FillColor
		}
		rx := ""
		if v.HasCornerRadius {
			rx = fmt.Sprintf(` rx="%g"`, v.CornerRadius)
		}
		min, max := v.Bounds()
		return fmt.Sprintf(`<rect x="%g" y="%g" width="%g" height="%g" fill="%s"%s/>`,
			min.X, min.Y, max.X-min.X, max.Y-min.Y, html.EscapeString(fill), rx)
	case *Polygon:
		var points strings.Builder
		for i, p := range v.Points {
			if i > 0 {
				points.WriteString(" ")
			}
			fmt.Fprintf(&points, "%g,%g", p.X, p.Y)
		}
		fill := "none"
		if v.Filled {
			fill = s.FillColor
		}
		return fmt.Sprintf(`<polygon points="%s" fill="%s"/>`, points.String(), html.EscapeString(fill))
	case *Text:
		fontSize := v.FontSize
		if fontSize == 0 {
			fontSize = s.FontSize
		}
		return fmt.Sprintf(`<text x="%g" y="%g" font-size="%g">%s</text>`, v.Point.X, v.Point.Y, fontSize, html.EscapeString(v.Content))
	case *CellText:
		return renderFragment(v.ToText(), s)
	}
	return ""
}
