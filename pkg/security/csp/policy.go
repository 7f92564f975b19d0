// Package csp builds Content-Security-Policy header values.
package csp

import (
	"maps"
	"strings"
)

// directiveOrder fixes the order directives appear in the header.
var directiveOrder = []string{
	"default-src",
	"script-src",
	"style-src",
	"img-src",
	"font-src",
	"connect-src",
	"frame-ancestors",
	"form-action",
	"base-uri",
	"object-src",
	"report-uri",
}

// CSPBuilder assembles a policy directive by directive.
// It is not safe for concurrent mutation; build once and share the string.
//
//	NewCSPBuilder().DefaultSrc("'self'").ImgSrc("'self'", "https:").Build()
//	// "default-src 'self'; img-src 'self' https:"
type CSPBuilder struct {
	directives map[string][]string
	reportOnly bool
}

// NewCSPBuilder returns an empty policy.
func NewCSPBuilder() *CSPBuilder {
	return &CSPBuilder{directives: make(map[string][]string)}
}

func (b *CSPBuilder) set(name string, sources []string) *CSPBuilder {
	b.directives[name] = sources
	return b
}

// DefaultSrc is the fallback for every fetch directive left unset.
func (b *CSPBuilder) DefaultSrc(sources ...string) *CSPBuilder { return b.set("default-src", sources) }

// ScriptSrc restricts JavaScript sources.
func (b *CSPBuilder) ScriptSrc(sources ...string) *CSPBuilder { return b.set("script-src", sources) }

// StyleSrc restricts stylesheet sources.
func (b *CSPBuilder) StyleSrc(sources ...string) *CSPBuilder { return b.set("style-src", sources) }

// ImgSrc restricts image sources.
func (b *CSPBuilder) ImgSrc(sources ...string) *CSPBuilder { return b.set("img-src", sources) }

// FontSrc restricts font sources.
func (b *CSPBuilder) FontSrc(sources ...string) *CSPBuilder { return b.set("font-src", sources) }

// ConnectSrc restricts fetch, XHR and WebSocket targets.
func (b *CSPBuilder) ConnectSrc(sources ...string) *CSPBuilder { return b.set("connect-src", sources) }

// FrameAncestors restricts who may embed the page.
func (b *CSPBuilder) FrameAncestors(sources ...string) *CSPBuilder {
	return b.set("frame-ancestors", sources)
}

// FormAction restricts form submission targets.
func (b *CSPBuilder) FormAction(sources ...string) *CSPBuilder { return b.set("form-action", sources) }

// BaseUri restricts the <base> element.
func (b *CSPBuilder) BaseUri(sources ...string) *CSPBuilder { return b.set("base-uri", sources) }

// ObjectSrc restricts <object> and <embed>.
func (b *CSPBuilder) ObjectSrc(sources ...string) *CSPBuilder { return b.set("object-src", sources) }

// ReportUri sets where browsers send violation reports.
func (b *CSPBuilder) ReportUri(uri string) *CSPBuilder { return b.set("report-uri", []string{uri}) }

// ReportOnly switches the header to Content-Security-Policy-Report-Only.
func (b *CSPBuilder) ReportOnly(enabled bool) *CSPBuilder {
	b.reportOnly = enabled
	return b
}

// Clone returns an independent copy.
func (b *CSPBuilder) Clone() *CSPBuilder {
	return &CSPBuilder{directives: maps.Clone(b.directives), reportOnly: b.reportOnly}
}

// Build renders the header value. Directives without sources are skipped.
func (b *CSPBuilder) Build() string {
	parts := make([]string, 0, len(b.directives))
	for _, name := range directiveOrder {
		if sources := b.directives[name]; len(sources) > 0 {
			parts = append(parts, name+" "+strings.Join(sources, " "))
		}
	}
	return strings.Join(parts, "; ")
}

// HeaderName returns the header the policy belongs in.
func (b *CSPBuilder) HeaderName() string {
	if b.reportOnly {
		return "Content-Security-Policy-Report-Only"
	}
	return "Content-Security-Policy"
}

// PagePolicy is the policy of the server-rendered site. Scripts and styles
// come from the site itself; images may be hotlinked from any https origin
// because veteran portraits and news pictures are stored as external URLs.
func PagePolicy() *CSPBuilder {
	return NewCSPBuilder().
		DefaultSrc("'self'").
		ScriptSrc("'self'").
		StyleSrc("'self'").
		ImgSrc("'self'", "data:", "https:").
		FontSrc("'self'").
		ConnectSrc("'self'").
		FrameAncestors("'none'").
		FormAction("'self'").
		BaseUri("'self'").
		ObjectSrc("'none'")
}

// SwaggerUIPolicy allows what Swagger UI needs: inline bootstrap script and
// styles, data: images and blob: spec loading.
func SwaggerUIPolicy() *CSPBuilder {
	return NewCSPBuilder().
		DefaultSrc("'self'").
		ScriptSrc("'self'", "'unsafe-inline'").
		StyleSrc("'self'", "'unsafe-inline'").
		ImgSrc("'self'", "data:").
		FontSrc("'self'", "data:").
		ConnectSrc("'self'", "blob:").
		FrameAncestors("'none'").
		BaseUri("'self'").
		FormAction("'self'").
		ObjectSrc("'none'")
}

// StrictPolicy is for JSON responses, which never load anything.
func StrictPolicy() *CSPBuilder {
	return NewCSPBuilder().
		DefaultSrc("'none'").
		FrameAncestors("'none'").
		BaseUri("'none'").
		FormAction("'none'")
}
