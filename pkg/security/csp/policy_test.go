package csp

import (
	"strings"
	"testing"
)

func TestCSPBuilder_Build(t *testing.T) {
	tests := []struct {
		name    string
		builder *CSPBuilder
		want    string
	}{
		{"empty", NewCSPBuilder(), ""},
		{"single", NewCSPBuilder().DefaultSrc("'self'"), "default-src 'self'"},
		{
			"fixed order regardless of call order",
			NewCSPBuilder().ObjectSrc("'none'").ImgSrc("'self'", "https:").DefaultSrc("'self'"),
			"default-src 'self'; img-src 'self' https:; object-src 'none'",
		},
		{"empty sources skipped", NewCSPBuilder().DefaultSrc("'self'").ScriptSrc(), "default-src 'self'"},
		{"overwrite", NewCSPBuilder().StyleSrc("'unsafe-inline'").StyleSrc("'self'"), "style-src 'self'"},
		{"report uri", NewCSPBuilder().DefaultSrc("'self'").ReportUri("/csp-report"), "default-src 'self'; report-uri /csp-report"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.builder.Build(); got != tt.want {
				t.Errorf("Build() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCSPBuilder_HeaderName(t *testing.T) {
	b := NewCSPBuilder()
	if got := b.HeaderName(); got != "Content-Security-Policy" {
		t.Errorf("HeaderName() = %q", got)
	}
	if got := b.ReportOnly(true).HeaderName(); got != "Content-Security-Policy-Report-Only" {
		t.Errorf("HeaderName() in report-only mode = %q", got)
	}
}

func TestCSPBuilder_CloneIsIndependent(t *testing.T) {
	base := PagePolicy()
	clone := base.Clone().ReportOnly(true).ImgSrc("'self'")

	if base.reportOnly {
		t.Error("clone changed the original report-only flag")
	}
	if !strings.Contains(base.Build(), "img-src 'self' data: https:") {
		t.Errorf("clone changed the original img-src: %s", base.Build())
	}
	if !strings.Contains(clone.Build(), "img-src 'self';") {
		t.Errorf("clone img-src not applied: %s", clone.Build())
	}
}

func TestPagePolicy(t *testing.T) {
	policy := PagePolicy().Build()

	for _, want := range []string{
		"default-src 'self'",
		"script-src 'self';",
		"img-src 'self' data: https:",
		"frame-ancestors 'none'",
		"form-action 'self'",
		"object-src 'none'",
	} {
		if !strings.Contains(policy, want) {
			t.Errorf("PagePolicy missing %q in %q", want, policy)
		}
	}
	if strings.Contains(policy, "unsafe-inline") {
		t.Errorf("PagePolicy must not allow inline code: %q", policy)
	}
}

func TestSwaggerUIPolicy(t *testing.T) {
	policy := SwaggerUIPolicy().Build()
	for _, want := range []string{"script-src 'self' 'unsafe-inline'", "connect-src 'self' blob:"} {
		if !strings.Contains(policy, want) {
			t.Errorf("SwaggerUIPolicy missing %q in %q", want, policy)
		}
	}
}

func TestStrictPolicy(t *testing.T) {
	want := "default-src 'none'; frame-ancestors 'none'; form-action 'none'; base-uri 'none'"
	if got := StrictPolicy().Build(); got != want {
		t.Errorf("StrictPolicy() = %q, want %q", got, want)
	}
}
