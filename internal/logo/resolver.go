// Package logo guesses a merchant's web domain from its display name and
// builds logo image URLs from it. Everything here is pure: no network
// calls, no side effects, same answer for the same input.
package logo

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"subtrack/internal/entity"
)

// DefaultServiceBaseURL - logo image service, logo by domain convention
const DefaultServiceBaseURL = "https://logo.clearbit.com"

// Logo sizes used by the list and detail views.
const (
	SizeList   = 64
	SizeDetail = 512
)

// minSubstringKey keeps one- and two-letter mapping keys out of the
// substring pass; they would claim almost any title.
const minSubstringKey = 3

//go:embed domains.json
var domainsJSON []byte

var domainPattern = regexp.MustCompile(`([a-z0-9-]+\.[a-z]{2,})`)

var slugStrip = regexp.MustCompile(`[^a-z0-9]`)

// Resolver maps merchant names to domains using a curated table.
type Resolver struct {
	domains map[string]string
	base    string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithServiceBaseURL overrides the logo service base URL.
func WithServiceBaseURL(base string) Option {
	return func(r *Resolver) {
		if base != "" {
			r.base = strings.TrimRight(base, "/")
		}
	}
}

// WithDomains replaces the embedded mapping table.
func WithDomains(domains map[string]string) Option {
	return func(r *Resolver) {
		if domains != nil {
			r.domains = lowerKeys(domains)
		}
	}
}

// NewResolver loads the embedded mapping table and applies options.
func NewResolver(options ...Option) *Resolver {
	var domains map[string]string
	if err := json.Unmarshal(domainsJSON, &domains); err != nil {
		// The asset ships with the binary; a parse failure is a build
		// defect, not a runtime condition.
		panic(fmt.Sprintf("logo: embedded domains.json: %v", err))
	}

	r := &Resolver{
		domains: lowerKeys(domains),
		base:    DefaultServiceBaseURL,
	}
	for _, o := range options {
		o(r)
	}
	return r
}

func lowerKeys(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[strings.ToLower(k)] = v
	}
	return out
}

// Resolve guesses a domain for a merchant or subscription name. The
// empty string means no guess; callers show a placeholder instead.
//
// Order, first hit wins: exact table match, substring table match
// (either direction), domain-like text already in the name, slugified
// name with a .com suffix.
func (r *Resolver) Resolve(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return ""
	}

	if d, ok := r.domains[lower]; ok {
		return d
	}

	if d, ok := r.substringMatch(lower); ok {
		return d
	}

	if m := domainPattern.FindString(lower); m != "" {
		return m
	}

	if slug := slugStrip.ReplaceAllString(lower, ""); slug != "" {
		return slug + ".com"
	}
	return ""
}

// substringMatch prefers the longest matching key so "netflix premium"
// lands on netflix rather than some shorter accidental hit; ties break
// lexicographically to stay deterministic.
func (r *Resolver) substringMatch(lower string) (string, bool) {
	var hits []string
	for key := range r.domains {
		if len(key) < minSubstringKey {
			continue
		}
		if strings.Contains(lower, key) || strings.Contains(key, lower) {
			hits = append(hits, key)
		}
	}
	if len(hits) == 0 {
		return "", false
	}
	sort.Slice(hits, func(i, j int) bool {
		if len(hits[i]) != len(hits[j]) {
			return len(hits[i]) > len(hits[j])
		}
		return hits[i] < hits[j]
	})
	return r.domains[hits[0]], true
}

// LogoURL builds the image URL for a known domain.
func (r *Resolver) LogoURL(domain string, size int) string {
	if domain == "" {
		return ""
	}
	if size > 0 {
		return fmt.Sprintf("%s/%s?size=%d", r.base, domain, size)
	}
	return fmt.Sprintf("%s/%s", r.base, domain)
}

// LogoFor picks the logo URL for a subscription: an explicit logo_url
// wins, then a known domain, then a domain resolved from the title.
// Empty means the caller should render the placeholder glyph.
func (r *Resolver) LogoFor(s entity.Subscription, size int) string {
	switch {
	case s.LogoURL != "":
		return s.LogoURL
	case s.Domain != "":
		return r.LogoURL(s.Domain, size)
	}
	if d := r.Resolve(s.Title); d != "" {
		return r.LogoURL(d, size)
	}
	return ""
}
