// Package contract normalizes free-form API contract input into a
// canonical endpoint list and synthesizes endpoint-level test cases
// from it.
package contract

import (
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

// Endpoint is one (path, method) operation resolved from a contract.
type Endpoint struct {
	Path   string `json:"path"`
	Method string `json:"method"`
}

// shape is the outcome of sniffing the contract input.
type shape int

const (
	shapeMalformed shape = iota // not valid JSON
	shapeGeneric                // valid JSON without a paths mapping
	shapeOpenAPI                // has an OpenAPI-style paths object
)

var httpMethods = map[string]bool{
	"get": true, "post": true, "put": true, "patch": true, "delete": true,
}

// Text-pattern fallbacks, one pair per method: the explicit "METHOD /path"
// form is tried before the JSON-ish `"method" ... "path"` form. PATCH has
// no text form; it is only resolved from the paths mapping.
var textPatterns = []struct {
	method   string
	explicit *regexp.Regexp
	jsonish  *regexp.Regexp
}{
	{"GET", regexp.MustCompile(`(?i)GET\s+([/\w\-:{}]+)`), regexp.MustCompile(`(?i)"get".*?"([/\w\-:{}]+)"`)},
	{"POST", regexp.MustCompile(`(?i)POST\s+([/\w\-:{}]+)`), regexp.MustCompile(`(?i)"post".*?"([/\w\-:{}]+)"`)},
	{"PUT", regexp.MustCompile(`(?i)PUT\s+([/\w\-:{}]+)`), regexp.MustCompile(`(?i)"put".*?"([/\w\-:{}]+)"`)},
	{"DELETE", regexp.MustCompile(`(?i)DELETE\s+([/\w\-:{}]+)`), regexp.MustCompile(`(?i)"delete".*?"([/\w\-:{}]+)"`)},
}

func classify(contract string) shape {
	if !gjson.Valid(contract) {
		return shapeMalformed
	}
	if gjson.Get(contract, "paths").IsObject() {
		return shapeOpenAPI
	}
	return shapeGeneric
}

// Resolve normalizes a contract string into an ordered endpoint list.
// Three mutually exclusive tiers are tried in turn: the OpenAPI paths
// mapping, the per-method text patterns, and finally generic CRUD guesses
// keyed on keywords in the input. The list preserves resolution order and
// is not de-duplicated. Never empty.
func Resolve(contract string) []Endpoint {
	if classify(contract) == shapeOpenAPI {
		return resolvePaths(contract)
	}

	if endpoints := resolveTextPatterns(contract); len(endpoints) > 0 {
		return endpoints
	}

	return guessEndpoints(contract)
}

// resolvePaths walks the OpenAPI paths object in document order and emits
// an endpoint for every recognized method key.
func resolvePaths(contract string) []Endpoint {
	var endpoints []Endpoint

	gjson.Get(contract, "paths").ForEach(func(path, methods gjson.Result) bool {
		methods.ForEach(func(method, _ gjson.Result) bool {
			if httpMethods[strings.ToLower(method.String())] {
				endpoints = append(endpoints, Endpoint{
					Path:   path.String(),
					Method: strings.ToUpper(method.String()),
				})
			}
			return true
		})
		return true
	})

	if len(endpoints) == 0 {
		return guessEndpoints(contract)
	}
	return endpoints
}

// resolveTextPatterns scans raw text for explicit method/path mentions.
// Each method contributes at most one endpoint, in GET, POST, PUT, DELETE
// order.
func resolveTextPatterns(contract string) []Endpoint {
	var endpoints []Endpoint

	for _, tp := range textPatterns {
		m := tp.explicit.FindStringSubmatch(contract)
		if m == nil {
			m = tp.jsonish.FindStringSubmatch(contract)
		}
		if m != nil {
			endpoints = append(endpoints, Endpoint{Path: m[1], Method: tp.method})
		}
	}

	return endpoints
}

// guessEndpoints falls back to generic CRUD endpoints based on keyword
// presence when nothing else could be resolved.
func guessEndpoints(contract string) []Endpoint {
	lower := strings.ToLower(contract)

	path := "/api/resource"
	switch {
	case strings.Contains(lower, "user"):
		path = "/api/users"
	case strings.Contains(lower, "product"):
		path = "/api/products"
	case strings.Contains(lower, "order"):
		path = "/api/orders"
	}

	return []Endpoint{
		{Path: path, Method: "GET"},
		{Path: path, Method: "POST"},
	}
}
