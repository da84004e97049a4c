package contract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Caseforge/caseforge-cli/internal/core/suite"
)

// Only the first endpoints are expanded; large contracts would otherwise
// drown the output in near-identical cases.
const maxEndpoints = 3

var pathParamPattern = regexp.MustCompile(`:\w+`)

// Synthesize resolves the contract and expands each of the first three
// endpoints into 2-4 test cases, then appends a single shared rate-limit
// scenario. The generic two-case fallback guarantees a non-empty result
// for any input. Never errors.
func Synthesize(contract string) []suite.TestCase {
	var cases []suite.TestCase

	endpoints := Resolve(contract)
	if len(endpoints) > maxEndpoints {
		endpoints = endpoints[:maxEndpoints]
	}

	for _, ep := range endpoints {
		resourceName := lastPathSegment(ep.Path)
		hasPathParam := strings.Contains(ep.Path, ":")
		writesBody := ep.Method == "POST" || ep.Method == "PUT" || ep.Method == "PATCH"

		cases = append(cases, successCase(ep, writesBody))

		if writesBody {
			cases = append(cases, invalidDataCase(ep, resourceName))
		}

		cases = append(cases, unauthorizedCase(ep))

		if hasPathParam || ep.Method == "GET" {
			cases = append(cases, notFoundCase(ep, resourceName))
		}
	}

	if len(cases) > 0 {
		cases = append(cases, rateLimitCase())
	} else {
		cases = genericCases()
	}

	for i := range cases {
		cases[i].ID = strconv.Itoa(i + 1)
	}

	return cases
}

func lastPathSegment(path string) string {
	segments := strings.Split(path, "/")
	last := segments[len(segments)-1]
	if last == "" {
		return "resource"
	}
	return last
}

func successCase(ep Endpoint, writesBody bool) suite.TestCase {
	bodyStep := "Verify request parameters"
	if writesBody {
		bodyStep = "Include valid request body"
	}

	status := "200"
	statusText := "200 OK"
	if ep.Method == "POST" {
		status = "201"
		statusText = "201 Created"
	}

	return suite.TestCase{
		Title:       fmt.Sprintf("%s %s - Successful Request", ep.Method, ep.Path),
		Description: fmt.Sprintf("Verify successful %s request to %s", ep.Method, ep.Path),
		Type:        suite.TypePositive,
		Priority:    suite.PriorityHigh,
		Steps: []string{
			fmt.Sprintf("Send %s request to %s", ep.Method, ep.Path),
			"Include valid headers and authentication",
			bodyStep,
			fmt.Sprintf("Verify response status code is %s", status),
			"Verify response body structure matches schema",
		},
		ExpectedResult: fmt.Sprintf("Returns %s with expected data structure", statusText),
		Preconditions:  []string{"API is running", "Valid authentication token available"},
		TestData: map[string]any{
			"endpoint": ep.Path,
			"method":   ep.Method,
			"headers": map[string]any{
				"Authorization": "Bearer <token>",
				"Content-Type":  "application/json",
			},
		},
	}
}

func invalidDataCase(ep Endpoint, resourceName string) suite.TestCase {
	return suite.TestCase{
		Title:       fmt.Sprintf("%s %s - Invalid Data", ep.Method, ep.Path),
		Description: fmt.Sprintf("Verify validation of invalid data for %s request", ep.Method),
		Type:        suite.TypeNegative,
		Priority:    suite.PriorityHigh,
		Steps: []string{
			fmt.Sprintf("Send %s request with invalid/missing fields", ep.Method),
			"Verify response status code is 400",
			"Verify error message describes validation issues",
			fmt.Sprintf("Verify %s was not created/updated", resourceName),
		},
		ExpectedResult: "Returns 400 Bad Request with validation error details",
		Preconditions:  []string{"API is running"},
		TestData: map[string]any{
			"endpoint": ep.Path,
			"method":   ep.Method,
			"body":     map[string]any{"invalid": "data"},
		},
	}
}

func unauthorizedCase(ep Endpoint) suite.TestCase {
	return suite.TestCase{
		Title:       fmt.Sprintf("%s %s - Unauthorized Access", ep.Method, ep.Path),
		Description: fmt.Sprintf("Verify authentication required for %s request", ep.Method),
		Type:        suite.TypeNegative,
		Priority:    suite.PriorityHigh,
		Steps: []string{
			fmt.Sprintf("Send %s request without authentication token", ep.Method),
			"Verify response status code is 401",
			"Verify appropriate error message",
		},
		ExpectedResult: "Returns 401 Unauthorized with error message \"Authentication required\"",
		Preconditions:  []string{"API is running"},
		TestData: map[string]any{
			"endpoint": ep.Path,
			"method":   ep.Method,
		},
	}
}

func notFoundCase(ep Endpoint, resourceName string) suite.TestCase {
	return suite.TestCase{
		Title:       fmt.Sprintf("%s %s - Resource Not Found", ep.Method, ep.Path),
		Description: fmt.Sprintf("Verify handling of non-existent %s", resourceName),
		Type:        suite.TypeNegative,
		Priority:    suite.PriorityMedium,
		Steps: []string{
			fmt.Sprintf("Send %s request with non-existent ID", ep.Method),
			"Verify response status code is 404",
			"Verify appropriate error message",
		},
		ExpectedResult: fmt.Sprintf("Returns 404 Not Found with error message %q", resourceName+" not found"),
		Preconditions:  []string{"API is running"},
		TestData: map[string]any{
			"endpoint": replaceFirstParam(ep.Path, "99999"),
			"method":   ep.Method,
		},
	}
}

// replaceFirstParam substitutes the first :param segment with the given
// literal, leaving the rest of the path intact.
func replaceFirstParam(path, value string) string {
	replaced := false
	return pathParamPattern.ReplaceAllStringFunc(path, func(m string) string {
		if replaced {
			return m
		}
		replaced = true
		return value
	})
}

func rateLimitCase() suite.TestCase {
	return suite.TestCase{
		Title:       "API Rate Limiting",
		Description: "Verify API rate limiting is enforced",
		Type:        suite.TypeEdgeCase,
		Priority:    suite.PriorityMedium,
		Steps: []string{
			"Send multiple rapid requests to API endpoint",
			"Verify rate limit threshold is enforced",
			"Verify response status code is 429",
			"Verify retry-after header is present",
		},
		ExpectedResult: "Returns 429 Too Many Requests when rate limit is exceeded",
		Preconditions:  []string{"API is running"},
		TestData: map[string]any{
			"description": "Multiple rapid requests",
		},
	}
}

// genericCases is the ultimate safety net: a fixed two-case scenario for
// input where not even the keyword tier produced endpoints.
func genericCases() []suite.TestCase {
	return []suite.TestCase{
		{
			Title:       "API Endpoint - Successful Request",
			Description: "Verify successful API request with valid data",
			Type:        suite.TypePositive,
			Priority:    suite.PriorityHigh,
			Steps: []string{
				"Send request to API endpoint with valid parameters",
				"Verify response status code is 200",
				"Verify response contains expected data structure",
			},
			ExpectedResult: "Returns 200 OK with valid response data",
			Preconditions:  []string{"API is running", "Valid authentication if required"},
			TestData: map[string]any{
				"endpoint": "/api/endpoint",
				"method":   "GET",
			},
		},
		{
			Title:       "API Endpoint - Invalid Request",
			Description: "Verify error handling for invalid requests",
			Type:        suite.TypeNegative,
			Priority:    suite.PriorityHigh,
			Steps: []string{
				"Send request with invalid parameters",
				"Verify appropriate error status code",
				"Verify error message is descriptive",
			},
			ExpectedResult: "Returns error status code with descriptive error message",
			Preconditions:  []string{"API is running"},
			TestData: map[string]any{
				"endpoint": "/api/endpoint",
				"method":   "GET",
			},
		},
	}
}
