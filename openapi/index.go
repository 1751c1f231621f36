package openapi

import (
	"fmt"
	"sort"
	"strings"
)

// Index holds parsed endpoint data for a single OpenAPI document.
type Index struct {
	Spec      string
	Endpoints map[string]map[string]*EndpointDetail // path -> method -> detail
}

// Count returns the total number of endpoints.
func (idx *Index) Count() int {
	n := 0
	for _, methods := range idx.Endpoints {
		n += len(methods)
	}
	return n
}

// Filter returns endpoint summaries matching optional tag and method filters.
func (idx *Index) Filter(tag, method string) []EndpointSummary {
	method = strings.ToUpper(method)
	return idx.collect(func(m string, detail *EndpointDetail) bool {
		if method != "" && m != method {
			return false
		}
		if tag == "" {
			return true
		}
		for _, t := range detail.Tags {
			if strings.EqualFold(t, tag) {
				return true
			}
		}
		return false
	})
}

// GetDetail returns full details for a specific endpoint. An unknown path
// falls back to the first path ending with it.
func (idx *Index) GetDetail(path, method string) (*EndpointDetail, error) {
	methods, ok := idx.Endpoints[path]
	if !ok {
		for _, p := range idx.paths() {
			if strings.HasSuffix(p, path) {
				methods = idx.Endpoints[p]
				path = p
				ok = true
				break
			}
		}
		if !ok {
			return nil, fmt.Errorf("endpoint %s not found", path)
		}
	}

	detail, ok := methods[strings.ToUpper(method)]
	if !ok {
		return nil, fmt.Errorf("method %s not found for %s", method, path)
	}
	return detail, nil
}

// Operation returns the endpoint with the given operationId, ignoring case.
func (idx *Index) Operation(id string) (*EndpointDetail, error) {
	for _, methods := range idx.Endpoints {
		for _, detail := range methods {
			if detail.Operation != "" && strings.EqualFold(detail.Operation, id) {
				return detail, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %q in %s", ErrUnknownOperation, id, idx.Spec)
}

// Search returns endpoints whose path, operation, summary, description or
// tags contain query.
func (idx *Index) Search(query string) []EndpointSummary {
	query = strings.ToLower(query)
	return idx.collect(func(_ string, detail *EndpointDetail) bool {
		return matches(query, detail)
	})
}

// collect returns the summaries accepted by keep, ordered by path then
// method.
func (idx *Index) collect(keep func(method string, detail *EndpointDetail) bool) []EndpointSummary {
	var results []EndpointSummary
	for _, path := range idx.paths() {
		methods := idx.Endpoints[path]
		names := make([]string, 0, len(methods))
		for m := range methods {
			names = append(names, m)
		}
		sort.Strings(names)
		for _, m := range names {
			if keep(m, methods[m]) {
				results = append(results, methods[m].summary())
			}
		}
	}
	return results
}

func (idx *Index) paths() []string {
	paths := make([]string, 0, len(idx.Endpoints))
	for p := range idx.Endpoints {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func matches(query string, detail *EndpointDetail) bool {
	fields := append([]string{detail.Path, detail.Operation, detail.Summary, detail.Description}, detail.Tags...)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
