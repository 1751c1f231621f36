package openapi

import (
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
)

// Parameter locations.
const (
	InPath  = "path"
	InQuery = "query"
)

// Param is a single path or query parameter of an operation.
type Param struct {
	Name     string
	In       string
	Required bool
	Schema   *openapi3.Schema
}

// Operation is the contract of one API call: what it accepts and what it can
// answer, keyed by status code.
type Operation struct {
	Name        string
	Method      string
	Path        string
	Tag         string
	Summary     string
	ContentType string
	Body        *openapi3.Schema
	Params      []Param
	// Metadata combines the path and query parameter schemas with allOf.
	Metadata  *openapi3.Schema
	Responses map[int]*openapi3.Schema
	Paginated bool
	// Unique creates may answer 422 with resource_already_exists.
	Unique bool
}

// Statuses returns the declared status codes in ascending order.
func (op *Operation) Statuses() []int {
	statuses := make([]int, 0, len(op.Responses))
	for status := range op.Responses {
		statuses = append(statuses, status)
	}
	sort.Ints(statuses)
	return statuses
}

// Response returns the schema declared for status.
func (op *Operation) Response(status int) (*openapi3.Schema, bool) {
	s, ok := op.Responses[status]
	return s, ok
}

// Param returns the parameter called name.
func (op *Operation) Param(name string) (Param, bool) {
	for _, p := range op.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// SuccessStatus is the status of the operation's successful response.
func (op *Operation) SuccessStatus() int {
	for _, status := range op.Statuses() {
		if status < 300 {
			return status
		}
	}
	return 0
}
