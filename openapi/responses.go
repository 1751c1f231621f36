package openapi

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/jakenesler/mailschema/mailapi"
)

// errorResponses holds the error schemas shared by every operation.
type errorResponses struct {
	byStatus     map[int]*openapi3.Schema
	precondition *openapi3.Schema
	conflict     *openapi3.Schema
}

func newErrorResponses() (*errorResponses, error) {
	r := &errorResponses{byStatus: make(map[int]*openapi3.Schema)}
	for _, status := range mailapi.ErrorStatuses {
		s, err := Generate(mailapi.ErrorBody{})
		if err != nil {
			return nil, err
		}
		narrowErrorSchema(s, status)
		r.byStatus[status] = s
	}

	// Only creates of uniquely keyed resources report conflicts.
	r.conflict = r.byStatus[http.StatusUnprocessableEntity]
	s, err := Generate(mailapi.ErrorBody{})
	if err != nil {
		return nil, err
	}
	narrowErrorSchema(s, http.StatusUnprocessableEntity)
	typ := s.Properties["type"].Value
	typ.Enum = []any{string(mailapi.FailedPrecondition)}
	typ.Example = typ.Enum[0]
	r.byStatus[http.StatusUnprocessableEntity] = s

	s, err = Generate(mailapi.PreconditionBody{})
	if err != nil {
		return nil, err
	}
	r.precondition = s
	return r, nil
}

// narrowErrorSchema restricts "type" to what the API sends with status and
// makes "code" mandatory where the status implies one.
func narrowErrorSchema(s *openapi3.Schema, status int) {
	typ := s.Properties["type"].Value
	typ.Enum = nil
	for _, t := range mailapi.TypesForStatus(status) {
		typ.Enum = append(typ.Enum, string(t))
	}
	typ.Example = typ.Enum[0]

	var code string
	switch status {
	case http.StatusForbidden:
		code = mailapi.CodeForbidden
	case http.StatusNotFound:
		code = mailapi.CodeResourceMissing
	default:
		return
	}
	c := s.Properties["code"].Value
	c.Enum = []any{code}
	c.Example = code
	s.Required = append(s.Required, "code")
}

// forOperation returns the error schemas of an operation. List operations
// report failed preconditions with their own payload.
func (r *errorResponses) forOperation(paginated, unique bool) map[int]*openapi3.Schema {
	out := make(map[int]*openapi3.Schema, len(r.byStatus))
	for status, s := range r.byStatus {
		out[status] = s
	}
	switch {
	case paginated:
		out[http.StatusUnprocessableEntity] = r.precondition
	case unique:
		out[http.StatusUnprocessableEntity] = r.conflict
	}
	return out
}

// statusDescription is the response description used in exported documents.
func statusDescription(status int, op *Operation) string {
	switch status {
	case http.StatusBadRequest:
		return "The request was malformed or a parameter is invalid."
	case http.StatusUnauthorized:
		return "The API key is missing or invalid."
	case http.StatusForbidden:
		return "The API key is not allowed to perform this request."
	case http.StatusNotFound:
		return "The requested resource does not exist."
	case http.StatusUnprocessableEntity:
		switch {
		case op.Paginated:
			return "The listing cannot be produced until the preconditions hold."
		case op.Unique:
			return "A precondition failed or the resource already exists."
		}
		return "A precondition failed."
	case http.StatusTooManyRequests:
		return "Too many requests; slow down."
	case http.StatusInternalServerError:
		return "The API failed unexpectedly."
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return "The API is temporarily unavailable."
	}
	if status < 300 {
		return "Successful response."
	}
	return http.StatusText(status)
}
