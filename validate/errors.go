package validate

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/jakenesler/mailschema/internal/validation"
)

var (
	// ErrInvalidPayload is matched by every *PayloadError.
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrUndeclaredStatus is returned when a response carries a status the
	// operation does not declare.
	ErrUndeclaredStatus = errors.New("undeclared status")
)

// Parts of a call a payload can belong to.
const (
	PartBody     = "body"
	PartMetadata = "metadata"
	PartRequest  = "request"
	PartResponse = "response"
)

// Violation is a single rule a payload breaks.
type Violation struct {
	// Path is a JSON pointer to the offending value; "/" is the payload itself.
	Path   string `json:"path"`
	Rule   string `json:"rule"`
	Reason string `json:"reason"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s (%s)", v.Path, v.Reason, v.Rule)
}

// PayloadError reports every violation found in one part of a call.
type PayloadError struct {
	Operation  string      `json:"operation"`
	Part       string      `json:"part"`
	Violations []Violation `json:"violations"`
}

func (e *PayloadError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s: %d violation", e.Operation, e.Part, len(e.Violations))
	if len(e.Violations) != 1 {
		sb.WriteString("s")
	}
	for i, v := range e.Violations {
		if i == 0 {
			sb.WriteString(": ")
		} else {
			sb.WriteString("; ")
		}
		sb.WriteString(v.String())
	}
	return sb.String()
}

// Is reports whether target is ErrInvalidPayload.
func (e *PayloadError) Is(target error) bool {
	return target == ErrInvalidPayload
}

func newPayloadError(operation, part string, violations []Violation) *PayloadError {
	sort.SliceStable(violations, func(i, j int) bool {
		if violations[i].Path != violations[j].Path {
			return violations[i].Path < violations[j].Path
		}
		return violations[i].Rule < violations[j].Rule
	})
	return &PayloadError{Operation: operation, Part: part, Violations: violations}
}

// schemaViolations flattens the errors of a kin-openapi schema visit. Errors
// of allOf members are reported in place of the allOf failure itself.
func schemaViolations(err error) []Violation {
	var out []Violation
	var walk func(error)
	walk = func(err error) {
		switch e := err.(type) {
		case openapi3.MultiError:
			for _, inner := range e {
				walk(inner)
			}
		case *openapi3.SchemaError:
			if e.SchemaField == "allOf" && e.Origin != nil {
				walk(e.Origin)
				return
			}
			out = append(out, Violation{
				Path:   pointer(e.JSONPointer()),
				Rule:   e.SchemaField,
				Reason: e.Reason,
			})
		default:
			out = append(out, Violation{Path: "/", Rule: "schema", Reason: err.Error()})
		}
	}
	walk(err)
	return out
}

// structViolations converts the go-playground errors of a typed body.
func structViolations(err error) []Violation {
	var se *validation.StructError
	if !errors.As(err, &se) {
		return []Violation{{Path: "/", Rule: "struct", Reason: err.Error()}}
	}

	out := make([]Violation, 0, len(se.Violations))
	for _, v := range se.Violations {
		out = append(out, Violation{
			Path:   namespacePointer(v.Namespace),
			Rule:   v.Tag,
			Reason: v.Error(),
		})
	}
	return out
}

func pointer(tokens []string) string {
	if len(tokens) == 0 {
		return "/"
	}
	escaped := make([]string, len(tokens))
	for i, t := range tokens {
		escaped[i] = strings.NewReplacer("~", "~0", "/", "~1").Replace(t)
	}
	return "/" + strings.Join(escaped, "/")
}

// namespacePointer turns "CreateCampaignBody.list_ids[0]" into "/list_ids/0".
func namespacePointer(ns string) string {
	_, rest, ok := strings.Cut(ns, ".")
	if !ok {
		return "/"
	}
	rest = strings.NewReplacer("[", ".", "]", "").Replace(rest)
	return pointer(strings.Split(rest, "."))
}

// prefixed returns violations with their paths moved under prefix.
func prefixed(prefix string, violations []Violation) []Violation {
	out := make([]Violation, len(violations))
	for i, v := range violations {
		v.Path = strings.TrimSuffix("/"+prefix+v.Path, "/")
		out[i] = v
	}
	return out
}
