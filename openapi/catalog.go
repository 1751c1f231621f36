package openapi

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

// BuiltinSpec is the name the compiled-in catalog is indexed under.
const BuiltinSpec = "mail"

// ErrUnknownOperation is returned when an operation name is not in the
// catalog.
var ErrUnknownOperation = errors.New("unknown operation")

// Catalog holds every operation of the email marketing API.
type Catalog struct {
	operations []*Operation
	byName     map[string]*Operation
	doc        *openapi3.T
	index      *Index
}

// New builds the catalog from the declared operations.
func New() (*Catalog, error) {
	errs, err := newErrorResponses()
	if err != nil {
		return nil, fmt.Errorf("building error responses: %w", err)
	}

	c := &Catalog{byName: make(map[string]*Operation, len(declarations))}
	for _, d := range declarations {
		op, err := d.build(errs)
		if err != nil {
			return nil, fmt.Errorf("building %s: %w", d.name, err)
		}
		key := strings.ToLower(op.Name)
		if _, dup := c.byName[key]; dup {
			return nil, fmt.Errorf("operation %s declared twice", op.Name)
		}
		c.byName[key] = op
		c.operations = append(c.operations, op)
	}

	c.doc = buildDocument(c.operations)
	c.index = buildIndex(BuiltinSpec, c.doc)
	return c, nil
}

var (
	defaultCatalog *Catalog
	defaultOnce    sync.Once
)

// Default returns the process-wide catalog. It panics if the declarations
// are inconsistent, which the package tests rule out.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := New()
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Get returns the operation called name, ignoring case.
func (c *Catalog) Get(name string) (*Operation, error) {
	op, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
	return op, nil
}

// Operations returns every operation in declaration order.
func (c *Catalog) Operations() []*Operation {
	return append([]*Operation(nil), c.operations...)
}

// Filter returns the operations matching the optional tag and method.
func (c *Catalog) Filter(tag, method string) []*Operation {
	var out []*Operation
	for _, op := range c.operations {
		if tag != "" && !strings.EqualFold(op.Tag, tag) {
			continue
		}
		if method != "" && !strings.EqualFold(op.Method, method) {
			continue
		}
		out = append(out, op)
	}
	return out
}

// Tags returns the distinct operation tags, sorted.
func (c *Catalog) Tags() []string {
	seen := make(map[string]bool)
	var tags []string
	for _, op := range c.operations {
		if !seen[op.Tag] {
			seen[op.Tag] = true
			tags = append(tags, op.Tag)
		}
	}
	sort.Strings(tags)
	return tags
}

// Document returns the catalog as an OpenAPI 3 document. The document is
// shared; callers must not modify it.
func (c *Catalog) Document() *openapi3.T {
	return c.doc
}

// Index returns the searchable index of the catalog.
func (c *Catalog) Index() *Index {
	return c.index
}
