package openapi

import (
	"fmt"
	"net/http"
	"reflect"
	"regexp"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/jakenesler/mailschema/mailapi"
)

// Content types of request bodies.
const (
	ContentJSON      = "application/json"
	ContentMultipart = "multipart/form-data"
)

// declaration is the source form of an Operation. Values are zero values of
// mailapi types; their schemas are generated when the catalog is built.
type declaration struct {
	name    string
	method  string
	route   string
	tag     string
	summary string
	body    any
	form    bool
	unique  bool
	path    any
	query   []any
	result  any
}

var pagination = mailapi.Pagination{}

var declarations = []declaration{
	// brands
	{name: "ListBrands", method: http.MethodGet, route: "/brands", tag: "brands", summary: "List brands",
		query: []any{pagination}, result: mailapi.Page[mailapi.Brand]{}},
	{name: "CreateBrand", method: http.MethodPost, route: "/brands", tag: "brands", summary: "Create a brand",
		body: mailapi.CreateBrandBody{}, result: mailapi.Brand{}},
	{name: "GetBrand", method: http.MethodGet, route: "/brands/{brand_id}", tag: "brands", summary: "Retrieve a brand",
		path: mailapi.BrandPath{}, result: mailapi.Brand{}},
	{name: "UpdateBrand", method: http.MethodPatch, route: "/brands/{brand_id}", tag: "brands", summary: "Update a brand",
		path: mailapi.BrandPath{}, body: mailapi.UpdateBrandBody{}, result: mailapi.Brand{}},
	{name: "DeleteBrand", method: http.MethodDelete, route: "/brands/{brand_id}", tag: "brands", summary: "Delete a brand and everything it owns",
		path: mailapi.BrandPath{}, result: mailapi.Deleted{}},

	// campaigns
	{name: "ListCampaigns", method: http.MethodGet, route: "/brands/{brand_id}/campaigns", tag: "campaigns", summary: "List campaigns of a brand",
		path: mailapi.BrandPath{}, query: []any{pagination, mailapi.CampaignFilter{}}, result: mailapi.Page[mailapi.Campaign]{}},
	{name: "CreateCampaign", method: http.MethodPost, route: "/brands/{brand_id}/campaigns", tag: "campaigns", summary: "Create a draft campaign",
		path: mailapi.BrandPath{}, body: mailapi.CreateCampaignBody{}, result: mailapi.Campaign{}},
	{name: "GetCampaign", method: http.MethodGet, route: "/brands/{brand_id}/campaigns/{campaign_id}", tag: "campaigns", summary: "Retrieve a campaign",
		path: mailapi.CampaignPath{}, result: mailapi.Campaign{}},
	{name: "UpdateCampaign", method: http.MethodPatch, route: "/brands/{brand_id}/campaigns/{campaign_id}", tag: "campaigns", summary: "Update a draft campaign",
		path: mailapi.CampaignPath{}, body: mailapi.UpdateCampaignBody{}, result: mailapi.Campaign{}},
	{name: "DeleteCampaign", method: http.MethodDelete, route: "/brands/{brand_id}/campaigns/{campaign_id}", tag: "campaigns", summary: "Delete a campaign that has not been sent",
		path: mailapi.CampaignPath{}, result: mailapi.Deleted{}},
	{name: "SendCampaign", method: http.MethodPost, route: "/brands/{brand_id}/campaigns/{campaign_id}/send", tag: "campaigns", summary: "Send or schedule a draft campaign",
		path: mailapi.CampaignPath{}, body: mailapi.SendCampaignBody{}, result: mailapi.Campaign{}},

	// contacts
	{name: "ListContacts", method: http.MethodGet, route: "/brands/{brand_id}/contacts", tag: "contacts", summary: "List contacts of a brand",
		path: mailapi.BrandPath{}, query: []any{pagination, mailapi.ContactFilter{}}, result: mailapi.Page[mailapi.Contact]{}},
	{name: "CreateContact", unique: true, method: http.MethodPost, route: "/brands/{brand_id}/contacts", tag: "contacts", summary: "Create a contact",
		path: mailapi.BrandPath{}, body: mailapi.CreateContactBody{}, result: mailapi.Contact{}},
	{name: "GetContact", method: http.MethodGet, route: "/brands/{brand_id}/contacts/{contact_id}", tag: "contacts", summary: "Retrieve a contact",
		path: mailapi.ContactPath{}, result: mailapi.Contact{}},
	{name: "UpdateContact", method: http.MethodPatch, route: "/brands/{brand_id}/contacts/{contact_id}", tag: "contacts", summary: "Update a contact",
		path: mailapi.ContactPath{}, body: mailapi.UpdateContactBody{}, result: mailapi.Contact{}},
	{name: "DeleteContact", method: http.MethodDelete, route: "/brands/{brand_id}/contacts/{contact_id}", tag: "contacts", summary: "Delete a contact",
		path: mailapi.ContactPath{}, result: mailapi.Deleted{}},
	{name: "ImportContacts", method: http.MethodPost, route: "/brands/{brand_id}/contacts/import", tag: "contacts", summary: "Import contacts from a CSV file",
		path: mailapi.BrandPath{}, body: mailapi.ImportContactsBody{}, form: true, result: mailapi.ImportJob{}},

	// lists
	{name: "ListLists", method: http.MethodGet, route: "/brands/{brand_id}/lists", tag: "lists", summary: "List the lists of a brand",
		path: mailapi.BrandPath{}, query: []any{pagination}, result: mailapi.Page[mailapi.List]{}},
	{name: "CreateList", method: http.MethodPost, route: "/brands/{brand_id}/lists", tag: "lists", summary: "Create a list",
		path: mailapi.BrandPath{}, body: mailapi.CreateListBody{}, result: mailapi.List{}},
	{name: "GetList", method: http.MethodGet, route: "/brands/{brand_id}/lists/{list_id}", tag: "lists", summary: "Retrieve a list",
		path: mailapi.ListPath{}, result: mailapi.List{}},
	{name: "UpdateList", method: http.MethodPatch, route: "/brands/{brand_id}/lists/{list_id}", tag: "lists", summary: "Update a list",
		path: mailapi.ListPath{}, body: mailapi.UpdateListBody{}, result: mailapi.List{}},
	{name: "DeleteList", method: http.MethodDelete, route: "/brands/{brand_id}/lists/{list_id}", tag: "lists", summary: "Delete a list; its contacts are kept",
		path: mailapi.ListPath{}, result: mailapi.Deleted{}},

	// fields
	{name: "ListFields", method: http.MethodGet, route: "/brands/{brand_id}/fields", tag: "fields", summary: "List custom fields of a brand",
		path: mailapi.BrandPath{}, query: []any{pagination}, result: mailapi.Page[mailapi.Field]{}},
	{name: "CreateField", unique: true, method: http.MethodPost, route: "/brands/{brand_id}/fields", tag: "fields", summary: "Create a custom field",
		path: mailapi.BrandPath{}, body: mailapi.CreateFieldBody{}, result: mailapi.Field{}},
	{name: "GetField", method: http.MethodGet, route: "/brands/{brand_id}/fields/{field_id}", tag: "fields", summary: "Retrieve a custom field",
		path: mailapi.FieldPath{}, result: mailapi.Field{}},
	{name: "UpdateField", method: http.MethodPatch, route: "/brands/{brand_id}/fields/{field_id}", tag: "fields", summary: "Update a custom field",
		path: mailapi.FieldPath{}, body: mailapi.UpdateFieldBody{}, result: mailapi.Field{}},
	{name: "DeleteField", method: http.MethodDelete, route: "/brands/{brand_id}/fields/{field_id}", tag: "fields", summary: "Delete a custom field and its values",
		path: mailapi.FieldPath{}, result: mailapi.Deleted{}},

	// segments
	{name: "ListSegments", method: http.MethodGet, route: "/brands/{brand_id}/segments", tag: "segments", summary: "List segments of a brand",
		path: mailapi.BrandPath{}, query: []any{pagination}, result: mailapi.Page[mailapi.Segment]{}},
	{name: "CreateSegment", method: http.MethodPost, route: "/brands/{brand_id}/segments", tag: "segments", summary: "Create a segment",
		path: mailapi.BrandPath{}, body: mailapi.CreateSegmentBody{}, result: mailapi.Segment{}},
	{name: "GetSegment", method: http.MethodGet, route: "/brands/{brand_id}/segments/{segment_id}", tag: "segments", summary: "Retrieve a segment",
		path: mailapi.SegmentPath{}, result: mailapi.Segment{}},
	{name: "UpdateSegment", method: http.MethodPatch, route: "/brands/{brand_id}/segments/{segment_id}", tag: "segments", summary: "Update a segment",
		path: mailapi.SegmentPath{}, body: mailapi.UpdateSegmentBody{}, result: mailapi.Segment{}},
	{name: "DeleteSegment", method: http.MethodDelete, route: "/brands/{brand_id}/segments/{segment_id}", tag: "segments", summary: "Delete a segment",
		path: mailapi.SegmentPath{}, result: mailapi.Deleted{}},

	// users
	{name: "ListUsers", method: http.MethodGet, route: "/users", tag: "users", summary: "List users of the account",
		query: []any{pagination, mailapi.UserFilter{}}, result: mailapi.Page[mailapi.User]{}},
	{name: "CreateUser", unique: true, method: http.MethodPost, route: "/users", tag: "users", summary: "Invite a user",
		body: mailapi.CreateUserBody{}, result: mailapi.User{}},
	{name: "GetUser", method: http.MethodGet, route: "/users/{user_id}", tag: "users", summary: "Retrieve a user",
		path: mailapi.UserPath{}, result: mailapi.User{}},
	{name: "UpdateUser", method: http.MethodPatch, route: "/users/{user_id}", tag: "users", summary: "Update a user",
		path: mailapi.UserPath{}, body: mailapi.UpdateUserBody{}, result: mailapi.User{}},
	{name: "DeleteUser", method: http.MethodDelete, route: "/users/{user_id}", tag: "users", summary: "Remove a user from the account",
		path: mailapi.UserPath{}, result: mailapi.Deleted{}},

	// connections
	{name: "ListConnections", method: http.MethodGet, route: "/brands/{brand_id}/connections", tag: "connections", summary: "List delivery connections of a brand",
		path: mailapi.BrandPath{}, query: []any{pagination}, result: mailapi.Page[mailapi.Connection]{}},
	{name: "CreateConnection", method: http.MethodPost, route: "/brands/{brand_id}/connections", tag: "connections", summary: "Connect a delivery provider",
		path: mailapi.BrandPath{}, body: mailapi.CreateConnectionBody{}, result: mailapi.Connection{}},
	{name: "GetConnection", method: http.MethodGet, route: "/brands/{brand_id}/connections/{connection_id}", tag: "connections", summary: "Retrieve a delivery connection",
		path: mailapi.ConnectionPath{}, result: mailapi.Connection{}},
	{name: "DeleteConnection", method: http.MethodDelete, route: "/brands/{brand_id}/connections/{connection_id}", tag: "connections", summary: "Disconnect a delivery provider",
		path: mailapi.ConnectionPath{}, result: mailapi.Deleted{}},

	// suppressions
	{name: "ListSuppressions", method: http.MethodGet, route: "/brands/{brand_id}/suppressions", tag: "suppressions", summary: "List suppressed addresses of a brand",
		path: mailapi.BrandPath{}, query: []any{pagination, mailapi.SuppressionFilter{}}, result: mailapi.Page[mailapi.Suppression]{}},
	{name: "CreateSuppression", unique: true, method: http.MethodPost, route: "/brands/{brand_id}/suppressions", tag: "suppressions", summary: "Suppress an address",
		path: mailapi.BrandPath{}, body: mailapi.CreateSuppressionBody{}, result: mailapi.Suppression{}},
	{name: "DeleteSuppression", method: http.MethodDelete, route: "/brands/{brand_id}/suppressions/{suppression_id}", tag: "suppressions", summary: "Remove an address from the suppression list",
		path: mailapi.SuppressionPath{}, result: mailapi.Deleted{}},
}

var routeParamRegex = regexp.MustCompile(`\{([a-z_]+)\}`)

func (d declaration) build(errs *errorResponses) (*Operation, error) {
	op := &Operation{
		Name:      d.name,
		Method:    d.method,
		Path:      d.route,
		Tag:       d.tag,
		Summary:   d.summary,
		Unique:    d.unique,
		Responses: make(map[int]*openapi3.Schema),
	}

	if d.body != nil {
		s, err := Generate(d.body)
		if err != nil {
			return nil, err
		}
		op.Body = s
		op.ContentType = ContentJSON
		if d.form {
			op.ContentType = ContentMultipart
		}
	}

	var parts []*openapi3.Schema
	if d.path != nil {
		s, err := Generate(d.path)
		if err != nil {
			return nil, err
		}
		parts = append(parts, s)
		op.Params = append(op.Params, params(s, InPath, d.path)...)
	}
	for _, q := range d.query {
		if _, ok := q.(mailapi.Pagination); ok {
			op.Paginated = true
		}
		s, err := Generate(q)
		if err != nil {
			return nil, err
		}
		parts = append(parts, s)
		op.Params = append(op.Params, params(s, InQuery, q)...)
	}
	if len(parts) > 0 {
		op.Metadata = openapi3.NewAllOfSchema(parts...)
	}

	if err := checkRoute(op); err != nil {
		return nil, err
	}

	result, err := Generate(d.result)
	if err != nil {
		return nil, err
	}
	op.Responses[http.StatusOK] = result
	for code, s := range errs.forOperation(op.Paginated, op.Unique) {
		op.Responses[code] = s
	}
	return op, nil
}

// params lists the properties of a parameter struct in field order.
func params(s *openapi3.Schema, in string, v any) []Param {
	var out []Param
	t := reflect.TypeOf(v)
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		prop, ok := s.Properties[name]
		if !ok {
			continue
		}
		out = append(out, Param{
			Name:     name,
			In:       in,
			Required: in == InPath || contains(s.Required, name),
			Schema:   prop.Value,
		})
	}
	return out
}

// checkRoute verifies that the route template and the path parameters name
// the same set.
func checkRoute(op *Operation) error {
	inRoute := make(map[string]bool)
	for _, m := range routeParamRegex.FindAllStringSubmatch(op.Path, -1) {
		inRoute[m[1]] = true
	}
	declared := 0
	for _, p := range op.Params {
		if p.In != InPath {
			continue
		}
		declared++
		if !inRoute[p.Name] {
			return fmt.Errorf("%s: path parameter %q is not in %s", op.Name, p.Name, op.Path)
		}
	}
	if declared != len(inRoute) {
		return fmt.Errorf("%s: %s has %d parameters, %d declared", op.Name, op.Path, len(inRoute), declared)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
