package openapi

import (
	"context"
	"net/http"
	"sort"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakenesler/mailschema/mailapi"
)

var declaredStatuses = []int{200, 400, 401, 403, 404, 422, 429, 500, 502, 503, 504}

func TestCatalog(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	t.Run("operations", func(t *testing.T) {
		ops := c.Operations()
		assert.Len(t, ops, 44)
		for _, op := range ops {
			assert.Equal(t, declaredStatuses, op.Statuses(), op.Name)
			assert.Equal(t, http.StatusOK, op.SuccessStatus(), op.Name)
			if op.Method == http.MethodGet || op.Method == http.MethodDelete {
				assert.Nil(t, op.Body, "%s takes no body", op.Name)
			}
		}

		assert.Equal(t, []string{"brands", "campaigns", "connections", "contacts", "fields", "lists", "segments", "suppressions", "users"}, c.Tags())
		assert.Len(t, c.Filter("contacts", ""), 6)
		assert.Len(t, c.Filter("", "delete"), 9)
	})

	t.Run("get", func(t *testing.T) {
		op, err := c.Get("createbrand")
		require.NoError(t, err)
		assert.Equal(t, "CreateBrand", op.Name)
		assert.Equal(t, http.MethodPost, op.Method)
		assert.Equal(t, ContentJSON, op.ContentType)

		_, err = c.Get("SendNewsletter")
		assert.ErrorIs(t, err, ErrUnknownOperation)
	})

	t.Run("metadata", func(t *testing.T) {
		op, err := c.Get("ListContacts")
		require.NoError(t, err)
		assert.True(t, op.Paginated)
		require.NotNil(t, op.Metadata)
		assert.Len(t, op.Metadata.AllOf, 3)

		var names []string
		for _, p := range op.Params {
			names = append(names, p.In+":"+p.Name)
		}
		want := []string{"path:brand_id", "query:limit", "query:cursor", "query:list_id", "query:status", "query:email"}
		if diff := cmp.Diff(want, names); diff != "" {
			t.Errorf("params mismatch (-want +got):\n%s", diff)
		}

		p, ok := op.Param("brand_id")
		require.True(t, ok)
		assert.True(t, p.Required)
		assert.Equal(t, "uuid", p.Schema.Format)

		op, err = c.Get("CreateUser")
		require.NoError(t, err)
		assert.Nil(t, op.Metadata)
		assert.Empty(t, op.Params)
	})

	t.Run("error responses", func(t *testing.T) {
		op, err := c.Get("GetBrand")
		require.NoError(t, err)

		for _, status := range mailapi.ErrorStatuses {
			if status == http.StatusUnprocessableEntity {
				continue
			}
			s, ok := op.Response(status)
			require.True(t, ok)
			enum := s.Properties["type"].Value.Enum
			require.NotEmpty(t, enum, "status %d", status)
			for i, typ := range mailapi.TypesForStatus(status) {
				assert.Equal(t, string(typ), enum[i])
			}
		}

		for name, want := range map[string][]any{
			"GetBrand":          {"failed_precondition"},
			"CreateBrand":       {"failed_precondition"},
			"DeleteBrand":       {"failed_precondition"},
			"CreateField":       {"failed_precondition", "resource_already_exists"},
			"CreateUser":        {"failed_precondition", "resource_already_exists"},
			"CreateContact":     {"failed_precondition", "resource_already_exists"},
			"CreateSuppression": {"failed_precondition", "resource_already_exists"},
		} {
			op, err := c.Get(name)
			require.NoError(t, err)
			s, _ := op.Response(http.StatusUnprocessableEntity)
			assert.Equal(t, want, s.Properties["type"].Value.Enum, name)
		}

		notFound, _ := op.Response(http.StatusNotFound)
		assert.Contains(t, notFound.Required, "code")
		assert.Equal(t, []any{mailapi.CodeResourceMissing}, notFound.Properties["code"].Value.Enum)

		list, err := c.Get("ListBrands")
		require.NoError(t, err)
		pre, _ := list.Response(http.StatusUnprocessableEntity)
		assert.Contains(t, pre.Properties, "preconditions")
		assert.NotContains(t, pre.Properties, "type")
	})

	t.Run("multipart", func(t *testing.T) {
		op, err := c.Get("ImportContacts")
		require.NoError(t, err)
		assert.Equal(t, ContentMultipart, op.ContentType)
		assert.Equal(t, "binary", op.Body.Properties["file"].Value.Format)
	})
}

func TestDefault(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestDocument(t *testing.T) {
	c := Default()
	ctx := context.Background()

	require.NoError(t, c.Document().Validate(ctx))

	for _, format := range []string{FormatJSON, FormatYAML} {
		t.Run(format, func(t *testing.T) {
			data, err := c.Export(format)
			require.NoError(t, err)

			idx, err := Parse(ctx, "exported", data)
			require.NoError(t, err)
			assert.Equal(t, 44, idx.Count())

			detail, err := idx.Operation("UpdateBrand")
			require.NoError(t, err)
			assert.Equal(t, http.MethodPatch, detail.Method)
			require.NotNil(t, detail.RequestBody)
			assert.Equal(t, "integer", detail.RequestBody.Properties["bounce_danger_percent"].Type)
			assert.Len(t, detail.Responses, len(declaredStatuses))
		})
	}

	_, err := c.Export("toml")
	assert.Error(t, err)
}

// Every example the catalog can produce validates against its own schema.
func TestExamplesValidate(t *testing.T) {
	c := Default()
	for _, op := range c.Operations() {
		op := op
		t.Run(op.Name, func(t *testing.T) {
			if op.Body != nil {
				body, err := c.ExampleBody(op.Name)
				require.NoError(t, err)
				assert.NoError(t, op.Body.VisitJSON(body, openapi3.MultiErrors(), openapi3.VisitAsRequest()))
			}
			if op.Metadata != nil {
				assert.NoError(t, op.Metadata.VisitJSON(Example(op.Metadata), openapi3.MultiErrors()))
			}
			for _, status := range op.Statuses() {
				payload, err := c.ExampleResponse(op.Name, status)
				require.NoError(t, err)
				s, _ := op.Response(status)
				assert.NoError(t, s.VisitJSON(payload, openapi3.MultiErrors(), openapi3.VisitAsResponse()), "status %d", status)
			}
		})
	}

	_, err := c.ExampleResponse("GetBrand", http.StatusCreated)
	assert.Error(t, err)
}

func TestEveryPropertyDescribed(t *testing.T) {
	var walk func(path string, s *openapi3.Schema)
	walk = func(path string, s *openapi3.Schema) {
		if s == nil {
			return
		}
		for _, part := range s.AllOf {
			walk(path, part.Value)
		}
		for name, ref := range s.Properties {
			assert.NotEmpty(t, ref.Value.Description, "%s.%s", path, name)
			walk(path+"."+name, ref.Value)
		}
		if s.Items != nil {
			walk(path+"[]", s.Items.Value)
		}
	}

	for _, op := range Default().Operations() {
		walk(op.Name+".body", op.Body)
		walk(op.Name+".metadata", op.Metadata)
		for _, status := range op.Statuses() {
			s, _ := op.Response(status)
			walk(op.Name+".response", s)
		}
	}
}

func TestExampleParams(t *testing.T) {
	c := Default()

	params, err := c.ExampleParams("GetCampaign", false)
	require.NoError(t, err)
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	assert.Equal(t, []string{"brand_id", "campaign_id"}, keys)
	assert.Equal(t, "3a1d5e7f-9b2c-4d6e-8f0a-1b3c5d7e9f20", params["campaign_id"])

	params, err = c.ExampleParams("ListCampaigns", true)
	require.NoError(t, err)
	assert.Equal(t, "25", params["limit"])
	assert.Equal(t, "sent", params["status"])
}
