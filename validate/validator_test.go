package validate

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakenesler/mailschema/mailapi"
	"github.com/jakenesler/mailschema/metrics"
	"github.com/jakenesler/mailschema/openapi"
)

const brandID = "7f3e9a52-1c4b-4e8d-a6f2-0b9d8c7e6a51"

// rules returns "path rule" for every violation of err.
func rules(t *testing.T, err error) []string {
	t.Helper()
	var perr *PayloadError
	require.ErrorAs(t, err, &perr)
	assert.ErrorIs(t, err, ErrInvalidPayload)

	out := make([]string, len(perr.Violations))
	for i, v := range perr.Violations {
		out[i] = v.Path + " " + v.Rule
	}
	return out
}

func TestBody(t *testing.T) {
	v := New(openapi.Default())

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, v.Body("CreateBrand", []byte(`{"name":"Acme","from_name":"Acme Team","from_email":"news@acme.example"}`)))
		assert.NoError(t, v.Body("GetBrand", nil))
	})

	t.Run("every violation is reported", func(t *testing.T) {
		err := v.Body("CreateBrand", []byte(`{
			"name": "",
			"from_email": "not-an-email",
			"bounce_danger_percent": 20,
			"contact_limit": 1500,
			"throttling_type": "weekly"
		}`))
		want := []string{
			"/bounce_danger_percent maximum",
			"/contact_limit multipleOf",
			"/from_email format",
			"/from_name required",
			"/name minLength",
			"/throttling_type enum",
		}
		if diff := cmp.Diff(want, rules(t, err)); diff != "" {
			t.Errorf("violations mismatch (-want +got):\n%s", diff)
		}
		assert.Contains(t, err.Error(), "CreateBrand body: 6 violations")
	})

	t.Run("nested values", func(t *testing.T) {
		err := v.Body("CreateSegment", []byte(`{"name":"Pro","conditions":[{"field":"plan","operator":"resembles","value":"pro"}]}`))
		assert.Equal(t, []string{"/conditions/0/operator enum"}, rules(t, err))

		err = v.Body("CreateCampaign", []byte(`{"name":"Sale","subject":"Sale","html":"PGgxPg==","list_ids":["9C2E4A6B-8D0F-4B1C-A3E5-6F7A8B9C0D24"]}`))
		assert.Equal(t, []string{"/list_ids/0 format"}, rules(t, err))
	})

	t.Run("presence", func(t *testing.T) {
		assert.Equal(t, []string{"/ body"}, rules(t, v.Body("GetBrand", []byte(`{}`))))
		assert.Equal(t, []string{"/ body"}, rules(t, v.Body("CreateBrand", []byte("  "))))
		assert.Equal(t, []string{"/ json"}, rules(t, v.Body("CreateBrand", []byte(`{"name":`))))
	})

	t.Run("unknown operation", func(t *testing.T) {
		err := v.Body("CreateWebhook", []byte(`{}`))
		assert.ErrorIs(t, err, openapi.ErrUnknownOperation)
		assert.False(t, errors.Is(err, ErrInvalidPayload))
	})
}

func TestEncodeBody(t *testing.T) {
	v := New(openapi.Default())

	data, err := v.EncodeBody("CreateBrand", mailapi.CreateBrandBody{
		Name:           "Acme",
		FromName:       "Acme Team",
		FromEmail:      "news@acme.example",
		ContactLimit:   5000,
		ThrottlingType: "daily",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Acme","from_name":"Acme Team","from_email":"news@acme.example","contact_limit":5000,"throttling_type":"daily"}`, string(data))

	_, err = v.EncodeBody("CreateBrand", mailapi.CreateBrandBody{ContactLimit: 1500})
	want := []string{
		"/contact_limit multiple_of",
		"/from_email required",
		"/from_name required",
		"/name required",
	}
	if diff := cmp.Diff(want, rules(t, err)); diff != "" {
		t.Errorf("violations mismatch (-want +got):\n%s", diff)
	}

	_, err = v.EncodeBody("CreateCampaign", &mailapi.CreateCampaignBody{
		Name:    "Sale",
		Subject: "Sale",
		HTML:    "PGgxPg==",
		ListIDs: []string{"not-a-uuid"},
	})
	assert.Equal(t, []string{"/list_ids/0 uuid"}, rules(t, err))

	_, err = v.EncodeBody("GetBrand", mailapi.CreateBrandBody{})
	assert.Error(t, err)
}

func TestMetadata(t *testing.T) {
	v := New(openapi.Default())

	t.Run("coerced", func(t *testing.T) {
		values, err := v.Metadata("ListContacts", map[string]string{
			"brand_id": brandID,
			"limit":    "25",
			"status":   "bounced",
		})
		require.NoError(t, err)
		want := map[string]any{"brand_id": brandID, "limit": int64(25), "status": "bounced"}
		if diff := cmp.Diff(want, values); diff != "" {
			t.Errorf("values mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("violations across members", func(t *testing.T) {
		_, err := v.Metadata("ListContacts", map[string]string{
			"brand_id": "7F3E9A52",
			"limit":    "500",
			"status":   "gone",
			"sort":     "name",
		})
		want := []string{
			"/brand_id format",
			"/limit maximum",
			"/sort unknown",
			"/status enum",
		}
		if diff := cmp.Diff(want, rules(t, err)); diff != "" {
			t.Errorf("violations mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("missing and malformed", func(t *testing.T) {
		_, err := v.Metadata("GetCampaign", map[string]string{"campaign_id": "3a1d5e7f-9b2c-4d6e-8f0a-1b3c5d7e9f20"})
		assert.Equal(t, []string{"/brand_id required"}, rules(t, err))

		_, err = v.Metadata("ListBrands", map[string]string{"limit": "ten"})
		assert.Equal(t, []string{"/limit type"}, rules(t, err))
	})

	t.Run("unknown params allowed", func(t *testing.T) {
		lenient := New(openapi.Default(), WithUnknownParams(true))
		values, err := lenient.Metadata("GetBrand", map[string]string{"brand_id": brandID, "expand": "lists"})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"brand_id": brandID}, values)
	})
}

func TestRequest(t *testing.T) {
	v := New(openapi.Default())

	values, err := v.Request("UpdateBrand", map[string]string{"brand_id": brandID}, []byte(`{"name":"Acme Outdoor Gear"}`))
	require.NoError(t, err)
	assert.Equal(t, brandID, values["brand_id"])

	_, err = v.Request("UpdateBrand", map[string]string{"brand_id": "acme"}, []byte(`{"bounce_danger_percent":0}`))
	assert.Equal(t, []string{"/body/bounce_danger_percent minimum", "/params/brand_id format"}, rules(t, err))

	var perr *PayloadError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, PartRequest, perr.Part)
}

func TestResponse(t *testing.T) {
	c := openapi.Default()
	v := New(c)

	t.Run("success", func(t *testing.T) {
		example, err := c.ExampleResponse("GetBrand", http.StatusOK)
		require.NoError(t, err)
		data, err := json.Marshal(example)
		require.NoError(t, err)

		resp, err := v.Response("GetBrand", http.StatusOK, data)
		require.NoError(t, err)
		var brand mailapi.Brand
		require.NoError(t, resp.Decode(&brand))
		assert.Equal(t, brandID, brand.ID)
		assert.Equal(t, 5, brand.BounceDangerPercent)
	})

	t.Run("schema mismatch", func(t *testing.T) {
		_, err := v.Response("DeleteBrand", http.StatusOK, []byte(`{"id":"x"}`))
		assert.Equal(t, []string{"/deleted required", "/id format"}, rules(t, err))
	})

	t.Run("errors", func(t *testing.T) {
		resp, err := v.Response("GetBrand", http.StatusNotFound,
			[]byte(`{"type":"invalid_request_error","message":"No such brand","code":"resource_missing"}`))
		require.NotNil(t, resp)
		var apiErr *mailapi.Error
		require.ErrorAs(t, err, &apiErr)
		assert.ErrorIs(t, err, mailapi.ErrNotFound)
		assert.False(t, apiErr.Temporary())
		assert.Equal(t, "No such brand", apiErr.Message)

		_, err = v.Response("GetBrand", http.StatusTooManyRequests, []byte(`{"type":"rate_limit_error","message":"Slow down"}`))
		require.ErrorAs(t, err, &apiErr)
		assert.True(t, apiErr.Temporary())

		_, err = v.Response("ListBrands", http.StatusUnprocessableEntity, []byte(`{"preconditions":["verify a sending domain","add a logo"]}`))
		require.ErrorAs(t, err, &apiErr)
		assert.ErrorIs(t, err, mailapi.ErrPrecondition)
		assert.Equal(t, []string{"verify a sending domain", "add a logo"}, apiErr.Preconditions)
	})

	t.Run("error payload must match its status", func(t *testing.T) {
		_, err := v.Response("GetBrand", http.StatusNotFound, []byte(`{"type":"invalid_request_error","message":"No such brand"}`))
		assert.Equal(t, []string{"/code required"}, rules(t, err))

		_, err = v.Response("GetBrand", http.StatusUnauthorized, []byte(`{"type":"server_error","message":"nope"}`))
		assert.Equal(t, []string{"/type enum"}, rules(t, err))
	})

	t.Run("conflicts only on unique creates", func(t *testing.T) {
		conflict := []byte(`{"type":"resource_already_exists","message":"already exists"}`)
		for _, op := range []string{"DeleteBrand", "UpdateBrand", "CreateBrand"} {
			_, err := v.Response(op, http.StatusUnprocessableEntity, conflict)
			assert.Equal(t, []string{"/type enum"}, rules(t, err), op)
		}

		_, err := v.Response("CreateField", http.StatusUnprocessableEntity, conflict)
		var apiErr *mailapi.Error
		require.ErrorAs(t, err, &apiErr)
		assert.ErrorIs(t, err, mailapi.ErrConflict)

		_, err = v.Response("DeleteBrand", http.StatusUnprocessableEntity, []byte(`{"type":"failed_precondition","message":"brand has campaigns in flight"}`))
		require.ErrorAs(t, err, &apiErr)
		assert.ErrorIs(t, err, mailapi.ErrPrecondition)
	})

	t.Run("undeclared status", func(t *testing.T) {
		_, err := v.Response("GetBrand", http.StatusCreated, []byte(`{}`))
		assert.ErrorIs(t, err, ErrUndeclaredStatus)
	})
}

func TestMetrics(t *testing.T) {
	m, err := metrics.New()
	require.NoError(t, err)
	v := New(openapi.Default(), WithMetrics(m))

	assert.NoError(t, v.Body("CreateList", []byte(`{"name":"Newsletter"}`)))
	assert.Error(t, v.Body("CreateList", []byte(`{}`)))
	_, err = v.Metadata("GetList", map[string]string{"brand_id": brandID, "list_id": brandID})
	assert.NoError(t, err)

	expected := `
# HELP mailschema_validation_total The total count of payloads validated, by operation, payload part and outcome.
# TYPE mailschema_validation_total counter
mailschema_validation_total{operation="CreateList",outcome="invalid",part="body"} 1
mailschema_validation_total{operation="CreateList",outcome="valid",part="body"} 1
mailschema_validation_total{operation="GetList",outcome="valid",part="metadata"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "mailschema_validation_total"))
}
