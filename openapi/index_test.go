package openapi

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex(t *testing.T) {
	idx := Default().Index()
	assert.Equal(t, BuiltinSpec, idx.Spec)
	assert.Equal(t, 44, idx.Count())

	t.Run("filter", func(t *testing.T) {
		got := idx.Filter("Segments", "")
		require.Len(t, got, 5)
		assert.Equal(t, "/brands/{brand_id}/segments", got[0].Path)
		assert.Equal(t, "GET", got[0].Method)
		assert.Equal(t, "ListSegments", got[0].Operation)

		assert.Len(t, idx.Filter("", "patch"), 7)
	})

	t.Run("search", func(t *testing.T) {
		got := idx.Search("import")
		require.Len(t, got, 1)
		assert.Equal(t, "ImportContacts", got[0].Operation)
		assert.Empty(t, idx.Search("webhook"))
	})

	t.Run("detail", func(t *testing.T) {
		d, err := idx.GetDetail("/brands/{brand_id}", "get")
		require.NoError(t, err)
		assert.Equal(t, "GetBrand", d.Operation)
		require.Len(t, d.Parameters, 1)
		assert.Equal(t, "path", d.Parameters[0].In)
		assert.Equal(t, "uuid", d.Parameters[0].Format)

		d, err = idx.GetDetail("/send", "POST")
		require.NoError(t, err)
		assert.Equal(t, "SendCampaign", d.Operation)

		_, err = idx.GetDetail("/brands/{brand_id}", "PUT")
		assert.Error(t, err)
		_, err = idx.GetDetail("/webhooks", "GET")
		assert.Error(t, err)

		d, err = idx.Operation("listsuppressions")
		require.NoError(t, err)
		assert.Equal(t, "/brands/{brand_id}/suppressions", d.Path)
		_, err = idx.Operation("ListWebhooks")
		assert.ErrorIs(t, err, ErrUnknownOperation)
	})
}

func TestStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	published, err := Default().Export(FormatYAML)
	require.NoError(t, err)
	path := filepath.Join(dir, "published.yaml")
	require.NoError(t, os.WriteFile(path, published, 0o600))

	s := NewStore(Default(), map[string]string{
		"published": path,
		"missing":   filepath.Join(dir, "missing.yaml"),
	})
	assert.Equal(t, []string{BuiltinSpec}, s.Names())

	s.LoadAll(ctx)
	assert.Equal(t, []string{BuiltinSpec, "published"}, s.Names())
	assert.Nil(t, s.GetIndex("missing"))

	assert.Len(t, s.Search("campaign", ""), 12)
	got := s.Search("campaign", "published")
	assert.Len(t, got, 6)
	for _, e := range got {
		assert.Equal(t, "published", e.Spec)
	}

	assert.NoError(t, s.Refresh(ctx, "published"))
	assert.Error(t, s.Refresh(ctx, BuiltinSpec))
	assert.Error(t, s.Refresh(ctx, "unknown"))

	errs := s.RefreshAll(ctx)
	require.Len(t, errs, 1)
	assert.Contains(t, errs, "missing")
}
