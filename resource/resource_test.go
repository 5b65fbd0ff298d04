package resource_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xalexb/hjarta-conf/resource"
)

func TestApplyRelativePath(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		base     string
		location string
		want     string
	}{
		{"sibling", "a/b.cfg", "c.cfg", "a/c.cfg"},
		{"nested", "a/b.cfg", "sub/c.cfg", "a/sub/c.cfg"},
		{"url base", "file:///etc/app/main.xml", "extra.xml", "file:///etc/app/extra.xml"},
		{"no directory", "b.cfg", "c.cfg", "c.cfg"},
		{"leading slash trimmed", "a/b.cfg", "/c.cfg", "a/c.cfg"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, resource.ApplyRelativePath(tc.base, tc.location))
		})
	}
}

func TestSet_Deduplicates(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"a.xml": &fstest.MapFile{Data: []byte("<components/>")},
		"b.xml": &fstest.MapFile{Data: []byte("<components/>")},
	}

	set := resource.NewSet()

	first := resource.NewFS(fsys, "a.xml")
	second := resource.NewFS(fsys, "b.xml")
	duplicate := resource.NewFS(fsys, "a.xml")

	assert.True(t, set.Add(first))
	assert.True(t, set.Add(second))
	assert.False(t, set.Add(duplicate), "equal key is not re-added")

	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains(duplicate))
	assert.True(t, set.ContainsKey(first.Key()))

	items := set.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "a.xml", items[0].Name(), "insertion order preserved")
	assert.Equal(t, "b.xml", items[1].Name())
}

func TestFSResource(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"conf/app.xml":   &fstest.MapFile{Data: []byte("<components/>")},
		"conf/extra.xml": &fstest.MapFile{Data: []byte("<components/>")},
	}

	res := resource.NewFS(fsys, "conf/app.xml")

	assert.True(t, res.Exists())
	assert.Equal(t, "conf/app.xml", res.Name())
	assert.Equal(t, "fs:conf/app.xml", res.URL())

	rc, err := res.Open()
	require.NoError(t, err)

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "<components/>", string(data))

	sibling, err := res.Relative("extra.xml")
	require.NoError(t, err)
	assert.Equal(t, "conf/extra.xml", sibling.Name())
	assert.True(t, sibling.Exists())

	missing, err := res.Relative("nope.xml")
	require.NoError(t, err)
	assert.False(t, missing.Exists())
}

func TestFileResource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "app.xml")
	require.NoError(t, os.WriteFile(path, []byte("<components/>"), 0o600))

	res := resource.NewFile(path)

	assert.True(t, res.Exists())
	assert.Equal(t, res.URL(), res.Key())

	rc, err := res.Open()
	require.NoError(t, err)

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "<components/>", string(data))

	sibling, err := res.Relative("extra.xml")
	require.NoError(t, err)
	assert.False(t, sibling.Exists())
	assert.Equal(t, filepath.Join(dir, "extra.xml"), sibling.Name())

	assert.False(t, resource.NewFile(dir).Exists(), "directories are not loadable resources")
}
