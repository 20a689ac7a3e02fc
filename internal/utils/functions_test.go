package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCookieString(t *testing.T) {
	cases := []struct {
		raw    string
		expect map[string]string
	}{
		{raw: "a=1; b=2", expect: map[string]string{"a": "1", "b": "2"}},
		{raw: "NID_SES=abc==; flag", expect: map[string]string{"NID_SES": "abc=="}},
		{raw: "", expect: map[string]string{}},
		{raw: " token=x=y ;", expect: map[string]string{"token": "x=y"}},
		{raw: "a = 1", expect: map[string]string{"a ": " 1"}},
	}
	for _, test := range cases {
		require.Equal(t, test.expect, ParseCookieString(test.raw), test.raw)
	}
}

func TestParseHeaderArgs(t *testing.T) {
	got := ParseHeaderArgs([]string{"Referer: https://cafe.naver.com", "broken", "X-A:b:c"})
	assert.Equal(t, map[string]string{"Referer": "https://cafe.naver.com", "X-A": "b:c"}, got)
}

func TestReadDownloadList(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "posts.yaml")
	content := `
- link: https://cafe.naver.com/realfarm/844033
  cookies: "a=1; b=2"
- link: https://cafe.naver.com/realfarm/1
  op: may.xlsx
  upload: s3://bucket/sheets/
- op: orphan.xlsx
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	entries, err := ReadDownloadList(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, DefaultOutputPath, entries[0].OutputPath)
	assert.Equal(t, "a=1; b=2", entries[0].Cookies)
	assert.Equal(t, "may.xlsx", entries[1].OutputPath)
	assert.Equal(t, "s3://bucket/sheets/", entries[1].Upload)

	_, err = ReadDownloadList(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestClean(t *testing.T) {
	dir := t.TempDir()
	part := TempPartPath(filepath.Join(dir, "sheet.xlsx"))
	require.NoError(t, os.MkdirAll(filepath.Dir(part), 0755))
	require.NoError(t, os.WriteFile(part, []byte("partial"), 0644))

	require.NoError(t, Clean(dir))
	_, err := os.Stat(filepath.Join(dir, TempDirName))
	assert.True(t, os.IsNotExist(err))

	// nothing to clean is fine
	require.NoError(t, Clean(dir))
}
