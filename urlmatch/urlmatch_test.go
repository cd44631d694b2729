package urlmatch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corrinfield/htmlward/urlmatch"
)

func TestClassifyHost(t *testing.T) {
	cases := map[string]urlmatch.HostKind{
		"":                  urlmatch.HostInvalid,
		"example.com":       urlmatch.HostDomain,
		"sub.example.co.uk": urlmatch.HostDomain,
		"-bad.com":          urlmatch.HostInvalid,
		"bad-.com":          urlmatch.HostInvalid,
		".com":              urlmatch.HostInvalid,
		"192.168.1.1":       urlmatch.HostIPv4,
		"::1":               urlmatch.HostIPv6,
		"[::1]":             urlmatch.HostIPv6,
		"2001:db8::1":       urlmatch.HostIPv6,
	}
	for host, want := range cases {
		assert.Equal(t, want, urlmatch.ClassifyHost(host), "host %q", host)
	}
}

func TestBuildAllowedURLRegexProtocolAndHost(t *testing.T) {
	re, err := urlmatch.BuildAllowedURLRegex([]string{"https"}, []string{"example.com"}, false)
	require.NoError(t, err)

	assert.True(t, re.MatchString("https://example.com"))
	assert.True(t, re.MatchString("https://example.com/path?q=1"))
	assert.True(t, re.MatchString("HTTPS://EXAMPLE.COM"))
	assert.False(t, re.MatchString("http://example.com"))
	assert.False(t, re.MatchString("https://evil.com"))
	assert.False(t, re.MatchString("javascript:alert(1)"))
}

func TestBuildAllowedURLRegexAllowsRelative(t *testing.T) {
	re, err := urlmatch.BuildAllowedURLRegex([]string{"https"}, []string{"example.com"}, true)
	require.NoError(t, err)

	assert.True(t, re.MatchString("/path/to/page"))
	assert.True(t, re.MatchString("https://example.com"))
	assert.False(t, re.MatchString("//evil.com"))
}

func TestBuildAllowedURLRegexIPv6AlwaysBracketed(t *testing.T) {
	re, err := urlmatch.BuildAllowedURLRegex([]string{"https"}, []string{"::1"}, false)
	require.NoError(t, err)

	assert.True(t, re.MatchString("https://[::1]/"))
	assert.False(t, re.MatchString("https://::1/"))
}

func TestBuildAllowedURLRegexRejectsInvalidProtocol(t *testing.T) {
	_, err := urlmatch.BuildAllowedURLRegex([]string{"HT TP"}, nil, false)
	assert.Error(t, err)
}

func TestBuildAllowedURLRegexRejectsInvalidHost(t *testing.T) {
	_, err := urlmatch.BuildAllowedURLRegex(nil, []string{"not a host!"}, false)
	assert.Error(t, err)
}
