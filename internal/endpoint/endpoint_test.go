package endpoint

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want Endpoint
	}{
		{
			name: "full url",
			url:  "https://cmon.example.com:9501/v2",
			want: Endpoint{Protocol: "https", Host: "cmon.example.com", Port: 9501, Path: "/v2"},
		},
		{
			name: "host and port",
			url:  "localhost:9555",
			want: Endpoint{Host: "localhost", Port: 9555},
		},
		{
			name: "scheme and host",
			url:  "http://10.0.0.5",
			want: Endpoint{Protocol: "http", Host: "10.0.0.5"},
		},
		{
			name: "bare host",
			url:  "test.host",
			want: Endpoint{Host: "test.host"},
		},
		{
			name: "host with path but no port keeps everything as host",
			url:  "test.host/v2",
			want: Endpoint{Host: "test.host/v2"},
		},
		{
			name: "non numeric port keeps everything as host",
			url:  "test.host:rpc",
			want: Endpoint{Host: "test.host:rpc"},
		},
		{
			name: "bracketed ipv6",
			url:  "https://[fe80::1]:9501",
			want: Endpoint{Protocol: "https", Host: "[fe80::1]", Port: 9501},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.url))
		})
	}
}

func TestSetIgnoresDegenerateInput(t *testing.T) {
	for _, url := range []string{"http://", "https://", ""} {
		t.Run(fmt.Sprintf("%q", url), func(t *testing.T) {
			e := Resolve("https://cmon:9501")
			before := e

			assert.False(t, e.Set(url))
			assert.Equal(t, before, e)
		})
	}
}

func TestSetReplacesPreviousEndpoint(t *testing.T) {
	e := Resolve("https://first:1000/path")

	assert.True(t, e.Set("second"))
	assert.Equal(t, Endpoint{Host: "second"}, e)
}

func TestDefaultsAreLazy(t *testing.T) {
	var e Endpoint

	assert.True(t, e.IsZero())
	assert.Equal(t, "https", e.EffectiveProtocol())
	assert.Equal(t, "localhost", e.EffectiveHost())
	assert.Equal(t, 9501, e.EffectivePort())
	assert.Equal(t, "https://localhost:9501", e.BaseURL())

	e = Resolve("test.host:42")
	assert.Equal(t, "", e.Protocol)
	assert.Equal(t, "https://test.host:42", e.BaseURL())
}

func TestRoundTrip(t *testing.T) {
	schemes := []string{"http", "https", "cmon+rpc"}
	hosts := []string{"localhost", "10.0.0.1", "cmon.example.com", "[::1]"}
	ports := []int{1, 9500, 9501, 65535}
	paths := []string{"", "/", "/v2", "/v2/clusters"}

	for _, scheme := range schemes {
		for _, host := range hosts {
			for _, port := range ports {
				for _, path := range paths {
					url := fmt.Sprintf("%s://%s:%d%s", scheme, host, port, path)
					e := Resolve(url)

					assert.Equal(t, Endpoint{Protocol: scheme, Host: host, Port: port, Path: path}, e, url)
					assert.Equal(t, url, e.String())
					assert.Equal(t, e, Resolve(e.String()), url)
				}
			}
		}
	}
}

func TestRoundTripPartialEndpoints(t *testing.T) {
	for _, url := range []string{"localhost", "localhost:9555", "http://localhost", "ftp://"} {
		e := Resolve(url)
		assert.Equal(t, e, Resolve(e.String()), url)
	}
}
