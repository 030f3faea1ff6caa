package service

import (
	"net/http"
	"strings"
	"testing"

	// Packages
	assert "github.com/stretchr/testify/assert"
)

func Test_Unmarshal_001(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		contentType string
		body        string
		data        any
		err         bool
	}{
		{"", "", nil, false},
		{"application/json", "  \n", nil, false},
		{"application/json", `{"a":1}`, map[string]any{"a": float64(1)}, false},
		{"application/json; charset=utf-8", `[1,2]`, []any{float64(1), float64(2)}, false},
		{"application/problem+json", `{"title":"x"}`, map[string]any{"title": "x"}, false},
		{"", `"text"`, "text", false},
		{"text/plain", "hello", "hello", false},
		{"application/json", "{bad", nil, true},
		{"", "not json", nil, true},
	}

	for _, test := range tests {
		var r responseUnmarshaler
		header := make(http.Header)
		if test.contentType != "" {
			header.Set("Content-Type", test.contentType)
		}
		assert.NoError(r.Unmarshal(header, strings.NewReader(test.body)))
		data, err := r.data()
		if test.err {
			assert.Error(err, test.body)
		} else {
			assert.NoError(err, test.body)
			assert.Equal(test.data, data, test.body)
		}
	}
}

func Test_Unmarshal_002(t *testing.T) {
	assert := assert.New(t)

	var r responseUnmarshaler
	assert.NoError(r.Unmarshal(nil, nil))
	data, err := r.data()
	assert.NoError(err)
	assert.Nil(data)
}

func Test_Opts_001(t *testing.T) {
	assert := assert.New(t)

	t.Run("NoQuery", func(t *testing.T) {
		o, err := applyOpts(nil)
		assert.NoError(err)
		endpoint, err := o.endpoint("http://api.example.io/e1")
		assert.NoError(err)
		assert.Equal("http://api.example.io/e1", endpoint)
	})

	t.Run("NoQueryKeepsTarget", func(t *testing.T) {
		o, err := applyOpts(nil)
		assert.NoError(err)
		endpoint, err := o.endpoint("http://api.example.io/e1?b=2&a=1&flag&q=a%20b")
		assert.NoError(err)
		assert.Equal("http://api.example.io/e1?b=2&a=1&flag&q=a%20b", endpoint)
	})

	t.Run("Append", func(t *testing.T) {
		o, err := applyOpts([]Opt{WithQuery(map[string]string{"b": "2", "c": "x y"})})
		assert.NoError(err)
		endpoint, err := o.endpoint("http://api.example.io/e1?c=1&flag")
		assert.NoError(err)
		assert.Equal("http://api.example.io/e1?c=1&flag&b=2&c=x+y", endpoint)
	})

	t.Run("Sorted", func(t *testing.T) {
		o, err := applyOpts([]Opt{WithQuery(map[string]string{"b": "2", "a": "1"})})
		assert.NoError(err)
		endpoint, err := o.endpoint("http://api.example.io/e1")
		assert.NoError(err)
		assert.Equal("http://api.example.io/e1?a=1&b=2", endpoint)
	})

	t.Run("BadURL", func(t *testing.T) {
		o, err := applyOpts(nil)
		assert.NoError(err)
		_, err = o.endpoint("http://[::1")
		assert.Error(err)
	})
}
