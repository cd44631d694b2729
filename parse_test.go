package htmlward

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSet(t *testing.T) {
	cases := []struct {
		name  string
		input string
		delim string
		want  []string
	}{
		{"empty", "", " ", nil},
		{"blank", "   ", " ", nil},
		{"simple", "a b c", " ", []string{"a", "b", "c"}},
		{"dedupe preserves first occurrence", "a b a c b", " ", []string{"a", "b", "c"}},
		{"trims tokens and drops empties", " a  b ", " ", []string{"a", "b"}},
		{"drops empty tokens", "a,,b", ",", []string{"a", "b"}},
		{"custom delimiter", "a|b|a", "|", []string{"a", "b"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, parseSet(c.input, c.delim))
		})
	}
}

func TestParseRecord(t *testing.T) {
	t.Run("basic pairs", func(t *testing.T) {
		got := parseRecord("a:1;b:2", ";", ":")
		assert.Equal(t, []kvPair{{Key: "a", Val: "1"}, {Key: "b", Val: "2"}}, got)
	})

	t.Run("rejects tokens without exactly two parts", func(t *testing.T) {
		got := parseRecord("a:1:x;b:2;bare", ";", ":")
		assert.Equal(t, []kvPair{{Key: "b", Val: "2"}}, got)
	})

	t.Run("rejects empty key or value", func(t *testing.T) {
		got := parseRecord(":1;a:;b:2", ";", ":")
		assert.Equal(t, []kvPair{{Key: "b", Val: "2"}}, got)
	})

	t.Run("preserves duplicate keys", func(t *testing.T) {
		got := parseRecord("a:1;a:2", ";", ":")
		assert.Equal(t, []kvPair{{Key: "a", Val: "1"}, {Key: "a", Val: "2"}}, got)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		got := parseRecord(" a : 1 ; b : 2 ", ";", ":")
		assert.Equal(t, []kvPair{{Key: "a", Val: "1"}, {Key: "b", Val: "2"}}, got)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, parseRecord("", ";", ":"))
	})
}
