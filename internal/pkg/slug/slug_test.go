package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"My First Project!", "my-first-project"},
		{"  Hello   World  ", "hello-world"},
		{"Crème brûlée", "creme-brulee"},
		{"already-a-slug", "already-a-slug"},
		{"multiple---hyphens -- and spaces", "multiple-hyphens-and-spaces"},
		{"snake_case_name", "snake_case_name"},
		{"_-trim me-_", "trim-me"},
		{"ﬁle №5", "file-no5"},
		{"日本語", ""},
		{"", ""},
		{"!!!", ""},
		{"Go 1.24 release", "go-124-release"},
		{"hello.world", "helloworld"},
		{"v1.2/api", "v12api"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, Make(tc.in))
		})
	}
}

func TestMake_Idempotent(t *testing.T) {
	inputs := []string{
		"My First Project!",
		"a-_-b",
		"__x__",
		"Ünïcödé  and\ttabs",
		"-leading and trailing-",
		"",
	}
	for _, in := range inputs {
		once := Make(in)
		assert.Equal(t, once, Make(once), "input %q", in)
	}
}
