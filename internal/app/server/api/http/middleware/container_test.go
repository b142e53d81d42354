package middleware

import (
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
)

func TestContainer_Take(t *testing.T) {
	var calls []string
	mw := func(name string) func(huma.Context, func(huma.Context)) {
		return func(ctx huma.Context, next func(huma.Context)) {
			calls = append(calls, name)
			next(ctx)
		}
	}

	c := NewContainer(mw("log"))
	c.Add(mw("extra"))

	first := c.Take()
	assert.Len(t, first, 2)

	second := c.Take()
	assert.Len(t, second, 1)

	for _, m := range first {
		m(nil, func(huma.Context) {})
	}
	assert.Equal(t, []string{"log", "extra"}, calls)
}
