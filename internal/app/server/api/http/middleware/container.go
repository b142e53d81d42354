package middleware

import (
	"github.com/danielgtaylor/huma/v2"
)

// Container собирает мидлвари для очередной группы операций.
// Общие мидлвари (Shared) попадают в каждую группу первыми.
type Container struct {
	shared  huma.Middlewares
	pending huma.Middlewares
}

func NewContainer(shared ...func(huma.Context, func(huma.Context))) *Container {
	return &Container{shared: shared}
}

// Add добавляет мидлварь только в следующую группу.
func (mc *Container) Add(mw func(ctx huma.Context, next func(huma.Context))) {
	mc.pending = append(mc.pending, mw)
}

// Take возвращает общие мидлвари плюс добавленные через Add и сбрасывает последние.
func (mc *Container) Take() huma.Middlewares {
	out := make(huma.Middlewares, 0, len(mc.shared)+len(mc.pending))
	out = append(out, mc.shared...)
	out = append(out, mc.pending...)
	mc.pending = nil
	return out
}
