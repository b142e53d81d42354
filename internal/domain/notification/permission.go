package notification

import (
	"context"
	"os"

	"golang.org/x/term"
)

// Permissioner - внешняя возможность показывать уведомления пользователю.
type Permissioner interface {
	RequestPermission(ctx context.Context) (bool, error)
}

// PermissionFunc позволяет использовать функцию как Permissioner.
type PermissionFunc func(ctx context.Context) (bool, error)

func (f PermissionFunc) RequestPermission(ctx context.Context) (bool, error) {
	return f(ctx)
}

// TerminalPermissioner разрешает уведомления, если вывод идет в интерактивный терминал.
type TerminalPermissioner struct {
	out *os.File
}

func NewTerminalPermissioner(out *os.File) *TerminalPermissioner {
	return &TerminalPermissioner{out: out}
}

func (p *TerminalPermissioner) RequestPermission(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if p.out == nil {
		return false, nil
	}
	return term.IsTerminal(int(p.out.Fd())), nil
}
