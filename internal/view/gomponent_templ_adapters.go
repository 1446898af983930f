package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// gomponentComponent lets a gomponents.Node be used wherever a
// templ.Component is expected.
type gomponentComponent struct {
	node gomponents.Node
}

func (a gomponentComponent) Render(ctx context.Context, w io.Writer) error {
	return a.node.Render(w)
}

// AdaptGomponentToTempl converts a gomponents Node into a templ.Component.
func AdaptGomponentToTempl(node gomponents.Node) templ.Component {
	return gomponentComponent{node: node}
}

// templNode lets a templ.Component be embedded in a gomponents tree. The
// context is captured when the adapter is built, because gomponents' Render
// does not receive one.
type templNode struct {
	ctx       context.Context
	component templ.Component
}

func (a templNode) Render(w io.Writer) error {
	return a.component.Render(a.ctx, w)
}

// AdaptTemplToGomponent converts a templ.Component into a gomponents Node that
// renders with ctx.
func AdaptTemplToGomponent(ctx context.Context, component templ.Component) gomponents.Node {
	if ctx == nil {
		ctx = context.Background()
	}
	return templNode{ctx: ctx, component: component}
}
