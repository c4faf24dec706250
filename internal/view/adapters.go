package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// --- GOMPONENTS -> TEMPL ADAPTER ---

// GomponentToTemplAdapter wraps a gomponents.Node to satisfy the
// templ.Component interface, so gomponents content can be rendered inside
// templ layouts.
type GomponentToTemplAdapter struct {
	Node gomponents.Node
}

// Render implements templ.Component by delegating to the underlying node.
func (a *GomponentToTemplAdapter) Render(ctx context.Context, w io.Writer) error {
	return a.Node.Render(w)
}

// AdaptGomponentToTempl converts a gomponents Node into a templ.Component.
func AdaptGomponentToTempl(node gomponents.Node) templ.Component {
	return &GomponentToTemplAdapter{Node: node}
}

// --- TEMPL -> GOMPONENTS ADAPTER ---

// TemplToGomponentAdapter wraps a templ.Component to satisfy the
// gomponents.Node interface, so a templ component can be embedded in a pure
// gomponents view.
type TemplToGomponentAdapter struct {
	Component templ.Component
}

// Render implements gomponents.Node. Gomponents' Render method does not
// carry a context, so the templ component is rendered with
// context.Background().
func (a *TemplToGomponentAdapter) Render(w io.Writer) error {
	return a.Component.Render(context.Background(), w)
}

// AdaptTemplToGomponent converts a templ Component into a gomponents Node.
func AdaptTemplToGomponent(component templ.Component) gomponents.Node {
	return &TemplToGomponentAdapter{Component: component}
}
