package partials

import (
	"github.com/bitlance/web/internal/view"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Flashes renders the one-shot success and error messages.
func Flashes(f view.FlashData) g.Node {
	if f.Empty() {
		return nil
	}
	return h.Div(
		h.ID("flash-messages"),
		h.Class("flash-container"),
		g.Map(f.Success, func(msg string) g.Node {
			return h.Div(h.Class("flash flash-success"), h.Role("status"), g.Text(msg))
		}),
		g.Map(f.Error, func(msg string) g.Node {
			return h.Div(h.Class("flash flash-error"), h.Role("alert"), g.Text(msg))
		}),
	)
}

// Notification renders inline error text under a form. Nothing is rendered
// for an empty message.
func Notification(message string) g.Node {
	return g.If(message != "",
		h.P(h.Class("notification-error text-red-500"), h.Role("alert"), g.Text(message)),
	)
}
