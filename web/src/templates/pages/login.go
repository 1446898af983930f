package pages

import (
	"github.com/bitlance/web/web/src/templates/partials"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Login renders the sign-in form. It is a plain form so Enter in either
// field submits it.
func Login(data LoginData) g.Node {
	return h.Main(
		h.Class("login-page"),
		h.Div(
			h.Class("login-card"),
			h.H1(h.Class("login-title"), g.Text("WELCOME")),
			h.P(h.Class("login-subtitle"), g.Text("We are glad to see you back with us!")),
			h.Form(
				h.ID("login-form"),
				h.Method("post"),
				h.Action("/login"),
				h.Label(h.For("email"), g.Text("Email")),
				h.Input(
					h.ID("email"),
					h.Type("email"),
					h.Name("email"),
					h.Placeholder("Email"),
					h.Value(data.Email),
					g.Attr("autocomplete", "username"),
				),
				h.Label(h.For("password"), g.Text("Password")),
				h.Input(
					h.ID("password"),
					h.Type("password"),
					h.Name("password"),
					h.Placeholder("Password"),
					g.Attr("autocomplete", "current-password"),
				),
				partials.Notification(data.Error),
				h.Button(h.Type("submit"), h.Class("btn btn-primary"), g.Text("LOGIN")),
			),
		),
	)
}
