package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Home is the landing page and the target of Sign Out.
func Home(data HomeData) g.Node {
	return h.Main(
		h.Class("container mx-auto p-8"),
		h.H1(h.Class("text-4xl font-extrabold mb-4"), g.Text("Bitlance")),
		h.P(
			h.Class("mb-6 leading-relaxed"),
			g.Text("A marketplace connecting clients with freelancers."),
		),
		g.If(data.SignedIn,
			h.A(h.Href("/dashboard"), h.Class("btn btn-primary"), g.Text("Go to Dashboard")),
		),
		g.If(!data.SignedIn,
			h.A(h.Href("/login"), h.Class("btn btn-primary"), g.Text("Sign In")),
		),
	)
}
