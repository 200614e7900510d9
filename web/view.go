// file: web/view.go

package web

// NavLink is one entry of the console menu.
type NavLink struct {
	Path string `json:"path"`
	Text string `json:"text"`
}

// View is the data every page template receives. Nav is empty on pages
// shown outside a session, which hides the menu.
type View struct {
	Title    string
	UserName string
	Nav      []NavLink
	Flash    string
	Errors   []string
	Data     any
}

// ErrorData is the Data of error.html.
type ErrorData struct {
	Status  int
	Message string
}

// LoginData is the Data of login.html.
type LoginData struct {
	Email string
}
