package web

import (
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/btechwala999/Ignitia-client/internal/api"
	"github.com/btechwala999/Ignitia-client/internal/session"
)

type handlers struct {
	ctrl   *session.Controller
	client *api.Client
}

var templates = template.Must(template.New("").Parse(`
{{define "login"}}<!doctype html>
<title>Ignitia - Sign in</title>
<h1>Sign in</h1>
{{if .Error}}<p role="alert">{{.Error}}</p>{{end}}
<form method="post" action="/login">
  <input type="hidden" name="from" value="{{.From}}">
  <label>Email <input name="email" type="email" required></label>
  <label>Password <input name="password" type="password" required></label>
  <button type="submit">Sign in</button>
</form>
{{end}}

{{define "dashboard"}}<!doctype html>
<title>Ignitia - Dashboard</title>
{{if .Denied}}<p role="alert">{{.Denied}}</p>{{end}}
<h1>Welcome{{if .User}}, {{.User.Name}}{{end}}</h1>
{{if .User}}<p>{{.User.Email}} ({{.User.Role}})</p>{{end}}
<h2>Your papers</h2>
<ul>{{range .Papers}}<li>{{.Title}} &mdash; {{.Subject}}, {{.TotalMarks}} marks</li>{{else}}<li>No papers yet.</li>{{end}}</ul>
<form method="post" action="/logout"><button type="submit">Sign out</button></form>
{{end}}

{{define "papers"}}<!doctype html>
<title>Ignitia - Papers</title>
<h1>Question papers</h1>
<ul>{{range .Papers}}<li>{{.Title}} ({{len .Questions}} questions) &mdash; <a href="{{.ExportURL}}">export</a></li>{{else}}<li>No papers yet.</li>{{end}}</ul>
{{end}}
`))

func (h *handlers) loginForm(c *gin.Context) {
	if h.ctrl.State().Authenticated {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "login", gin.H{"From": c.Query("from")})
}

func (h *handlers) login(c *gin.Context) {
	from := c.PostForm("from")
	err := h.ctrl.Login(c.Request.Context(), c.PostForm("email"), c.PostForm("password"))
	if err != nil {
		// Inline error near the form, backend message verbatim.
		c.HTML(http.StatusUnauthorized, "login", gin.H{
			"From":  from,
			"Error": api.Message(err),
		})
		return
	}

	// Return to the page the guard recorded, on-site paths only.
	if !strings.HasPrefix(from, "/") || strings.HasPrefix(from, "//") {
		from = "/dashboard"
	}
	c.Redirect(http.StatusSeeOther, from)
}

func (h *handlers) logout(c *gin.Context) {
	h.ctrl.Logout()
	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *handlers) dashboard(c *gin.Context) {
	st := h.ctrl.State()

	papers, err := h.client.ListQuestionPapers(c.Request.Context())
	if err != nil {
		if h.rejected(c, err) {
			return
		}
		papers = nil
	}

	c.HTML(http.StatusOK, "dashboard", gin.H{
		"User":   st.User,
		"Papers": papers,
		"Denied": c.Query("denied"),
	})
}

type paperView struct {
	api.QuestionPaper
	ExportURL string
}

func (h *handlers) papers(c *gin.Context) {
	papers, err := h.client.ListQuestionPapers(c.Request.Context())
	if err != nil {
		if h.rejected(c, err) {
			return
		}
		c.String(http.StatusBadGateway, "backend unavailable: %s", api.Message(err))
		return
	}

	views := make([]paperView, 0, len(papers))
	for _, p := range papers {
		views = append(views, paperView{QuestionPaper: p, ExportURL: h.client.ExportURL(p.ID)})
	}

	c.HTML(http.StatusOK, "papers", gin.H{"Papers": views})
}

// rejected handles a token the backend stopped accepting mid-session:
// discard it and re-prompt, preserving the requested location.
func (h *handlers) rejected(c *gin.Context, err error) bool {
	if !api.IsUnauthorized(err) {
		return false
	}
	h.ctrl.Logout()
	c.Redirect(http.StatusFound, "/login?from="+url.QueryEscape(c.Request.URL.RequestURI()))
	return true
}
