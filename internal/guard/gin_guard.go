package guard

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/btechwala999/Ignitia-client/internal/session"
)

// GinRequire adapts Decide to a gin middleware for the local dashboard.
// Denials become redirects so a successful login can return the user to
// the page they asked for.
func GinRequire(ctrl *session.Controller, required ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		d := Decide(ctrl.State(), required, c.Request.URL.RequestURI())

		switch d.Outcome {
		case Wait:
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"status": "starting",
			})
		case RedirectLogin:
			c.Redirect(http.StatusFound, "/login?from="+url.QueryEscape(d.From))
			c.Abort()
		case RedirectDenied:
			c.Redirect(http.StatusSeeOther, "/dashboard?denied="+url.QueryEscape(d.Message))
			c.Abort()
		default:
			c.Next()
		}
	}
}
