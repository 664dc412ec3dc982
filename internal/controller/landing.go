package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Placeholder landing page served from the backend while the frontend is
// rebuilt. Purely presentational; the API surface does not depend on it.
const landingHTML = `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>CodeAssess — Coding Assessments</title>
    <style>
      body { margin: 0; font-family: system-ui, sans-serif; color: #e2e8f0; background: #0b0b10; }
      .container { max-width: 720px; margin: 0 auto; padding: 48px 24px; }
      h1 { font-size: 40px; margin: 0 0 14px; }
      p { color: #94a3b8; font-size: 18px; }
      a { color: #7c3aed; font-weight: 700; text-decoration: none; margin-right: 16px; }
    </style>
  </head>
  <body>
    <div class="container">
      <h1>CodeAssess</h1>
      <p>Create coding tests, invite candidates, and record timed attempts and submissions over a simple JSON API.</p>
      <p>
        <a href="/health">API Health</a>
        <a href="/schema">Schema</a>
        <a href="/swagger/index.html">API Docs</a>
      </p>
    </div>
  </body>
</html>`

func (ctrl *Controller) RootHandler(c *gin.Context) {
	c.Redirect(http.StatusTemporaryRedirect, "/landing")
}

func (ctrl *Controller) LandingHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(landingHTML))
}
