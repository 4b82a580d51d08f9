package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const successPage = `<!doctype html>
<html lang="da"><head><meta charset="utf-8"><title>SubTrack</title></head>
<body><h1>Bank forbundet</h1><p>Du kan lukke dette vindue og gå tilbage til SubTrack.</p></body></html>`

const failurePage = `<!doctype html>
<html lang="da"><head><meta charset="utf-8"><title>SubTrack</title></head>
<body><h1>Forbindelsen mislykkedes</h1><p>Luk vinduet og prøv igen fra SubTrack.</p></body></html>`

func setupRouter(r *gin.Engine, results chan<- CallbackResult) {
	r.HandleMethodNotAllowed = true

	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	r.GET("/callback", func(c *gin.Context) {
		code := strings.TrimSpace(c.Query("code"))
		bankErr := strings.TrimSpace(c.Query("error"))

		if code == "" && bankErr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing code"})
			return
		}

		res := CallbackResult{Code: code, Err: bankErr}
		if desc := strings.TrimSpace(c.Query("error_description")); bankErr != "" && desc != "" {
			res.Err = bankErr + ": " + desc
		}

		// only the first redirect counts; the bank may retry the page
		select {
		case results <- res:
		default:
		}

		if bankErr != "" {
			c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(failurePage))
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(successPage))
	})

	r.OPTIONS("/callback", func(c *gin.Context) {
		c.Writer.Header().Set("Allow", "GET,OPTIONS")
		c.Status(http.StatusNoContent)
	})
}
