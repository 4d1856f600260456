package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const indexHTML = `<!DOCTYPE html><html><head><title>Welcome.</title></head><body><h1>Welcome!</h1><p>This is a simple HTML welcome page.</p></body></html>`

// Greeting serves the unauthenticated static landing page.
func Greeting(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}
