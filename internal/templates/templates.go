// Package templates holds the HTML views rendered by the demo handlers.
package templates

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed *.html
var files embed.FS

// NewEngine returns a Fiber view engine over the embedded templates.
func NewEngine() *html.Engine {
	return html.NewFileSystem(http.FS(files), ".html")
}
