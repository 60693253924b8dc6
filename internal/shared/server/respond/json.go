package respond

import "github.com/gin-gonic/gin"

// JSON writes a JSON response with the given status.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// HTML writes a complete HTML document.
func HTML(c *gin.Context, status int, document []byte) {
	c.Data(status, "text/html", document)
}
