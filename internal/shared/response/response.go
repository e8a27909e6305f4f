package response

import (
	"github.com/gin-gonic/gin"
)

// ListEnvelope is the wire shape of every list endpoint.
type ListEnvelope struct {
	Data       any `json:"data"`
	TotalPages int `json:"totalPages"`
	Page       int `json:"currentPage"`
}

// TotalPages rounds count/perPage up, with a floor of one page so an empty
// result still renders as "page 1 of 1".
func TotalPages(count int64, perPage int) int {
	if perPage <= 0 {
		return 1
	}
	pages := int((count + int64(perPage) - 1) / int64(perPage))
	if pages < 1 {
		pages = 1
	}
	return pages
}

func List(c *gin.Context, status int, data any, totalPages, page int) {
	c.JSON(status, ListEnvelope{
		Data:       data,
		TotalPages: totalPages,
		Page:       page,
	})
}

func Success(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"data": data})
}

// Error writes the flat error shape the client renders. Codes and causes stay
// in the server logs.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
