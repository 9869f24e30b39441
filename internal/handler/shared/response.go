package shared

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bfhl-server/internal/httperror"
)

// Envelope 는 성공 응답 본문이다. data 는 0 이나 빈 배열도 그대로 싣는다.
type Envelope struct {
	Success    bool   `json:"success"`
	Identifier string `json:"identifier"`
	Data       any    `json:"data"`
}

// WriteData 는 성공 envelope 를 작성한다.
func WriteData(c *gin.Context, identifier string, data any) {
	if c == nil {
		return
	}
	c.JSON(http.StatusOK, Envelope{
		Success:    true,
		Identifier: identifier,
		Data:       data,
	})
}

// WriteError 는 오류 envelope 를 작성한다.
func WriteError(c *gin.Context, identifier string, err error) {
	if c == nil {
		return
	}
	status, payload := httperror.Response(err, identifier)
	c.JSON(status, payload)
}
