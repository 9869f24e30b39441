package middleware

import "github.com/gin-gonic/gin"

// SecurityHeaders 는 보안 헤더를 추가하는 미들웨어다.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}
