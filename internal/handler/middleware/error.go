package middleware

import (
	"log/slog"
	"net/http"

	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLinesLogged = 12

// ErrorHandler writes the response for handlers that recorded a public error
// without writing a body, and logs the cause of every 5xx with its stack.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		var public *httperr.Response
		for i := len(c.Errors) - 1; i >= 0; i-- {
			e := c.Errors[i]
			if !e.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := e.Meta.(httperr.Response); ok {
				if resp.Status >= http.StatusInternalServerError {
					logger.Error("request failed",
						"request_id", GetRequestID(c),
						"status", resp.Status,
						"error", e.Err.Error(),
						"stack", errs.ExtractStackLines(e.Err, stackLinesLogged))
				}
				if public == nil {
					public = &resp
				}
			}
		}

		if c.Writer.Written() {
			return
		}
		if public != nil {
			c.JSON(public.Status, public)
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
	}
}

func CustomRecovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("recovered from panic",
					"request_id", GetRequestID(c),
					"path", c.Request.URL.Path,
					"panic", rec)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
