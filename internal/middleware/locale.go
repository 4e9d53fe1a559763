package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"github.com/moneta-svc/moneta/internal/platform/locale"
)

const localeCtxKey = contextKey("locale")

// LocaleMiddleware creates a Gin middleware handler that resolves the
// request's locale and stores it in the request context. An explicit
// ?locale= query parameter wins over the Accept-Language header; both fall
// back to defaultTag. A malformed ?locale= is a client error.
func LocaleMiddleware(defaultTag language.Tag) gin.HandlerFunc {
	return func(c *gin.Context) {
		tag := defaultTag

		if raw := c.Query("locale"); raw != "" {
			parsed, err := locale.Parse(raw)
			if err != nil {
				GetLoggerFromCtx(c.Request.Context()).Warn("Malformed locale parameter",
					slog.String("locale", raw))
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid locale: " + raw})
				return
			}
			tag = parsed
		} else if header := c.GetHeader("Accept-Language"); header != "" {
			tag = locale.ParseAcceptLanguage(header, defaultTag)
		}

		ctx := context.WithValue(c.Request.Context(), localeCtxKey, tag)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetLocaleFromCtx retrieves the request's locale from the context. It
// returns language.Und when no locale middleware ran, which downstream code
// treats as invariant conventions.
func GetLocaleFromCtx(ctx context.Context) language.Tag {
	if tag, ok := ctx.Value(localeCtxKey).(language.Tag); ok {
		return tag
	}
	return language.Und
}
