package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextViewerSession is the gin context key carrying the opaque
// spectator session identifier.
const ContextViewerSession = "viewer_session"

const viewerSessionCookie = "viewer_session"

// cookie lifetime matches the redis seen-set TTL
const viewerSessionMaxAge = 24 * 60 * 60

// EnsureViewerSession guarantees every spectator request carries a stable
// opaque session identifier, issuing a cookie when absent.
func EnsureViewerSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := c.Cookie(viewerSessionCookie)
		if err != nil || session == "" {
			session = uuid.NewString()
			c.SetCookie(viewerSessionCookie, session, viewerSessionMaxAge, "/", "", false, true)
		}
		c.Set(ContextViewerSession, session)
		c.Next()
	}
}

// ViewerSession reads the spectator session identifier from the context.
func ViewerSession(c *gin.Context) string {
	return c.GetString(ContextViewerSession)
}
