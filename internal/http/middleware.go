package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"glutivia/internal/service"
)

const (
	ctxSession       = "customer_session"
	adminSessionName = "glutivia_admin"
	adminFlag        = "glutivia_admin_auth"
)

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		zap.S().Infow("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		)
	}
}

// token берётся из Authorization: Bearer или из cookie сессии
func (s *Server) token(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if v, err := c.Cookie(s.opts.CookieName); err == nil {
		return v
	}
	return ""
}

func (s *Server) requireCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := s.svc.Auth.Resolve(c, s.token(c))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.Set(ctxSession, sess)
		c.Next()
	}
}

// optionalCustomer подставляет сессию, если она есть, но не требует её
func (s *Server) optionalCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tok := s.token(c); tok != "" {
			if sess, err := s.svc.Auth.Resolve(c, tok); err == nil {
				c.Set(ctxSession, sess)
			}
		}
		c.Next()
	}
}

func session(c *gin.Context) *service.Session {
	v, ok := c.Get(ctxSession)
	if !ok {
		return nil
	}
	sess, _ := v.(*service.Session)
	return sess
}

func (s *Server) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := s.admin.Get(c.Request, adminSessionName)
		if err != nil || sess.Values[adminFlag] != true {
			abortWithError(c, service.ErrUnauthorized)
			return
		}
		c.Next()
	}
}

func abortWithError(c *gin.Context, err error) {
	status, body := errorBody(err)
	c.AbortWithStatusJSON(status, body)
}

func writeError(c *gin.Context, err error) {
	status, body := errorBody(err)
	if status == http.StatusInternalServerError {
		zap.S().Errorw("request failed", "path", c.FullPath(), "error", err)
	}
	c.JSON(status, body)
}
