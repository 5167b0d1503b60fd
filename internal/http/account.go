package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"glutivia/internal/checkout"
	"glutivia/internal/domain"
	"glutivia/internal/service"
)

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// profileResp профиль без хеша пароля
type profileResp struct {
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Plan  domain.Plan `json:"plan"`
}

type sessionResp struct {
	Token string      `json:"token"`
	User  profileResp `json:"user"`
}

func profileOf(u domain.User) profileResp {
	return profileResp{Email: u.Email, Name: u.Name, Plan: u.Plan}
}

func (s *Server) startSession(c *gin.Context, sess *service.Session) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.opts.CookieName, sess.Token, 0, "/", "", s.opts.SecureCookie, true)
	c.JSON(http.StatusOK, sessionResp{Token: sess.Token, User: profileOf(sess.User)})
}

// @Summary Customer login
// @Description Any email and password are accepted; the display name is derived from the email.
// @Tags auth
// @Accept json
// @Produce json
// @Param input body loginReq true "Credentials"
// @Success 200 {object} sessionResp
// @Failure 400 {object} map[string]string
// @Router /auth/login [post]
func (s *Server) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	sess, err := s.svc.Auth.Login(c, req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	s.startSession(c, sess)
}

// @Summary Customer registration
// @Tags auth
// @Accept json
// @Produce json
// @Param input body registerReq true "Account"
// @Success 200 {object} sessionResp
// @Failure 400 {object} map[string]string
// @Router /auth/register [post]
func (s *Server) register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	sess, err := s.svc.Auth.Register(c, req.Name, req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	s.startSession(c, sess)
}

// @Summary Customer logout
// @Tags auth
// @Success 204
// @Router /auth/logout [post]
func (s *Server) logout(c *gin.Context) {
	tok := s.token(c)
	if err := s.svc.Auth.Logout(c, tok); err != nil {
		writeError(c, err)
		return
	}
	s.svc.Checkout.Forget(tok)
	c.SetCookie(s.opts.CookieName, "", -1, "/", "", s.opts.SecureCookie, true)
	c.Status(http.StatusNoContent)
}

// @Summary Current customer profile
// @Tags profile
// @Produce json
// @Security CustomerToken
// @Success 200 {object} profileResp
// @Failure 401 {object} map[string]string
// @Router /profile [get]
func (s *Server) getProfile(c *gin.Context) {
	c.JSON(http.StatusOK, profileOf(session(c).User))
}

type passwordReq struct {
	Current string `json:"currentPassword"`
	New     string `json:"newPassword"`
	Confirm string `json:"confirmPassword"`
}

// @Summary Change password
// @Tags profile
// @Accept json
// @Security CustomerToken
// @Param input body passwordReq true "Passwords"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /profile/password [post]
func (s *Server) changePassword(c *gin.Context) {
	var req passwordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if err := s.svc.Auth.ChangePassword(c, session(c), req.Current, req.New, req.Confirm); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type planReq struct {
	Plan domain.Plan       `json:"plan" binding:"required"`
	Card checkout.CardData `json:"card"`
}

// @Summary Activate subscription plan
// @Description Paid plans require valid card details.
// @Tags profile
// @Accept json
// @Produce json
// @Security CustomerToken
// @Param input body planReq true "Plan and card"
// @Success 200 {object} profileResp
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]any
// @Router /profile/plan [post]
func (s *Server) activatePlan(c *gin.Context) {
	var req planReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	u, err := s.svc.Auth.ActivatePlan(c, session(c), req.Plan, req.Card)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, profileOf(*u))
}
