package controllers

import (
	"net/http"
	"time"

	"github.com/jculp24/thrsty/entity"
	"github.com/jculp24/thrsty/pkg/resp"
	"github.com/jculp24/thrsty/services"
	"github.com/jculp24/thrsty/utils"

	"github.com/gin-gonic/gin"
)

type SignupRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
}
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{Service: s}
}

// POST /api/auth/signup
func (a *AuthController) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Service.Signup(req.Email, req.Password, req.FirstName, req.LastName, req.PhoneNumber)
	if err != nil {
		fail(c, err)
		return
	}

	resp.Created(c, userPayload(user))
}

// POST /api/auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Service.Login(req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"token": token,
			"user":  userPayload(user),
		},
	})
}

// POST /api/auth/logout
func (a *AuthController) Logout(c *gin.Context) {
	expiry := time.Now().Add(time.Hour)
	if v, ok := c.Get("claims"); ok {
		if claims, ok := v.(*utils.Claims); ok && claims.ExpiresAt != nil {
			expiry = claims.ExpiresAt.Time
		}
	}
	a.Service.Logout(utils.CurrentTokenID(c), expiry)
	resp.OKMessage(c, "Logout successful")
}

// GET /api/auth/me
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Service.Profile(utils.CurrentUserID(c))
	if err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, userPayload(user))
}

func userPayload(u *entity.User) gin.H {
	return gin.H{
		"id": u.ID, "email": u.Email, "firstName": u.FirstName,
		"lastName": u.LastName, "phoneNumber": u.PhoneNumber, "role": u.Role,
	}
}
