package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/tzsched/internal/models"
	"github.com/joshua-takyi/tzsched/internal/services"
)

func CreateProfile(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request payload")
			return
		}

		profile, err := p.CreateProfile(c.Request.Context(), &req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, profile)
	}
}

func ListProfiles(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		profiles, err := p.ListProfiles(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, profiles)
	}
}
