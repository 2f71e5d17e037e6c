package controllers

import (
	"net/http"

	"MediConnect/config/authorization"
	"MediConnect/models"
	"MediConnect/util"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Doctor(private *gin.RouterGroup) {
	doctor := private.Group("/doctor")
	{
		doctor.GET("/profile", h.ListDoctors)
		doctor.GET("/profile/:id", h.GetDoctor)
		doctor.PUT("/profile/:id", authorization.Authorize(util.DoctorRole), authorization.Self(util.DoctorRole), h.UpdateDoctor)
	}
}

func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.svc.ListDoctors(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (h *Handler) GetDoctor(c *gin.Context) {
	doctor, err := h.svc.GetDoctor(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

func (h *Handler) UpdateDoctor(c *gin.Context) {
	var body models.DoctorUpdate
	if !bindJSON(c, &body) {
		return
	}
	doctor, err := h.svc.UpdateDoctor(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, doctor)
}
