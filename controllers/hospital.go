package controllers

import (
	"net/http"

	"MediConnect/config/authorization"
	"MediConnect/models"
	"MediConnect/util"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Hospital(private *gin.RouterGroup) {
	hospital := private.Group("/hospitals")
	{
		hospital.GET("", h.ListHospitals)
		hospital.GET("/:id", h.GetHospital)
		hospital.PUT("/:id", authorization.Authorize(util.HospitalRole), authorization.Self(util.HospitalRole), h.UpdateHospital)
		hospital.POST("/:id/apply", authorization.Authorize(util.DoctorRole), h.Apply)
		hospital.GET("/:id/requests", authorization.Authorize(util.HospitalRole), authorization.Self(util.HospitalRole), h.ListRequests)
		hospital.PUT("/:id/requests/:reqId", authorization.Authorize(util.HospitalRole), authorization.Self(util.HospitalRole), h.DecideRequest)
	}
}

func (h *Handler) ListHospitals(c *gin.Context) {
	hospitals, err := h.svc.ListHospitals(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, hospitals)
}

func (h *Handler) GetHospital(c *gin.Context) {
	hospital, err := h.svc.GetHospital(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, hospital)
}

func (h *Handler) UpdateHospital(c *gin.Context) {
	var body models.HospitalUpdate
	if !bindJSON(c, &body) {
		return
	}
	hospital, err := h.svc.UpdateHospital(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, hospital)
}

/*
* A doctor applies on their own behalf
* The doctor id defaults to the caller
 */
func (h *Handler) Apply(c *gin.Context) {
	var body models.ApplyRequest
	if !bindJSON(c, &body) || !ownID(c, &body.DoctorID) {
		return
	}
	req, err := h.svc.ApplyToHospital(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

func (h *Handler) ListRequests(c *gin.Context) {
	requests, err := h.svc.ListRequests(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *Handler) DecideRequest(c *gin.Context) {
	var body models.DecisionRequest
	if !bindJSON(c, &body) {
		return
	}
	req, err := h.svc.DecideRequest(c.Request.Context(), c.Param("id"), c.Param("reqId"), body.Status)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}
