package controllers

import (
	"mime"
	"net/http"
	"path/filepath"

	"MediConnect/config/authorization"
	"MediConnect/models"
	"MediConnect/util"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Patient(private *gin.RouterGroup) {
	patient := private.Group("/patient")
	{
		patient.GET("/profile/:id", authorization.Authorize(util.PatientRole, util.DoctorRole), authorization.Self(util.PatientRole), h.GetPatient)
		patient.PUT("/profile/:id", authorization.Authorize(util.PatientRole), authorization.Self(util.PatientRole), h.UpdatePatient)
		patient.PUT("/profile/uploadrecord/:id", authorization.Authorize(util.PatientRole), authorization.Self(util.PatientRole), h.UploadRecord)
		patient.GET("/profile/downloadrecord/:id", authorization.Authorize(util.PatientRole, util.DoctorRole), authorization.Self(util.PatientRole), h.DownloadRecord)
		patient.POST("/appointment/order", authorization.Authorize(util.PatientRole), h.CreateOrder)
	}
}

func (h *Handler) GetPatient(c *gin.Context) {
	patient, err := h.svc.GetPatient(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

func (h *Handler) UpdatePatient(c *gin.Context) {
	var body models.PatientUpdate
	if !bindJSON(c, &body) {
		return
	}
	patient, err := h.svc.UpdatePatient(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

/*
* The file comes in the multipart field record
* Pass the opened file to the services to store and link
 */
func (h *Handler) UploadRecord(c *gin.Context) {
	header, err := c.FormFile("record")
	if err != nil {
		fail(c, util.Validation(util.NO_FILE_UPLOADED))
		return
	}
	file, err := header.Open()
	if err != nil {
		fail(c, util.Internal(err))
		return
	}
	defer file.Close()

	patient, err := h.svc.UploadRecord(c.Request.Context(), c.Param("id"), header.Filename, file)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

func (h *Handler) DownloadRecord(c *gin.Context) {
	file, name, err := h.svc.OpenRecord(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		fail(c, util.Internal(err))
		return
	}
	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.DataFromReader(http.StatusOK, info.Size(), contentType, file, map[string]string{
		"Content-Disposition": mime.FormatMediaType("attachment", map[string]string{"filename": name}),
	})
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var body models.PaymentOrderRequest
	if !bindJSON(c, &body) {
		return
	}
	order, err := h.svc.CreatePaymentOrder(c.Request.Context(), body)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
