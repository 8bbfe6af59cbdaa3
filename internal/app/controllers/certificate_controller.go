package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentportal/internal/app/models/dto"
	"github.com/yigit/studentportal/internal/app/services"
	"github.com/yigit/studentportal/internal/middleware"
)

// CertificateController handles certificate uploads and verification
type CertificateController struct {
	certificateService services.CertificateService
}

// NewCertificateController creates a new CertificateController
func NewCertificateController(certificateService services.CertificateService) *CertificateController {
	return &CertificateController{
		certificateService: certificateService,
	}
}

// GetCertificates lists certificates
// @Summary List certificates
// @Tags certificates
// @Produce json
// @Security CookieAuth
// @Param status query string false "Pending, Verified or Rejected"
// @Param studentId query string false "Owning student"
// @Param nic query string false "Owning student's NIC"
// @Success 200 {object} dto.APIResponse{data=[]models.Certificate}
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /certificates [get]
func (c *CertificateController) GetCertificates(ctx *gin.Context) {
	var q dto.CertificateListQuery
	if !middleware.BindQuery(ctx, &q) {
		return
	}

	certificates, err := c.certificateService.ListCertificates(ctx.Request.Context(), services.CertificateFilter{
		Status:    q.Status,
		StudentID: q.StudentID,
		NIC:       q.NIC,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(certificates, len(certificates)))
}

// CreateCertificate records an uploaded certificate
// @Summary Upload certificate metadata
// @Tags certificates
// @Accept json
// @Produce json
// @Param request body dto.CreateCertificateRequest true "Certificate metadata"
// @Success 201 {object} dto.APIResponse{data=models.Certificate} "Certificate uploaded successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Router /certificates [post]
func (c *CertificateController) CreateCertificate(ctx *gin.Context) {
	var req dto.CreateCertificateRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	certificate, err := c.certificateService.CreateCertificate(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(certificate, "Certificate uploaded successfully"))
}

// UpdateCertificateStatus records a verification decision
// @Summary Verify or reject certificate
// @Tags certificates
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param id path string true "Certificate ID"
// @Param request body dto.UpdateCertificateStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.Certificate}
// @Failure 400 {object} dto.APIResponse "Invalid status"
// @Failure 404 {object} dto.APIResponse "Certificate not found"
// @Router /certificates/{id}/status [patch]
func (c *CertificateController) UpdateCertificateStatus(ctx *gin.Context) {
	var req dto.UpdateCertificateStatusRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	certificate, err := c.certificateService.UpdateCertificateStatus(ctx.Request.Context(), ctx.Param("id"), req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(certificate, "Certificate status updated successfully"))
}
