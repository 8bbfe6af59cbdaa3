package dto

// CreateCertificateRequest carries the metadata of an uploaded certificate file
type CreateCertificateRequest struct {
	StudentID          string `json:"studentId" binding:"required"`
	NIC                string `json:"nic" binding:"required" example:"200412345678"`
	CertificateType    string `json:"certificateType" binding:"required" example:"O/L Certificate"`
	IssuingInstitution string `json:"issuingInstitution" example:"Department of Examinations"`
	IssueDate          string `json:"issueDate" example:"2020-03-01"`
	CertificateID      string `json:"certificateId"`
	Comments           string `json:"comments"`
	FileName           string `json:"fileName" binding:"required" example:"ol_results.pdf"`
	FileSize           int64  `json:"fileSize" binding:"gte=0" example:"204800"`
	FileType           string `json:"fileType" binding:"required" example:"application/pdf"`
}

// UpdateCertificateStatusRequest is an admin verification decision
type UpdateCertificateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Pending Verified Rejected" example:"Verified"`
}

// CertificateListQuery holds the query string of the certificate list
type CertificateListQuery struct {
	Status    string `form:"status"`
	StudentID string `form:"studentId"`
	NIC       string `form:"nic"`
}
