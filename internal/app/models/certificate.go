package models

import "time"

// Canonical certificate field names
const (
	CertificateFieldID                 = "id"
	CertificateFieldStudentID          = "studentId"
	CertificateFieldNIC                = "nic"
	CertificateFieldCertificateType    = "certificateType"
	CertificateFieldIssuingInstitution = "issuingInstitution"
	CertificateFieldIssueDate          = "issueDate"
	CertificateFieldCertificateID      = "certificateId"
	CertificateFieldComments           = "comments"
	CertificateFieldFileURL            = "fileUrl"
	CertificateFieldFileName           = "fileName"
	CertificateFieldFileSize           = "fileSize"
	CertificateFieldFileType           = "fileType"
	CertificateFieldStatus             = "status"
	CertificateFieldUploadDate         = "uploadDate"
	CertificateFieldCreatedAt          = "createdAt"
	CertificateFieldUpdatedAt          = "updatedAt"
)

// Certificate is metadata about a document uploaded for a student.
// It is linked to the student only by studentId/nic; nothing checks that the student exists.
type Certificate struct {
	ID                 string            `json:"id" bson:"_id"`
	StudentID          string            `json:"studentId" bson:"studentId"`
	NIC                string            `json:"nic" bson:"nic"`
	CertificateType    string            `json:"certificateType" bson:"certificateType"`
	IssuingInstitution string            `json:"issuingInstitution,omitempty" bson:"issuingInstitution,omitempty"`
	IssueDate          *time.Time        `json:"issueDate,omitempty" bson:"issueDate,omitempty"`
	CertificateID      string            `json:"certificateId,omitempty" bson:"certificateId,omitempty"`
	Comments           string            `json:"comments,omitempty" bson:"comments,omitempty"`
	FileURL            string            `json:"fileUrl" bson:"fileUrl"`
	FileName           string            `json:"fileName" bson:"fileName"`
	FileSize           int64             `json:"fileSize" bson:"fileSize"`
	FileType           string            `json:"fileType" bson:"fileType"`
	Status             CertificateStatus `json:"status" bson:"status"`
	UploadDate         time.Time         `json:"uploadDate" bson:"uploadDate"`
	CreatedAt          time.Time         `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time         `json:"updatedAt" bson:"updatedAt"`
}

// Field implements query.Record
func (c *Certificate) Field(name string) (interface{}, bool) {
	switch name {
	case CertificateFieldID:
		return c.ID, true
	case CertificateFieldStudentID:
		return c.StudentID, true
	case CertificateFieldNIC:
		return c.NIC, true
	case CertificateFieldCertificateType:
		return c.CertificateType, true
	case CertificateFieldIssuingInstitution:
		return c.IssuingInstitution, true
	case CertificateFieldIssueDate:
		if c.IssueDate == nil {
			return nil, false
		}
		return *c.IssueDate, true
	case CertificateFieldCertificateID:
		return c.CertificateID, true
	case CertificateFieldComments:
		return c.Comments, true
	case CertificateFieldFileURL:
		return c.FileURL, true
	case CertificateFieldFileName:
		return c.FileName, true
	case CertificateFieldFileSize:
		return c.FileSize, true
	case CertificateFieldFileType:
		return c.FileType, true
	case CertificateFieldStatus:
		return string(c.Status), true
	case CertificateFieldUploadDate:
		return c.UploadDate, true
	case CertificateFieldCreatedAt:
		return c.CreatedAt, true
	case CertificateFieldUpdatedAt:
		return c.UpdatedAt, true
	}
	return nil, false
}
