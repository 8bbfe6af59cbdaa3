package models

// StudentStatus is the review state of a registration
type StudentStatus string

const (
	StudentStatusPending  StudentStatus = "Pending"
	StudentStatusApproved StudentStatus = "Approved"
	StudentStatusRejected StudentStatus = "Rejected"
)

// Valid reports whether s is one of the known student statuses
func (s StudentStatus) Valid() bool {
	switch s {
	case StudentStatusPending, StudentStatusApproved, StudentStatusRejected:
		return true
	}
	return false
}

// CertificateStatus is the verification state of an uploaded certificate
type CertificateStatus string

const (
	CertificateStatusPending  CertificateStatus = "Pending"
	CertificateStatusVerified CertificateStatus = "Verified"
	CertificateStatusRejected CertificateStatus = "Rejected"
)

// Valid reports whether s is one of the known certificate statuses
func (s CertificateStatus) Valid() bool {
	switch s {
	case CertificateStatusPending, CertificateStatusVerified, CertificateStatusRejected:
		return true
	}
	return false
}

// StaffRole defines what a staff account may do
type StaffRole string

const (
	RoleAdmin StaffRole = "admin"
	RoleStaff StaffRole = "staff"
)

// Valid reports whether r is a known role
func (r StaffRole) Valid() bool {
	return r == RoleAdmin || r == RoleStaff
}
