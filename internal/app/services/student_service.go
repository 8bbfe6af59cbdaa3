package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/studentportal/internal/app/models"
	"github.com/yigit/studentportal/internal/app/models/dto"
	"github.com/yigit/studentportal/internal/app/repositories"
	"github.com/yigit/studentportal/internal/pkg/apperrors"
	"github.com/yigit/studentportal/internal/pkg/helpers"
	"github.com/yigit/studentportal/internal/pkg/query"
)

// StatusAll disables the status filter of a list request
const StatusAll = "all"

// studentOrder lists newest applications first
var studentOrder = query.Sort{Field: models.StudentFieldAppliedDate, Descending: true}

// StudentFilter holds the optional criteria of the admin student list
type StudentFilter struct {
	Status          string
	Search          string
	IncludeDisabled bool
}

// Predicate turns the filter into a storage-independent query
func (f StudentFilter) Predicate() query.Predicate {
	params := query.Params{
		Search:       f.Search,
		SearchFields: models.StudentSearchFields,
	}
	if !f.IncludeDisabled {
		params.Exclude = append(params.Exclude, query.Condition{Field: models.StudentFieldDisabled, Value: true})
	}
	if status := strings.TrimSpace(f.Status); status != StatusAll {
		params.Equals = append(params.Equals, query.Condition{Field: models.StudentFieldStatus, Value: status})
	}
	return query.Build(params)
}

// StudentService manages the lifecycle of registrations
type StudentService interface {
	ListStudents(ctx context.Context, filter StudentFilter) ([]*models.Student, error)
	GetStudent(ctx context.Context, id string) (*models.Student, error)
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	UpdateStudent(ctx context.Context, id string, req *dto.UpdateStudentRequest) (*models.Student, error)
	SetStudentDisabled(ctx context.Context, id string, disabled bool) (*models.Student, error)
	DeleteStudent(ctx context.Context, id string) error
}

type studentService struct {
	studentRepo repositories.StudentRepository
	logger      zerolog.Logger
	now         clock
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo repositories.StudentRepository, logger zerolog.Logger) StudentService {
	return &studentService{
		studentRepo: studentRepo,
		logger:      logger,
		now:         utcNow,
	}
}

func (s *studentService) ListStudents(ctx context.Context, filter StudentFilter) ([]*models.Student, error) {
	students, err := s.studentRepo.List(ctx, filter.Predicate(), studentOrder)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	return students, nil
}

func (s *studentService) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return nil, fmt.Errorf("error getting student: %w", err)
	}
	return student, nil
}

func (s *studentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	if err := requireNonBlank(map[string]string{
		models.StudentFieldFullName:             req.FullName,
		models.StudentFieldAddress:              req.Address,
		models.StudentFieldPhoneNumber:          req.PhoneNumber,
		models.StudentFieldEmail:                req.Email,
		models.StudentFieldNIC:                  req.NIC,
		models.StudentFieldMiddleSchoolResults:  req.MiddleSchoolResults,
		models.StudentFieldHighSchoolResults:    req.HighSchoolResults,
		models.StudentFieldPreferredStudyCenter: req.PreferredStudyCenter,
		models.StudentFieldSelectedCategory:     req.SelectedCategory,
		models.StudentFieldSelectedCourse:       req.SelectedCourse,
	}); err != nil {
		return nil, err
	}

	if !validEmail(req.Email) {
		return nil, apperrors.NewValidationError("email must be a valid email address")
	}

	dob, err := helpers.ParseDate(strings.TrimSpace(req.DateOfBirth))
	if err != nil {
		return nil, apperrors.NewValidationError("dateOfBirth must be a date (YYYY-MM-DD)")
	}

	nic := strings.TrimSpace(req.NIC)
	exists, err := s.studentRepo.NICExists(ctx, nic, "")
	if err != nil {
		return nil, fmt.Errorf("error checking NIC: %w", err)
	}
	if exists {
		return nil, apperrors.ErrNICExists
	}

	now := s.now()
	student := &models.Student{
		FullName:             strings.TrimSpace(req.FullName),
		DateOfBirth:          dob,
		Address:              req.Address,
		PhoneNumber:          strings.TrimSpace(req.PhoneNumber),
		Email:                strings.TrimSpace(req.Email),
		NIC:                  nic,
		MiddleSchoolResults:  req.MiddleSchoolResults,
		HighSchoolResults:    req.HighSchoolResults,
		Certifications:       req.Certifications,
		PreferredStudyCenter: req.PreferredStudyCenter,
		SelectedCategory:     req.SelectedCategory,
		SelectedSubcategory:  req.SelectedSubcategory,
		SelectedCourse:       req.SelectedCourse,
		Status:               models.StudentStatusPending,
		Disabled:             false,
		AppliedDate:          now,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	s.logger.Info().Str("studentID", student.ID).Str("course", student.SelectedCourse).Msg("Student registration created")
	return student, nil
}

func (s *studentService) UpdateStudent(ctx context.Context, id string, req *dto.UpdateStudentRequest) (*models.Student, error) {
	update, err := studentUpdateFromRequest(req)
	if err != nil {
		return nil, err
	}
	if update.IsEmpty() {
		return s.GetStudent(ctx, id)
	}

	if update.NIC != nil {
		exists, err := s.studentRepo.NICExists(ctx, *update.NIC, id)
		if err != nil {
			return nil, fmt.Errorf("error checking NIC: %w", err)
		}
		if exists {
			return nil, apperrors.ErrNICExists
		}
	}

	student, err := s.studentRepo.Update(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("error updating student: %w", err)
	}

	if update.Status != nil {
		s.logger.Info().Str("studentID", id).Str("status", string(*update.Status)).Msg("Student status changed")
	}
	return student, nil
}

func (s *studentService) SetStudentDisabled(ctx context.Context, id string, disabled bool) (*models.Student, error) {
	student, err := s.studentRepo.Update(ctx, id, models.StudentUpdate{Disabled: &disabled})
	if err != nil {
		return nil, fmt.Errorf("error setting student disabled flag: %w", err)
	}
	s.logger.Info().Str("studentID", id).Bool("disabled", disabled).Msg("Student disabled flag changed")
	return student, nil
}

func (s *studentService) DeleteStudent(ctx context.Context, id string) error {
	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	s.logger.Info().Str("studentID", id).Msg("Student deleted")
	return nil
}

// studentUpdateFromRequest validates the partial update and converts it to the model form
func studentUpdateFromRequest(req *dto.UpdateStudentRequest) (models.StudentUpdate, error) {
	update := models.StudentUpdate{
		FullName:             trimmed(req.FullName),
		Address:              req.Address,
		PhoneNumber:          trimmed(req.PhoneNumber),
		Email:                trimmed(req.Email),
		NIC:                  trimmed(req.NIC),
		MiddleSchoolResults:  req.MiddleSchoolResults,
		HighSchoolResults:    req.HighSchoolResults,
		Certifications:       req.Certifications,
		PreferredStudyCenter: req.PreferredStudyCenter,
		SelectedCategory:     req.SelectedCategory,
		SelectedSubcategory:  req.SelectedSubcategory,
		SelectedCourse:       req.SelectedCourse,
		Disabled:             req.Disabled,
	}

	blank := map[string]*string{
		models.StudentFieldFullName:             update.FullName,
		models.StudentFieldAddress:              update.Address,
		models.StudentFieldPhoneNumber:          update.PhoneNumber,
		models.StudentFieldEmail:                update.Email,
		models.StudentFieldNIC:                  update.NIC,
		models.StudentFieldMiddleSchoolResults:  update.MiddleSchoolResults,
		models.StudentFieldHighSchoolResults:    update.HighSchoolResults,
		models.StudentFieldPreferredStudyCenter: update.PreferredStudyCenter,
		models.StudentFieldSelectedCategory:     update.SelectedCategory,
		models.StudentFieldSelectedCourse:       update.SelectedCourse,
	}
	var empty []string
	for field, v := range blank {
		if v != nil && strings.TrimSpace(*v) == "" {
			empty = append(empty, field)
		}
	}
	if len(empty) > 0 {
		sort.Strings(empty)
		return update, apperrors.NewValidationError(empty[0] + " cannot be empty")
	}

	if update.Email != nil && !validEmail(*update.Email) {
		return update, apperrors.NewValidationError("email must be a valid email address")
	}

	if req.DateOfBirth != nil {
		dob, err := helpers.ParseDate(strings.TrimSpace(*req.DateOfBirth))
		if err != nil {
			return update, apperrors.NewValidationError("dateOfBirth must be a date (YYYY-MM-DD)")
		}
		update.DateOfBirth = &dob
	}

	if req.Status != nil {
		status := models.StudentStatus(*req.Status)
		if !status.Valid() {
			return update, apperrors.NewValidationError("status must be one of: Pending, Approved, Rejected")
		}
		update.Status = &status
	}

	return update, nil
}

// requireNonBlank fails with the first (alphabetical) blank field
func requireNonBlank(fields map[string]string) error {
	var missing []string
	for name, v := range fields {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return apperrors.NewValidationError(missing[0] + " is required")
}

func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	return &t
}
