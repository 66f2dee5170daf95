package application

import (
	"errors"

	"github.com/linskybing/bizportal/internal/domain/intake"
	"github.com/linskybing/bizportal/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrInvalidStatus       = errors.New("invalid status")
)

type IntakeService struct {
	Repos *repository.Repos
}

func NewIntakeService(repos *repository.Repos) *IntakeService {
	return &IntakeService{
		Repos: repos,
	}
}

func (s *IntakeService) SubmitContact(c *intake.Contact) error {
	c.ID = 0
	return s.Repos.Contact.CreateContact(c)
}

func (s *IntakeService) ListContacts(inquiryType string) ([]intake.Contact, error) {
	return s.Repos.Contact.ListContacts(inquiryType)
}

// SubmitApplication stores a new application; submissions always start Pending.
func (s *IntakeService) SubmitApplication(a *intake.Application) error {
	a.ID = 0
	a.Status = intake.ApplicationStatusPending
	return s.Repos.Application.CreateApplication(a)
}

func (s *IntakeService) GetApplicationSummary(id uint) (map[string]interface{}, error) {
	app, err := s.Repos.Application.GetApplicationByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return app.ToDict(), nil
}

func (s *IntakeService) ListApplicationSummaries(status intake.ApplicationStatus) ([]map[string]interface{}, error) {
	if status != "" && !status.Valid() {
		return nil, ErrInvalidStatus
	}
	apps, err := s.Repos.Application.ListApplications(status)
	if err != nil {
		return nil, err
	}
	out := make([]map[string]interface{}, 0, len(apps))
	for i := range apps {
		out = append(out, apps[i].ToDict())
	}
	return out, nil
}

func (s *IntakeService) UpdateApplicationStatus(id uint, status intake.ApplicationStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	err := s.Repos.Application.UpdateApplicationStatus(id, status)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrApplicationNotFound
	}
	return err
}
