package intake

import (
	"time"

	"gorm.io/gorm"
)

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "Pending"
	ApplicationStatusReviewed ApplicationStatus = "Reviewed"
	ApplicationStatusAccepted ApplicationStatus = "Accepted"
	ApplicationStatusRejected ApplicationStatus = "Rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// Application is a job application. Resume and cover letter are stored
// elsewhere; only their file names are kept here.
type Application struct {
	ID                  uint              `gorm:"primaryKey" json:"id"`
	FirstName           *string           `gorm:"size:100" json:"first_name"`
	LastName            *string           `gorm:"size:100" json:"last_name"`
	Email               *string           `gorm:"size:120" json:"email"`
	Phone               *string           `gorm:"size:20" json:"phone"`
	Address             *string           `gorm:"size:255" json:"address"`
	City                *string           `gorm:"size:100" json:"city"`
	State               *string           `gorm:"size:50" json:"state"`
	ZipCode             *string           `gorm:"size:20" json:"zip_code"`
	CurrentPosition     *string           `gorm:"size:100" json:"current_position"`
	CurrentCompany      *string           `gorm:"size:100" json:"current_company"`
	ExperienceYears     *string           `gorm:"size:20" json:"experience_years"`
	WorkDescription     *string           `gorm:"type:text" json:"work_description"`
	Education           *string           `gorm:"size:100" json:"education"`
	FieldOfStudy        *string           `gorm:"size:100" json:"field_of_study"`
	Institution         *string           `gorm:"size:100" json:"institution"`
	GraduationYear      *string           `gorm:"size:10" json:"graduation_year"`
	TechnicalSkills     *string           `gorm:"type:text" json:"technical_skills"`
	SoftSkills          *string           `gorm:"type:text" json:"soft_skills"`
	Certifications      *string           `gorm:"type:text" json:"certifications"`
	ResumeFilename      *string           `gorm:"size:255" json:"resume_filename"`
	CoverLetterFilename *string           `gorm:"size:255" json:"cover_letter_filename"`
	Availability        *string           `gorm:"size:50" json:"availability"`
	SalaryExpectation   *string           `gorm:"size:100" json:"salary_expectation"`
	WorkLocation        *string           `gorm:"size:50" json:"work_location"`
	AdditionalInfo      *string           `gorm:"type:text" json:"additional_info"`
	Status              ApplicationStatus `gorm:"size:20;default:'Pending'" json:"status"`
	CreatedAt           time.Time         `gorm:"autoCreateTime" json:"created_at"`
}

func (Application) TableName() string {
	return "application"
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = ApplicationStatusPending
	}
	return nil
}

// SummaryKeys are the only attributes ToDict exposes.
var SummaryKeys = []string{
	"id",
	"first_name",
	"last_name",
	"email",
	"phone",
	"experience_years",
	"technical_skills",
	"education",
	"city",
	"state",
	"resume_filename",
}

// ToDict returns the public view of the application. Unset fields are
// present with a nil value.
func (a *Application) ToDict() map[string]interface{} {
	return map[string]interface{}{
		"id":               a.ID,
		"first_name":       deref(a.FirstName),
		"last_name":        deref(a.LastName),
		"email":            deref(a.Email),
		"phone":            deref(a.Phone),
		"experience_years": deref(a.ExperienceYears),
		"technical_skills": deref(a.TechnicalSkills),
		"education":        deref(a.Education),
		"city":             deref(a.City),
		"state":            deref(a.State),
		"resume_filename":  deref(a.ResumeFilename),
	}
}

func deref(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}
