package profile

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const MaxDocumentBytes = 5 * 1024 * 1024

type Personal struct {
	Name                  string `json:"name"`
	Email                 string `json:"email"`
	Phone                 string `json:"phone"`
	CountryOfOrigin       string `json:"country_of_origin"`
	DestinationPreference string `json:"destination_preference"`
}

type Certification struct {
	Id     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
}

type Experience struct {
	Id          string `json:"id"`
	Role        string `json:"role"`
	Company     string `json:"company"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Description string `json:"description"`
}

type Language struct {
	Id       string `json:"id"`
	Language string `json:"language"`
	Level    string `json:"level"`
}

type Document struct {
	Id      string    `json:"id"`
	Name    string    `json:"name"`
	Size    int64     `json:"size"`
	Type    string    `json:"type"`
	AddedAt time.Time `json:"added_at"`
}

type Profile struct {
	Personal       Personal        `json:"personal"`
	Skills         []string        `json:"skills"`
	Certifications []Certification `json:"certifications"`
	Experience     []Experience    `json:"experience"`
	Languages      []Language      `json:"languages"`
	Documents      []Document      `json:"documents"`
}

var ErrNameRequired = errors.New("name is required")

// Normalize trims the name and skills and drops blank or repeated skills,
// keeping first occurrences in order.
func Normalize(p Profile) Profile {
	p.Personal.Name = strings.TrimSpace(p.Personal.Name)

	seen := make(map[string]struct{}, len(p.Skills))
	skills := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		skills = append(skills, s)
	}
	p.Skills = skills
	return p
}

// Validate checks a normalized profile. Every problem is reported, joined.
func Validate(p Profile) error {
	var errs []error
	if p.Personal.Name == "" {
		errs = append(errs, ErrNameRequired)
	}
	for i, c := range p.Certifications {
		if strings.TrimSpace(c.Name) == "" {
			errs = append(errs, fmt.Errorf("certifications[%d]: certification name is required", i))
		}
	}
	for i, e := range p.Experience {
		if strings.TrimSpace(e.Role) == "" || strings.TrimSpace(e.Company) == "" {
			errs = append(errs, fmt.Errorf("experience[%d]: role and company are required", i))
		}
	}
	for i, l := range p.Languages {
		if strings.TrimSpace(l.Language) == "" {
			errs = append(errs, fmt.Errorf("languages[%d]: language is required", i))
		}
	}
	for _, d := range p.Documents {
		if err := CheckDocument(d.Name, d.Type, d.Size); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// CheckDocument accepts PDFs (by content type or extension) up to 5MB.
func CheckDocument(name, contentType string, size int64) error {
	isPdf := contentType == "application/pdf" || strings.HasSuffix(strings.ToLower(name), ".pdf")
	if !isPdf {
		return fmt.Errorf("rejected %s: only PDF allowed", name)
	}
	if size > MaxDocumentBytes {
		return fmt.Errorf("rejected %s: exceeds 5MB", name)
	}
	return nil
}
