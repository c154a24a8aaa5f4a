package addons

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

type RequestType string

const (
	TypeDocument     RequestType = "document"
	TypeConsultation RequestType = "consultation"
	TypeLanguage     RequestType = "language"
	TypeSupport      RequestType = "support"
	TypeReferral     RequestType = "referral"
)

type Status string

const (
	StatusPending        Status = "pending"
	StatusInProgress     Status = "in_progress"
	StatusCompleted      Status = "completed"
	StatusCancelled      Status = "cancelled"
	StatusPaymentPending Status = "payment_pending"
)

var Statuses = []Status{StatusPending, StatusInProgress, StatusCompleted, StatusCancelled, StatusPaymentPending}

func ValidStatus(s Status) bool {
	return slices.Contains(Statuses, s)
}

// Prices in USD cents. Referrals are free and have no entry.
var Prices = map[RequestType]int64{
	TypeDocument:     4900,
	TypeConsultation: 9900,
	TypeLanguage:     5900,
	TypeSupport:      1900,
}

var (
	DocumentTypes     = []string{"Visa Letter", "Reference Letter", "Cover Letter", "Invitation Letter"}
	ConsultationSlots = []int{30, 45, 60}
	LanguagePackages  = []string{"IELTS Intensive", "TOEFL Booster", "Interview Coaching"}
	LanguageLevels    = []string{"Beginner", "Intermediate", "Advanced"}
	SupportChannels   = []string{"priority_chat", "callback"}
	ReferralProviders = []string{"insurance", "financial"}
)

const MaxAttachmentBytes = 5 * 1024 * 1024

var AttachmentTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

var (
	ErrUnknownType   = errors.New("unknown request type")
	ErrPremiumOnly   = errors.New("premium subscription required")
	ErrInvalidFields = errors.New("invalid request fields")
)

type Attachment struct {
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type,omitempty"`
}

// Draft is what a user submits. Only the fields of its Type are read.
type Draft struct {
	Type RequestType

	DocumentType string
	Description  string
	Files        []Attachment

	Datetime        time.Time
	DurationMinutes int

	PackageName string
	Level       string

	Channel string

	Provider string
}

// Order is a validated draft with its title, price and starting status.
type Order struct {
	Type       RequestType
	Title      string
	PriceCents *int64
	Status     Status
	Details    map[string]interface{}
}

// Prepare validates d and derives the order. Support requests need a
// premium subscriber.
func Prepare(d Draft, premium bool) (Order, error) {
	switch d.Type {
	case TypeDocument:
		if !slices.Contains(DocumentTypes, d.DocumentType) {
			return Order{}, fieldError("document_type must be one of %s", strings.Join(DocumentTypes, ", "))
		}
		files, err := checkAttachments(d.Files)
		if err != nil {
			return Order{}, err
		}
		return paid(d.Type, "Document: "+d.DocumentType, map[string]interface{}{
			"document_type": d.DocumentType,
			"description":   d.Description,
			"files":         files,
		}), nil

	case TypeConsultation:
		if d.Datetime.IsZero() {
			return Order{}, fieldError("datetime is required")
		}
		if !slices.Contains(ConsultationSlots, d.DurationMinutes) {
			return Order{}, fieldError("duration_minutes must be 30, 45 or 60")
		}
		return paid(d.Type, fmt.Sprintf("Consultation (%d mins)", d.DurationMinutes), map[string]interface{}{
			"datetime":         d.Datetime.UTC().Format(time.RFC3339),
			"duration_minutes": d.DurationMinutes,
		}), nil

	case TypeLanguage:
		if !slices.Contains(LanguagePackages, d.PackageName) {
			return Order{}, fieldError("package_name must be one of %s", strings.Join(LanguagePackages, ", "))
		}
		if !slices.Contains(LanguageLevels, d.Level) {
			return Order{}, fieldError("level must be one of %s", strings.Join(LanguageLevels, ", "))
		}
		return paid(d.Type, "Language Package: "+d.PackageName, map[string]interface{}{
			"package_name": d.PackageName,
			"level":        d.Level,
		}), nil

	case TypeSupport:
		if !premium {
			return Order{}, ErrPremiumOnly
		}
		if !slices.Contains(SupportChannels, d.Channel) {
			return Order{}, fieldError("channel must be priority_chat or callback")
		}
		title := "Priority Chat"
		if d.Channel == "callback" {
			title = "Callback Request"
		}
		return paid(d.Type, title, map[string]interface{}{"channel": d.Channel}), nil

	case TypeReferral:
		title := ""
		switch d.Provider {
		case "insurance":
			title = "Insurance Referral"
		case "financial":
			title = "Financial Services Referral"
		default:
			return Order{}, fieldError("provider must be insurance or financial")
		}
		return Order{
			Type:    d.Type,
			Title:   title,
			Status:  StatusPending,
			Details: map[string]interface{}{"provider": d.Provider},
		}, nil
	}
	return Order{}, ErrUnknownType
}

func paid(t RequestType, title string, details map[string]interface{}) Order {
	price := Prices[t]
	return Order{
		Type:       t,
		Title:      title,
		PriceCents: &price,
		Status:     StatusPaymentPending,
		Details:    details,
	}
}

// checkAttachments rejects the whole draft on the first bad file.
func checkAttachments(files []Attachment) ([]Attachment, error) {
	for _, f := range files {
		if !slices.Contains(AttachmentTypes, f.ContentType) {
			return nil, fieldError("%s is not a PDF/DOC/DOCX", f.Name)
		}
		if f.Size > MaxAttachmentBytes {
			return nil, fieldError("%s exceeds 5MB", f.Name)
		}
	}
	if files == nil {
		files = []Attachment{}
	}
	return files, nil
}

func fieldError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidFields, fmt.Sprintf(format, args...))
}

// FormatPrice renders cents as USD, or "Contact" when there is no price.
func FormatPrice(cents *int64) string {
	if cents == nil {
		return "Contact"
	}
	return fmt.Sprintf("$%d.%02d", *cents/100, *cents%100)
}
