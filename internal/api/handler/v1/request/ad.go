package request

import (
	"strings"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/odolbodol/adboard/internal/domain"
)

// MaxImageLength bounds the inline image payload. The wire format is a
// base64 data-URL, so 2,000,000 characters is roughly 1.5 MB decoded.
const MaxImageLength = 2000000

const imagePattern = `^data:image/(png|jpe?g|gif|webp);base64,`

var imageExp = regexp2.MustCompile(imagePattern, regexp2.None)

// FieldError reports the first failing field of a candidate ad, with
// the dotted path of that field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return e.Message
}

// CreateAdRequest is the candidate ad submitted to POST /api/ads. The
// same type, defaults and rules are used by the server handler and the
// API client, so the two sides cannot drift apart. The server still
// validates every request: client-side checks are never trusted.
type CreateAdRequest struct {
	ItemName  string `json:"itemName"`
	Category  string `json:"category"`
	Type      string `json:"type"`
	Location  string `json:"location"`
	Phone     string `json:"phone"`
	Image     string `json:"image,omitempty"`
	IsPremium bool   `json:"isPremium"`
}

// ApplyDefaults fills category and type when omitted. Must run before
// Validate on both sides of the wire.
func (req *CreateAdRequest) ApplyDefaults() {
	if strings.TrimSpace(req.Category) == "" {
		req.Category = domain.DefaultCategory
	}
	if strings.TrimSpace(req.Type) == "" {
		req.Type = domain.DefaultType
	}
}

// Validate checks fields in declaration order and reports only the
// first failure as a *FieldError.
func (req *CreateAdRequest) Validate() error {
	fields := []struct {
		name  string
		value interface{}
		rules []validation.Rule
	}{
		{"itemName", req.ItemName, []validation.Rule{validation.Required}},
		{"category", req.Category, []validation.Rule{oneOf(domain.Categories())}},
		{"type", req.Type, []validation.Rule{oneOf(domain.Types())}},
		{"location", req.Location, []validation.Rule{validation.Required}},
		{"phone", req.Phone, []validation.Rule{validation.Required}},
		{"image", req.Image, []validation.Rule{
			validation.Length(0, MaxImageLength).Error("must not exceed 2000000 characters"),
		}},
	}

	for _, f := range fields {
		if err := validation.Validate(f.value, f.rules...); err != nil {
			return &FieldError{
				Field:   f.name,
				Message: f.name + " " + err.Error(),
			}
		}
	}

	if req.Image != "" {
		ok, err := imageExp.MatchString(req.Image)
		if err != nil || !ok {
			return &FieldError{
				Field:   "image",
				Message: "image must be an inline data-URL (png, jpeg, gif or webp)",
			}
		}
	}

	return nil
}

func (req *CreateAdRequest) ToDomain() domain.Ad {
	return domain.Ad{
		ItemName:  req.ItemName,
		Category:  req.Category,
		Type:      req.Type,
		Location:  req.Location,
		Phone:     req.Phone,
		Image:     req.Image,
		IsPremium: req.IsPremium,
	}
}

func oneOf(values []string) validation.Rule {
	allowed := make([]interface{}, len(values))
	for i, v := range values {
		allowed[i] = v
	}

	return validation.In(allowed...).Error("must be one of " + strings.Join(values, ", "))
}
