package request

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odolbodol/adboard/internal/domain"
)

func validRequest() CreateAdRequest {
	return CreateAdRequest{
		ItemName: "Higher Math",
		Category: domain.CategoryBook,
		Type:     domain.TypeExchange,
		Location: "Dhaka",
		Phone:    "01711223344",
	}
}

func TestCreateAdRequest_ApplyDefaults(t *testing.T) {
	req := CreateAdRequest{
		ItemName: "Higher Math",
		Location: "Dhaka",
		Phone:    "01711223344",
	}

	req.ApplyDefaults()

	assert.Equal(t, domain.CategoryBook, req.Category)
	assert.Equal(t, domain.TypeExchange, req.Type)
	assert.False(t, req.IsPremium)
}

func TestCreateAdRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(req *CreateAdRequest)
		wantField string
	}{
		{
			name:   "valid request",
			mutate: func(req *CreateAdRequest) {},
		},
		{
			name: "valid request with image",
			mutate: func(req *CreateAdRequest) {
				req.Image = "data:image/png;base64,iVBORw0KGgo="
			},
		},
		{
			name: "missing item name",
			mutate: func(req *CreateAdRequest) {
				req.ItemName = ""
			},
			wantField: "itemName",
		},
		{
			name: "unknown category",
			mutate: func(req *CreateAdRequest) {
				req.Category = "furniture"
			},
			wantField: "category",
		},
		{
			name: "unknown type",
			mutate: func(req *CreateAdRequest) {
				req.Type = "rent"
			},
			wantField: "type",
		},
		{
			name: "missing location",
			mutate: func(req *CreateAdRequest) {
				req.Location = ""
			},
			wantField: "location",
		},
		{
			name: "missing phone",
			mutate: func(req *CreateAdRequest) {
				req.Phone = ""
			},
			wantField: "phone",
		},
		{
			name: "image not a data-URL",
			mutate: func(req *CreateAdRequest) {
				req.Image = "https://example.com/cat.png"
			},
			wantField: "image",
		},
		{
			name: "image too large",
			mutate: func(req *CreateAdRequest) {
				req.Image = "data:image/png;base64," + strings.Repeat("A", MaxImageLength)
			},
			wantField: "image",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)

				return
			}

			var fieldErr *FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.wantField, fieldErr.Field)
			assert.NotEmpty(t, fieldErr.Message)
		})
	}
}

func TestCreateAdRequest_Validate_ReportsFirstFailureOnly(t *testing.T) {
	req := CreateAdRequest{}
	req.ApplyDefaults()

	err := req.Validate()

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "itemName", fieldErr.Field)
}
