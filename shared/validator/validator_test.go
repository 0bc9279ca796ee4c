package validator_test

import (
	"lodgy/shared/validator"
	"strings"
	"testing"
)

type listingPayload struct {
	Name      string `validate:"required"                 json:"name"`
	Email     string `validate:"required,email"           json:"email"`
	MaxGuests int    `validate:"gte=1,lte=50"             json:"max_guests"`
	Policy    string `validate:"oneof=flexible moderate strict" json:"policy"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *listingPayload
		expectError bool
	}{
		{
			name: "valid struct",
			data: &listingPayload{
				Name:      "Seaside Cabin",
				Email:     "owner@example.com",
				MaxGuests: 4,
				Policy:    "flexible",
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &listingPayload{
				Email:     "owner@example.com",
				MaxGuests: 4,
				Policy:    "flexible",
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: &listingPayload{
				Name:      "Seaside Cabin",
				Email:     "not-an-email",
				MaxGuests: 4,
				Policy:    "flexible",
			},
			expectError: true,
		},
		{
			name: "guests out of range",
			data: &listingPayload{
				Name:      "Seaside Cabin",
				Email:     "owner@example.com",
				MaxGuests: 80,
				Policy:    "flexible",
			},
			expectError: true,
		},
		{
			name: "invalid policy",
			data: &listingPayload{
				Name:      "Seaside Cabin",
				Email:     "owner@example.com",
				MaxGuests: 4,
				Policy:    "whenever",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{
			name:        "valid required string",
			field:       "test",
			tag:         "required",
			expectError: false,
		},
		{
			name:        "empty required string",
			field:       "",
			tag:         "required",
			expectError: true,
		},
		{
			name:        "valid email",
			field:       "guest@example.com",
			tag:         "email",
			expectError: false,
		},
		{
			name:        "invalid email",
			field:       "invalid-email",
			tag:         "email",
			expectError: true,
		},
		{
			name:        "valid rating in range",
			field:       4,
			tag:         "gte=1,lte=5",
			expectError: false,
		},
		{
			name:        "rating out of range",
			field:       6,
			tag:         "gte=1,lte=5",
			expectError: true,
		},
		{
			name:        "valid oneof",
			field:       "moderate",
			tag:         "oneof=flexible moderate strict",
			expectError: false,
		},
		{
			name:        "invalid oneof",
			field:       "invalid",
			tag:         "oneof=flexible moderate strict",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"name":"Seaside Cabin","email":"owner@example.com","max_guests":4,"policy":"flexible"}`,
			expectError: false,
		},
		{
			name:        "invalid field value",
			jsonBody:    `{"name":"Seaside Cabin","email":"not-an-email","max_guests":4,"policy":"flexible"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"name":"Seaside Cabin","email":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.jsonBody)
			var data listingPayload
			err := validator.Validate(reader, &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	data := &listingPayload{}
	err := validator.ValidateStruct(data)

	if err == nil {
		t.Fatal("expected validation error for empty struct")
	}

	errorMsg := err.Error()

	if !strings.Contains(errorMsg, "required") || errorMsg == "" {
		t.Errorf("expected descriptive error message containing 'required', got: %s", errorMsg)
	}
}
