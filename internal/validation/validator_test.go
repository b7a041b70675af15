// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
	if v1 == nil {
		t.Error("GetValidator() should not return nil")
	}
}

type commentBody struct {
	Content string `json:"content" validate:"required,notblank,max=5000"`
}

type playlistBody struct {
	Name        string `json:"name" validate:"required,notblank"`
	Description string `json:"description" validate:"required,notblank"`
	OwnerID     string `json:"owner" validate:"omitempty,objectid"`
}

type searchQuery struct {
	SortType string `form:"sortType" validate:"omitempty,oneof=asc desc"`
	Page     int    `form:"page" validate:"min=1"`
}

func TestValidateStruct_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input interface{}
	}{
		{"comment", &commentBody{Content: "nice video"}},
		{"playlist with owner", &playlistBody{Name: "Faves", Description: "d", OwnerID: "64b7f0c2a1b2c3d4e5f60718"}},
		{"playlist without owner", &playlistBody{Name: "Faves", Description: "d"}},
		{"query", &searchQuery{SortType: "asc", Page: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := ValidateStruct(tt.input); err != nil {
				t.Errorf("ValidateStruct() = %v, want nil", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     interface{}
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{"missing content", &commentBody{}, "content", "required", "content is required"},
		{"blank content", &commentBody{Content: "   \t"}, "content", "notblank", "content is required"},
		{"too long", &commentBody{Content: strings.Repeat("a", 5001)}, "content", "max", "content must be at most 5000 characters"},
		{"bad owner", &playlistBody{Name: "a", Description: "b", OwnerID: "xyz"}, "owner", "objectid", "owner must be a valid id"},
		{"bad sort", &searchQuery{SortType: "up", Page: 1}, "sortType", "oneof", "sortType must be one of: asc desc"},
		{"page zero", &searchQuery{Page: 0}, "page", "min", "page must be at least 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateStruct(tt.input)
			if err == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			errs := err.Errors()
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(errs), err)
			}
			if errs[0].Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", errs[0].Field(), tt.wantField)
			}
			if errs[0].Tag() != tt.wantTag {
				t.Errorf("Tag() = %q, want %q", errs[0].Tag(), tt.wantTag)
			}
			if errs[0].Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", errs[0].Error(), tt.wantMsg)
			}
		})
	}
}

func TestRequestValidationError_Messages(t *testing.T) {
	t.Parallel()

	err := ValidateStruct(&playlistBody{})
	if err == nil {
		t.Fatal("expected validation error")
	}

	msgs := err.Messages()
	if len(msgs) != 2 {
		t.Fatalf("Messages() = %v, want 2 entries", msgs)
	}
	if msgs[0] != "name is required" || msgs[1] != "description is required" {
		t.Errorf("Messages() = %v", msgs)
	}
	if err.Error() != "name is required; description is required" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestIsObjectID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"64b7f0c2a1b2c3d4e5f60718", true},
		{"64B7F0C2A1B2C3D4E5F60718", true},
		{"64b7f0c2a1b2c3d4e5f6071", false},
		{"64b7f0c2a1b2c3d4e5f6071z", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsObjectID(tt.in); got != tt.want {
			t.Errorf("IsObjectID(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
