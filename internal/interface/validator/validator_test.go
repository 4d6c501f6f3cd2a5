package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/interface/dto/request"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/apperror"
)

func TestCustomValidator_SetGrantRequest(t *testing.T) {
	v := NewCustomValidator()

	err := v.Validate(&request.SetGrantRequest{
		SubjectType: "user",
		SubjectID:   "6f1c1a1e-7a0e-4c56-8f8e-0f0a3c2b1d00",
		Access:      "comment",
	})
	require.NoError(t, err)

	err = v.Validate(&request.SetGrantRequest{
		SubjectType: "team",
		SubjectID:   "nope",
		Access:      "owner",
	})
	require.True(t, apperror.IsValidation(err))

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	fields := make([]string, 0, len(appErr.Details))
	for _, d := range appErr.Details {
		fields = append(fields, d.Field)
	}
	assert.ElementsMatch(t, []string{"subjectType", "subjectId", "access"}, fields)
}

func TestCustomValidator_CreateEntryRequest(t *testing.T) {
	v := NewCustomValidator()

	tests := []struct {
		name    string
		req     request.CreateEntryRequest
		wantErr bool
	}{
		{"room", request.CreateEntryRequest{Type: "room", Title: "Docs", RoomType: "custom"}, false},
		{"unknown room type", request.CreateEntryRequest{Type: "room", Title: "Docs", RoomType: "chat"}, true},
		{"unknown type", request.CreateEntryRequest{Type: "drive", Title: "Docs"}, true},
		{"slash in title", request.CreateEntryRequest{Type: "folder", Title: "a/b"}, true},
		{"dot title", request.CreateEntryRequest{Type: "folder", Title: ".."}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if tt.wantErr {
				assert.True(t, apperror.IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
