package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteErrorFormatting(t *testing.T) {
	err := New(CategoryPrecondition, SeverityFatal, "output location is not empty")
	assert.Equal(t, "precondition (fatal): output location is not empty", err.Error())

	wrapped := Wrap(fmt.Errorf("disk full"), CategoryFileSystem, SeverityFatal, "failed to write site")
	assert.Equal(t, "filesystem (fatal): failed to write site: disk full", wrapped.Error())
}

func TestSiteErrorUnwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(cause, CategoryTemplate, SeverityFatal, "render failed")
	assert.ErrorIs(t, err, cause)

	var se *SiteError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, CategoryTemplate, se.Category)
}

func TestWithContext(t *testing.T) {
	err := New(CategoryTemplate, SeverityFatal, "render failed").
		WithContext("template", "toc").
		WithContext("sections", 2)
	assert.Equal(t, "toc", err.Context["template"])
	assert.Equal(t, 2, err.Context["sections"])
}

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain error", stderrors.New("x"), 1},
		{"validation", New(CategoryValidation, SeverityFatal, "x"), 2},
		{"config", New(CategoryConfig, SeverityFatal, "x"), 7},
		{"precondition", New(CategoryPrecondition, SeverityFatal, "x"), 8},
		{"tool", New(CategoryTool, SeverityFatal, "x"), 8},
		{"filesystem", New(CategoryFileSystem, SeverityFatal, "x"), 11},
		{"template", New(CategoryTemplate, SeverityFatal, "x"), 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFor(tt.err))
		})
	}
}
