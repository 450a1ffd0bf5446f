package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeMalformedRow, "line %d: expected 6 columns, got %d", 3, 2)

	if err.Code != ErrCodeMalformedRow {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeMalformedRow)
	}

	if err.Message != "line 3: expected 6 columns, got 2" {
		t.Errorf("Message = %v, want %v", err.Message, "line 3: expected 6 columns, got 2")
	}

	expected := "MALFORMED_ROW: line 3: expected 6 columns, got 2"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeIO, cause, "write out.graphml")

	if err.Code != ErrCodeIO {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeIO)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	want := "IO_ERROR: write out.graphml: underlying error"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapPreservesSentinel(t *testing.T) {
	err := Wrap(ErrCodeFileNotFound, fs.ErrNotExist, "open graph.csv")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("wrapped fs.ErrNotExist should still match")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidDistance, "test"),
			code:     ErrCodeInvalidDistance,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidDistance, "test"),
			code:     ErrCodeMalformedRow,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeBrokenPath, New(ErrCodeUnresolvedNode, "inner"), "outer"),
			code:     ErrCodeBrokenPath,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeUnresolvedNode, "test"),
			expected: ErrCodeUnresolvedNode,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidInput, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "Error with cause",
			err:      Wrap(ErrCodeIO, errors.New("disk full"), "write out.svg"),
			expected: "write out.svg: disk full",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestHint(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"unresolved", New(ErrCodeUnresolvedNode, "GHOST"), "--placeholders"},
		{"wrapped", fmt.Errorf("render: %w", New(ErrCodeBrokenPath, "X")), "--path-mode distance"},
		{"no hint", New(ErrCodeIO, "disk"), ""},
		{"plain", errors.New("plain"), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hint(tt.err)
			if tt.want == "" {
				if got != "" {
					t.Errorf("Hint() = %q, want none", got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("Hint() = %q, want it to mention %q", got, tt.want)
			}
		})
	}
}
