package models

import "testing"

func TestUpdateCommentRequest_TrimmedText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "Plain text", in: "updated comment", want: "updated comment"},
		{name: "Surrounding whitespace", in: "  updated  ", want: "updated"},
		{name: "Only whitespace", in: "   \t\n", want: ""},
		{name: "Empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := UpdateCommentRequest{UpdatedText: tt.in}
			if got := req.TrimmedText(); got != tt.want {
				t.Errorf("TrimmedText() = %q, want %q", got, tt.want)
			}
		})
	}
}
