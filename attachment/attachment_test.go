// SPDX-FileCopyrightText: Copyright 2026 AgentKit authors
// SPDX-License-Identifier: Apache-2.0

package attachment

import (
	"encoding/base64"
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestDecode(t *testing.T) {
	t.Parallel()

	payload := []byte("hello attachment")
	encoded := base64.StdEncoding.EncodeToString(payload)

	tests := []struct {
		name   string
		input  any
		want   *Attachment
		wantOK bool
	}{
		{
			name: "all fields present",
			input: map[string]any{
				"name":     "report.pdf",
				"mimeType": "application/pdf",
				"data":     encoded,
				"url":      "https://files.example.com/report.pdf",
			},
			want: &Attachment{
				Name:     "report.pdf",
				MIMEType: "application/pdf",
				Data:     payload,
				URL:      mustURL(t, "https://files.example.com/report.pdf"),
			},
			wantOK: true,
		},
		{
			name:   "empty object",
			input:  map[string]any{},
			want:   &Attachment{},
			wantOK: true,
		},
		{
			name: "bad base64 degrades data only",
			input: map[string]any{
				"name": "report.pdf",
				"data": "!!! not base64 !!!",
			},
			want:   &Attachment{Name: "report.pdf"},
			wantOK: true,
		},
		{
			name: "unparsable url degrades url only",
			input: map[string]any{
				"mimeType": "image/png",
				"url":      "://missing-scheme",
			},
			want:   &Attachment{MIMEType: "image/png"},
			wantOK: true,
		},
		{
			name: "wrong field types degrade individually",
			input: map[string]any{
				"name":     42,
				"mimeType": true,
				"data":     []any{"x"},
				"url":      "https://files.example.com/ok",
			},
			want:   &Attachment{URL: mustURL(t, "https://files.example.com/ok")},
			wantOK: true,
		},
		{
			name: "unknown fields ignored",
			input: map[string]any{
				"name":  "a.txt",
				"extra": "ignored",
			},
			want:   &Attachment{Name: "a.txt"},
			wantOK: true,
		},
		{name: "string value", input: "not an object", wantOK: false},
		{name: "array value", input: []any{"x"}, wantOK: false},
		{name: "number value", input: 3.14, wantOK: false},
		{name: "nil value", input: nil, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Decode(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Attachment
	}{
		{name: "all absent", in: Attachment{}},
		{name: "name only", in: Attachment{Name: "a.txt"}},
		{name: "mime only", in: Attachment{MIMEType: "text/plain"}},
		{name: "data only", in: Attachment{Data: []byte{0x00, 0x01, 0xFF}}},
		{
			name: "url only",
			in:   Attachment{URL: func() *url.URL { u, _ := url.Parse("https://files.example.com/a"); return u }()},
		},
		{
			name: "everything",
			in: Attachment{
				Name:     "image.png",
				MIMEType: "image/png",
				Data:     []byte("binary-ish \x00 payload"),
				URL:      func() *url.URL { u, _ := url.Parse("https://files.example.com/image.png"); return u }(),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			decoded, ok := Decode(tt.in.Encode())
			require.True(t, ok)
			assert.Equal(t, &tt.in, decoded)
		})
	}
}

// Encode output must survive a real JSON marshal/unmarshal cycle, since
// that is how it travels on the wire.
func TestEncodeThroughJSON(t *testing.T) {
	t.Parallel()

	in := Attachment{
		Name:     "notes.md",
		MIMEType: "text/markdown",
		Data:     []byte("# notes"),
		URL:      mustURL(t, "https://files.example.com/notes.md"),
	}

	raw, err := json.Marshal(in.Encode())
	require.NoError(t, err)

	var value any
	require.NoError(t, json.Unmarshal(raw, &value))

	decoded, ok := Decode(value)
	require.True(t, ok)
	assert.Equal(t, &in, decoded)
}

func TestResponseFiles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		metadata map[string]any
		want     []string // expected attachment names, in order
	}{
		{
			name: "valid list",
			metadata: map[string]any{
				"files": []any{
					map[string]any{"name": "first.txt"},
					map[string]any{"name": "second.txt"},
				},
			},
			want: []string{"first.txt", "second.txt"},
		},
		{
			name: "invalid elements skipped in order",
			metadata: map[string]any{
				"files": []any{
					map[string]any{"name": "first.txt"},
					"not an object",
					42,
					nil,
					map[string]any{"name": "second.txt"},
					[]any{"nested array"},
				},
			},
			want: []string{"first.txt", "second.txt"},
		},
		{name: "no metadata", metadata: nil, want: nil},
		{name: "no files key", metadata: map[string]any{"other": "x"}, want: nil},
		{name: "files not an array", metadata: map[string]any{"files": "nope"}, want: nil},
		{name: "empty files array", metadata: map[string]any{"files": []any{}}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := &Response{Content: "done", Metadata: tt.metadata}
			files := r.Files()

			if tt.want == nil {
				assert.Empty(t, files)
				return
			}
			names := make([]string, 0, len(files))
			for _, f := range files {
				names = append(names, f.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}
