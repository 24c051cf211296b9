// SPDX-FileCopyrightText: Copyright 2026 AgentKit authors
// SPDX-License-Identifier: Apache-2.0

package attachment

import (
	"encoding/base64"
	"net/url"
)

// JSON field names for the wire form of an attachment.
const (
	fieldName     = "name"
	fieldMIMEType = "mimeType"
	fieldData     = "data"
	fieldURL      = "url"
)

// Attachment is a file attached to an LLM response. All fields are
// optional; a zero value means the field was absent on the wire.
type Attachment struct {
	// Name is the suggested file name.
	Name string

	// MIMEType is the declared media type, e.g. "image/png".
	MIMEType string

	// Data is the decoded payload. On the wire it is standard base64.
	Data []byte

	// URL locates the file when the payload is not inlined.
	URL *url.URL
}

// Decode builds an Attachment from a decoded generic JSON value.
//
// It returns (nil, false) when v is not a JSON object. Each field is
// decoded independently: a missing field, a field of the wrong JSON type,
// invalid base64 in "data", or an unparsable "url" leaves that one field
// absent rather than failing the decode.
func Decode(v any) (*Attachment, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}

	var a Attachment
	if name, ok := obj[fieldName].(string); ok {
		a.Name = name
	}
	if mimeType, ok := obj[fieldMIMEType].(string); ok {
		a.MIMEType = mimeType
	}
	if encoded, ok := obj[fieldData].(string); ok {
		if data, err := base64.StdEncoding.DecodeString(encoded); err == nil {
			a.Data = data
		}
	}
	if raw, ok := obj[fieldURL].(string); ok {
		if u, err := url.Parse(raw); err == nil {
			a.URL = u
		}
	}
	return &a, true
}

// Encode returns the wire form of the attachment as a generic JSON object.
// Absent fields are omitted, so Decode(Encode(a)) round-trips for any
// combination of present fields, including none.
func (a *Attachment) Encode() map[string]any {
	obj := make(map[string]any)
	if a.Name != "" {
		obj[fieldName] = a.Name
	}
	if a.MIMEType != "" {
		obj[fieldMIMEType] = a.MIMEType
	}
	if len(a.Data) > 0 {
		obj[fieldData] = base64.StdEncoding.EncodeToString(a.Data)
	}
	if a.URL != nil {
		obj[fieldURL] = a.URL.String()
	}
	return obj
}
