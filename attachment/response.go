// SPDX-FileCopyrightText: Copyright 2026 AgentKit authors
// SPDX-License-Identifier: Apache-2.0

package attachment

// MetadataFilesKey is the response metadata key holding the attachments array.
const MetadataFilesKey = "files"

// Response is the portion of an LLM response this package cares about:
// free-form content plus the provider's metadata object.
type Response struct {
	// Content is the textual response body.
	Content string

	// Metadata is the decoded response metadata, if any.
	Metadata map[string]any
}

// Files returns the attachments found in the response metadata.
//
// It scans Metadata["files"], decoding each element and silently skipping
// elements that do not decode as attachments (including non-object
// elements). Order of the successfully decoded attachments is preserved.
// A missing or ill-typed "files" entry yields no attachments.
func (r *Response) Files() []Attachment {
	elements, ok := r.Metadata[MetadataFilesKey].([]any)
	if !ok {
		return nil
	}

	files := make([]Attachment, 0, len(elements))
	for _, element := range elements {
		if a, ok := Decode(element); ok {
			files = append(files, *a)
		}
	}
	return files
}
