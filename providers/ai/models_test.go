package ai

import "testing"

func TestContentPartConstructors(t *testing.T) {
	tests := []struct {
		name         string
		buildPart    func() ContentPart
		wantType     ContentType
		wantText     string
		wantMimeType string
		wantData     string
		wantURI      string
	}{
		{
			name:      "NewTextPart sets Type and Text",
			buildPart: func() ContentPart { return NewTextPart("hello world") },
			wantType:  ContentTypeText,
			wantText:  "hello world",
		},
		{
			name:         "NewImagePart sets Type, MimeType, and Data",
			buildPart:    func() ContentPart { return NewImagePart("image/png", "base64img") },
			wantType:     ContentTypeImage,
			wantMimeType: "image/png",
			wantData:     "base64img",
		},
		{
			name:         "NewImagePartFromURI sets Type, MimeType, and URI",
			buildPart:    func() ContentPart { return NewImagePartFromURI("image/jpeg", "https://example.com/photo.jpg") },
			wantType:     ContentTypeImage,
			wantMimeType: "image/jpeg",
			wantURI:      "https://example.com/photo.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			part := tt.buildPart()
			if part.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", part.Type, tt.wantType)
			}
			if part.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", part.Text, tt.wantText)
			}
			if tt.wantMimeType == "" {
				if part.Image != nil {
					t.Errorf("Image = %+v, want nil", part.Image)
				}
				return
			}
			if part.Image == nil {
				t.Fatal("Image is nil")
			}
			if part.Image.MimeType != tt.wantMimeType {
				t.Errorf("MimeType = %q, want %q", part.Image.MimeType, tt.wantMimeType)
			}
			if part.Image.Data != tt.wantData {
				t.Errorf("Data = %q, want %q", part.Image.Data, tt.wantData)
			}
			if part.Image.URI != tt.wantURI {
				t.Errorf("URI = %q, want %q", part.Image.URI, tt.wantURI)
			}
		})
	}
}
