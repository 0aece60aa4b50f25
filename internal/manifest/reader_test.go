package manifest

import (
	"context"
	"errors"
	"testing"

	"relver/internal/core"
)

func TestReader_ReadXML(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantErr error
	}{
		{
			name: "package.xml version element",
			content: `<?xml version="1.0"?>
<package format="2">
  <name>nav_core</name>
  <version>2.0.0</version>
  <description>Core navigation interfaces</description>
</package>`,
			want: "2.0.0",
		},
		{
			name:    "whitespace around value",
			content: `<package><version>  1.4.0 </version></package>`,
			want:    "1.4.0",
		},
		{
			name:    "first match wins",
			content: `<package><version>1.0.0</version><export><version>9.9.9</version></export></package>`,
			want:    "1.0.0",
		},
		{
			name:    "missing element",
			content: `<package><name>thing</name></package>`,
			wantErr: ErrFieldMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := core.NewMockFileSystem()
			fs.SetFile("package.xml", []byte(tt.content))

			got, err := NewReader(fs).Read(context.Background(), FileConfig{
				Path:   "package.xml",
				Format: FormatXML,
				Field:  "version",
			})

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReader_ReadXML_Malformed(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("package.xml", []byte(`<package><version>1.0`))

	_, err := NewReader(fs).Read(context.Background(), FileConfig{
		Path:   "package.xml",
		Format: FormatXML,
	})
	if err == nil {
		t.Fatal("expected error for malformed XML, got nil")
	}
}

func TestReader_ReadJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
		want    string
		wantErr bool
	}{
		{
			name:    "simple version",
			content: `{"name": "app", "version": "1.2.3"}`,
			field:   "version",
			want:    "1.2.3",
		},
		{
			name:    "nested field",
			content: `{"package": {"version": "2.0.0"}}`,
			field:   "package.version",
			want:    "2.0.0",
		},
		{
			name:    "field not found",
			content: `{"name": "app"}`,
			field:   "version",
			wantErr: true,
		},
		{
			name:    "non-string version",
			content: `{"version": 123}`,
			field:   "version",
			wantErr: true,
		},
		{
			name:    "invalid JSON",
			content: `{invalid`,
			field:   "version",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := core.NewMockFileSystem()
			fs.SetFile("package.json", []byte(tt.content))

			got, err := NewReader(fs).Read(context.Background(), FileConfig{
				Path:   "package.json",
				Format: FormatJSON,
				Field:  tt.field,
			})

			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReader_ReadYAML(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("Chart.yaml", []byte("apiVersion: v2\nname: mychart\nversion: 0.3.1\n"))

	got, err := NewReader(fs).Read(context.Background(), FileConfig{
		Path:   "Chart.yaml",
		Format: FormatYAML,
		Field:  "version",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "0.3.1" {
		t.Errorf("got %q, want %q", got, "0.3.1")
	}
}

func TestReader_ReadTOML(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("Cargo.toml", []byte("[package]\nname = \"app\"\nversion = \"0.9.0\"\n"))

	got, err := NewReader(fs).Read(context.Background(), FileConfig{
		Path:   "Cargo.toml",
		Format: FormatTOML,
		Field:  "package.version",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "0.9.0" {
		t.Errorf("got %q, want %q", got, "0.9.0")
	}
}

func TestReader_MissingFile(t *testing.T) {
	fs := core.NewMockFileSystem()

	_, err := NewReader(fs).Read(context.Background(), FileConfig{
		Path:   "package.xml",
		Format: FormatXML,
	})
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestFormat_IsValid(t *testing.T) {
	tests := []struct {
		format Format
		want   bool
	}{
		{FormatXML, true},
		{FormatJSON, true},
		{FormatYAML, true},
		{FormatTOML, true},
		{FormatRaw, true},
		{Format("ini"), false},
		{Format(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			if got := tt.format.IsValid(); got != tt.want {
				t.Errorf("Format(%q).IsValid() = %v, want %v", tt.format, got, tt.want)
			}
		})
	}
}
