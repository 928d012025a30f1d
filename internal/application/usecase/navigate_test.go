package usecase

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/void-browser/void/internal/application/port"
	"github.com/void-browser/void/internal/domain/entity"
	"github.com/void-browser/void/internal/domain/url"
)

type staticCurrent struct{ s port.Surface }

func (c staticCurrent) Current() port.Surface { return c.s }

func TestNavigateToURL(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		name     string
		input    string
		expected string
		loads    int
		wantErr  error
	}{
		{name: "bare domain gets https", input: "example.com", expected: "https://example.com", loads: 1},
		{name: "full url kept", input: "http://example.com/a", expected: "http://example.com/a", loads: 1},
		{name: "relative local file", input: "./local.html", expected: url.FileURL(filepath.Join(root, "local.html")), loads: 1},
		{name: "empty is no-op", input: "", expected: "", loads: 0},
		{name: "blank is no-op", input: "   ", expected: "", loads: 0},
		{name: "escaping path rejected", input: "../../../etc/passwd", loads: 0, wantErr: url.ErrPathEscapesRoot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &fakeSurface{uri: "https://before.example"}
			uc := NewNavigateUseCase(staticCurrent{s}, root)

			got, err := uc.NavigateToURL(context.Background(), tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}

			assert.Len(t, s.loads, tt.loads)
			if tt.loads == 0 {
				assert.Equal(t, "https://before.example", s.URI())
			} else {
				assert.Equal(t, tt.expected, s.URI())
			}
		})
	}
}

func TestNavigateToURL_NoActiveTab(t *testing.T) {
	uc := NewNavigateUseCase(staticCurrent{}, t.TempDir())
	_, err := uc.NavigateToURL(context.Background(), "example.com")
	assert.ErrorIs(t, err, ErrNoActiveTab)
}

func TestHomeURL(t *testing.T) {
	root := t.TempDir()
	uc := NewNavigateUseCase(staticCurrent{}, root)
	start := url.FileURL(filepath.Join(root, "void-hub", "index.html"))

	s := entity.DefaultSettings()
	assert.Equal(t, start, uc.HomeURL(s))

	s.Homepage = entity.HomepageURL
	s.HomepageURL = "example.org"
	assert.Equal(t, "https://example.org", uc.HomeURL(s))

	s.Homepage = entity.HomepageCustom
	s.HomepageURL = ""
	assert.Equal(t, start, uc.HomeURL(s))
}
