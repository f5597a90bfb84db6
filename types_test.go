package mdxconv

import (
	"errors"
	"testing"
	"time"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Format
		wantErr error
	}{
		{name: "pdf", input: "pdf", want: FormatPDF},
		{name: "docx", input: "docx", want: FormatDOCX},
		{name: "both", input: "both", want: FormatBoth},
		{name: "empty defaults to both", input: "", want: FormatBoth},
		{name: "case insensitive", input: "PDF", want: FormatPDF},
		{name: "unknown", input: "epub", wantErr: ErrInvalidFormat},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseFormat(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseFormat() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatIncludes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format   Format
		wantPDF  bool
		wantDOCX bool
	}{
		{FormatPDF, true, false},
		{FormatDOCX, false, true},
		{FormatBoth, true, true},
	}

	for _, tt := range tests {
		tt := tt
		if got := tt.format.IncludesPDF(); got != tt.wantPDF {
			t.Errorf("%v.IncludesPDF() = %v, want %v", tt.format, got, tt.wantPDF)
		}
		if got := tt.format.IncludesDOCX(); got != tt.wantDOCX {
			t.Errorf("%v.IncludesDOCX() = %v, want %v", tt.format, got, tt.wantDOCX)
		}
	}
}

func TestPageSettingsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		page    *PageSettings
		wantErr error
	}{
		{name: "nil means defaults", page: nil},
		{name: "defaults valid", page: DefaultPageSettings()},
		{name: "a4 landscape", page: &PageSettings{Size: "a4", Orientation: "landscape", Margin: 1.0}},
		{name: "case insensitive", page: &PageSettings{Size: "Letter", Orientation: "Portrait", Margin: 0.5}},
		{name: "bad size", page: &PageSettings{Size: "tabloid", Orientation: "portrait", Margin: 0.5}, wantErr: ErrInvalidPageSize},
		{name: "bad orientation", page: &PageSettings{Size: "a4", Orientation: "sideways", Margin: 0.5}, wantErr: ErrInvalidOrientation},
		{name: "margin too small", page: &PageSettings{Size: "a4", Orientation: "portrait", Margin: 0.1}, wantErr: ErrInvalidMargin},
		{name: "margin too large", page: &PageSettings{Size: "a4", Orientation: "portrait", Margin: 5}, wantErr: ErrInvalidMargin},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.page.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestWithTimeoutPanicsOnNonPositive(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("WithTimeout(0) did not panic")
		}
	}()
	WithTimeout(0)
}

func TestWithTimeoutSetsTimeout(t *testing.T) {
	t.Parallel()

	c := &Converter{}
	WithTimeout(2 * time.Minute)(c)
	if c.cfg.timeout != 2*time.Minute {
		t.Errorf("timeout = %v, want 2m", c.cfg.timeout)
	}
}
