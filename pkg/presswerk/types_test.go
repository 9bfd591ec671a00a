package presswerk

import "testing"

func TestResultCodeRoundTrip(t *testing.T) {
	for _, r := range AllResults() {
		if got := ResultFromCode(r.Code()); got != r {
			t.Errorf("ResultFromCode(%d) = %v, want %v", r.Code(), got, r)
		}
	}
}

func TestResultFromUnknownCode(t *testing.T) {
	for _, code := range []uint32{6, 42, 0xFFFF, 0xFFFFFFFF} {
		if got := ResultFromCode(code); got != ResultError {
			t.Errorf("ResultFromCode(%d) = %v, want generic error", code, got)
		}
	}
}

func TestJobStatusCodesInjective(t *testing.T) {
	seen := map[uint32]JobStatus{}
	for _, s := range AllJobStatuses() {
		code := s.Code()
		if prev, dup := seen[code]; dup {
			t.Errorf("statuses %v and %v share code %d", prev, s, code)
		}
		seen[code] = s
		if got := StatusFromCode(code); got != s {
			t.Errorf("StatusFromCode(%d) = %v, want %v", code, got, s)
		}
	}
}

func TestStatusFromUnmappedCode(t *testing.T) {
	for _, code := range []uint32{6, 100, 0xFF, 0xFFFFFFFF} {
		if got := StatusFromCode(code); got != StatusUnknown {
			t.Errorf("StatusFromCode(%d) = %v, want StatusUnknown", code, got)
		}
	}
	if StatusUnknown.String() != "unknown" {
		t.Errorf("StatusUnknown.String() = %q", StatusUnknown.String())
	}
}

func TestParseJobStatus(t *testing.T) {
	for _, s := range AllJobStatuses() {
		got, ok := ParseJobStatus(s.String())
		if !ok || got != s {
			t.Errorf("ParseJobStatus(%q) = %v, %v", s.String(), got, ok)
		}
	}
	if _, ok := ParseJobStatus("retry-pending"); ok {
		t.Error("ParseJobStatus accepted a status outside the closed set")
	}
}

func TestHandleFromRaw(t *testing.T) {
	if _, ok := HandleFromRaw(0); ok {
		t.Error("zero must never construct a valid handle")
	}
	h, ok := HandleFromRaw(42)
	if !ok || h == NullHandle {
		t.Errorf("HandleFromRaw(42) = %v, %v", h, ok)
	}
}

func TestPlatformPointerWidth(t *testing.T) {
	for _, p := range AllPlatforms() {
		want := uintptr(8)
		if p == WASM {
			want = 4
		}
		if got := p.PointerWidth(); got != want {
			t.Errorf("%v.PointerWidth() = %d, want %d", p, got, want)
		}
	}
}

func TestDocTypeMIME(t *testing.T) {
	want := map[DocType]string{
		DocPDF:            "application/pdf",
		DocJPEG:           "image/jpeg",
		DocPNG:            "image/png",
		DocTIFF:           "image/tiff",
		DocPlainText:      "text/plain",
		DocNativeDelegate: "application/octet-stream",
	}
	for d, mime := range want {
		if got := d.MIMEType(); got != mime {
			t.Errorf("%d.MIMEType() = %q, want %q", d, got, mime)
		}
	}
}

func TestDocTypeFromExtension(t *testing.T) {
	if d, ok := DocTypeFromExtension("PDF"); !ok || d != DocPDF {
		t.Errorf("DocTypeFromExtension(PDF) = %v, %v", d, ok)
	}
	if d, ok := DocTypeFromExtension("docx"); !ok || d != DocNativeDelegate {
		t.Errorf("DocTypeFromExtension(docx) = %v, %v", d, ok)
	}
	if _, ok := DocTypeFromExtension("exe"); ok {
		t.Error("DocTypeFromExtension accepted an unknown extension")
	}
}

func TestPaperSizeDimensions(t *testing.T) {
	w, h := A4.Dimensions()
	if w != 210 || h != 297 {
		t.Errorf("A4 = %dx%d mm, want 210x297", w, h)
	}
	w, h = Letter.Dimensions()
	if w != 216 || h != 279 {
		t.Errorf("Letter = %dx%d mm, want 216x279", w, h)
	}
	w, h = CustomPaper(100, 200).Dimensions()
	if w != 100 || h != 200 {
		t.Errorf("custom = %dx%d mm, want 100x200", w, h)
	}
	if CustomPaper(1, 1).IPPMediaKeyword() != "custom" {
		t.Error("custom paper must report the custom keyword")
	}
	if A4.IPPMediaKeyword() != "iso_a4_210x297mm" {
		t.Errorf("A4 keyword = %q", A4.IPPMediaKeyword())
	}
}
