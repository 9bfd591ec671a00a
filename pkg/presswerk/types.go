package presswerk

import "strings"

// Platform identifies a target operating system the contract layer can be
// compiled for. The set is closed; adding a platform is an ABI change.
type Platform int

const (
	Linux Platform = iota
	MacOS
	IOS
	Android
	WASM
)

// String returns the platform name.
func (p Platform) String() string {
	switch p {
	case Linux:
		return "linux"
	case MacOS:
		return "macos"
	case IOS:
		return "ios"
	case Android:
		return "android"
	case WASM:
		return "wasm"
	default:
		return "unknown"
	}
}

// PointerWidth returns the native pointer width in bytes: 4 on WASM, 8 on
// every 64-bit platform.
func (p Platform) PointerWidth() uintptr {
	if p == WASM {
		return 4
	}
	return 8
}

// AllPlatforms returns the closed platform set. The internalcheck suite
// verifies the slice stays in sync with the declared constants.
func AllPlatforms() []Platform {
	return []Platform{Linux, MacOS, IOS, Android, WASM}
}

// Result is the status code every boundary call returns. Codes are stable
// wire values shared with the C header; they must never be renumbered.
type Result int32

const (
	ResultOk Result = iota
	ResultError
	ResultInvalidParam
	ResultOutOfMemory
	ResultNullPointer
	ResultUnsupported
)

// Code returns the wire code for the result. The mapping is total: a value
// outside the closed set degrades to the generic error code rather than
// failing.
func (r Result) Code() uint32 {
	if r < ResultOk || r > ResultUnsupported {
		return uint32(ResultError)
	}
	return uint32(r)
}

// ResultFromCode maps a wire code back to a Result. Unrecognized codes map
// to ResultError; the reverse direction never fails.
func ResultFromCode(code uint32) Result {
	if code > uint32(ResultUnsupported) {
		return ResultError
	}
	return Result(code)
}

func (r Result) String() string {
	switch r {
	case ResultOk:
		return "ok"
	case ResultError:
		return "error"
	case ResultInvalidParam:
		return "invalid parameter"
	case ResultOutOfMemory:
		return "out of memory"
	case ResultNullPointer:
		return "null pointer"
	case ResultUnsupported:
		return "unsupported"
	default:
		return "error"
	}
}

// AllResults returns the closed result set.
func AllResults() []Result {
	return []Result{
		ResultOk,
		ResultError,
		ResultInvalidParam,
		ResultOutOfMemory,
		ResultNullPointer,
		ResultUnsupported,
	}
}

// JobStatus is a print job lifecycle state. Wire codes are injective over
// the closed set: distinct statuses always carry distinct codes.
type JobStatus int

const (
	StatusPending JobStatus = iota
	StatusProcessing
	StatusCompleted
	StatusFailed
	StatusCancelled
	StatusHeld
)

// StatusUnknown is the sentinel returned when decoding an unmapped wire
// code. It is not a member of the closed set and has no legal transitions.
const StatusUnknown JobStatus = 0xFF

// Code returns the wire code for the status. Unknown values degrade to the
// StatusUnknown code.
func (s JobStatus) Code() uint32 {
	if s < StatusPending || s > StatusHeld {
		return uint32(StatusUnknown)
	}
	return uint32(s)
}

// StatusFromCode maps a wire code back to a JobStatus. Unmapped codes yield
// StatusUnknown rather than an error.
func StatusFromCode(code uint32) JobStatus {
	if code > uint32(StatusHeld) {
		return StatusUnknown
	}
	return JobStatus(code)
}

func (s JobStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusProcessing:
		return "processing"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	case StatusCancelled:
		return "cancelled"
	case StatusHeld:
		return "held"
	default:
		return "unknown"
	}
}

// ParseJobStatus resolves a status by its lowercase name.
func ParseJobStatus(name string) (JobStatus, bool) {
	for _, s := range AllJobStatuses() {
		if s.String() == strings.ToLower(name) {
			return s, true
		}
	}
	return StatusUnknown, false
}

// AllJobStatuses returns the closed status set, excluding the StatusUnknown
// sentinel.
func AllJobStatuses() []JobStatus {
	return []JobStatus{
		StatusPending,
		StatusProcessing,
		StatusCompleted,
		StatusFailed,
		StatusCancelled,
		StatusHeld,
	}
}

// DocType is a supported input document format.
type DocType int

const (
	DocPDF DocType = iota
	DocJPEG
	DocPNG
	DocTIFF
	DocPlainText
	// DocNativeDelegate marks formats handed to the OS print dialog
	// (DOCX, XLS, ...) instead of being rendered by Presswerk.
	DocNativeDelegate
)

// MIMEType returns the fixed MIME string used for IPP Content-Type.
func (d DocType) MIMEType() string {
	switch d {
	case DocPDF:
		return "application/pdf"
	case DocJPEG:
		return "image/jpeg"
	case DocPNG:
		return "image/png"
	case DocTIFF:
		return "image/tiff"
	case DocPlainText:
		return "text/plain"
	case DocNativeDelegate:
		return "application/octet-stream"
	default:
		return "application/octet-stream"
	}
}

// Code returns the wire code for the document type.
func (d DocType) Code() uint32 {
	if d < DocPDF || d > DocNativeDelegate {
		return uint32(DocNativeDelegate)
	}
	return uint32(d)
}

// DocTypeFromExtension infers the document type from a file extension
// (without the dot). Unknown extensions report false.
func DocTypeFromExtension(ext string) (DocType, bool) {
	switch strings.ToLower(ext) {
	case "pdf":
		return DocPDF, true
	case "jpg", "jpeg":
		return DocJPEG, true
	case "png":
		return DocPNG, true
	case "tif", "tiff":
		return DocTIFF, true
	case "txt":
		return DocPlainText, true
	case "docx", "doc", "xlsx", "xls", "pptx", "ppt", "odt", "ods":
		return DocNativeDelegate, true
	default:
		return DocNativeDelegate, false
	}
}

// AllDocTypes returns the closed document type set.
func AllDocTypes() []DocType {
	return []DocType{DocPDF, DocJPEG, DocPNG, DocTIFF, DocPlainText, DocNativeDelegate}
}

// PaperSize is a named paper size or a custom width/height in millimetres.
type PaperSize struct {
	name             string
	widthMM, heightMM uint32
}

var (
	A4      = PaperSize{"iso_a4_210x297mm", 210, 297}
	A3      = PaperSize{"iso_a3_297x420mm", 297, 420}
	A5      = PaperSize{"iso_a5_148x210mm", 148, 210}
	Letter  = PaperSize{"na_letter_8.5x11in", 216, 279}
	Legal   = PaperSize{"na_legal_8.5x14in", 216, 356}
	Tabloid = PaperSize{"na_ledger_11x17in", 279, 432}
)

// CustomPaper builds a custom paper size from millimetre dimensions.
func CustomPaper(widthMM, heightMM uint32) PaperSize {
	return PaperSize{"custom", widthMM, heightMM}
}

// Dimensions returns (width, height) in millimetres.
func (p PaperSize) Dimensions() (uint32, uint32) {
	return p.widthMM, p.heightMM
}

// IPPMediaKeyword returns the RFC 8011 media keyword. Custom sizes report
// "custom" and need dimension attributes alongside.
func (p PaperSize) IPPMediaKeyword() string {
	if p.name == "" {
		return "custom"
	}
	return p.name
}

// DuplexMode selects single or double sided printing.
type DuplexMode int

const (
	Simplex DuplexMode = iota
	LongEdge
	ShortEdge
)

// IPPSidesKeyword returns the RFC 8011 sides keyword.
func (d DuplexMode) IPPSidesKeyword() string {
	switch d {
	case LongEdge:
		return "two-sided-long-edge"
	case ShortEdge:
		return "two-sided-short-edge"
	default:
		return "one-sided"
	}
}

// Orientation is the requested page orientation.
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
	ReversePortrait
	ReverseLandscape
)

// IPPEnumValue returns the RFC 8011 orientation-requested enum value.
func (o Orientation) IPPEnumValue() int32 {
	switch o {
	case Landscape:
		return 4
	case ReversePortrait:
		return 5
	case ReverseLandscape:
		return 6
	default:
		return 3
	}
}

// PageRange selects an inclusive page interval.
type PageRange struct {
	Start uint32
	End   uint32
}

// PrintSettings carries the per-job print options.
type PrintSettings struct {
	Copies      uint32
	Paper       PaperSize
	Duplex      DuplexMode
	Orientation Orientation
	Color       bool
	Pages       *PageRange
	ScaleToFit  bool
}

// DefaultPrintSettings returns one A4 simplex colour copy, scaled to fit.
func DefaultPrintSettings() PrintSettings {
	return PrintSettings{
		Copies:     1,
		Paper:      A4,
		Color:      true,
		ScaleToFit: true,
	}
}
