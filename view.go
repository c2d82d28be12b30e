package pdfx

// Region identifies an area of the View that has its own loading and
// error indicators.
type Region int

// Region constants.
const (
	RegionUpload Region = iota
	RegionExtract
)

// String returns the lowercase name of the region.
func (r Region) String() string {
	switch r {
	case RegionUpload:
		return "upload"
	case RegionExtract:
		return "extract"
	default:
		return "unknown"
	}
}

// View presents controller state to the user.
// Implementations must be safe for concurrent use: error dismissal runs
// on timer goroutines.
type View interface {
	ShowLoading(region Region)
	HideLoading(region Region)

	// ShowError displays message in the region until HideError is called.
	ShowError(region Region, message string)
	HideError(region Region)

	// ShowFile displays a summary of the uploaded file.
	ShowFile(f *File)

	// ShowResult displays the rendered extraction output.
	ShowResult(text string)

	// ShowCopied acknowledges a successful copy to the clipboard.
	ShowCopied()

	// Reset restores the initial presentation.
	Reset()
}
