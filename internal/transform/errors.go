package transform

import "fmt"

// Kind classifies where in the pipeline a transform failed.
type Kind int

const (
	// KindDecode means the upload could not be parsed as an image.
	KindDecode Kind = iota
	// KindInference means the external collaborator call failed or
	// returned malformed output.
	KindInference
	// KindEncode means the result could not be serialized.
	KindEncode
)

// String returns the kind label used in logs and history records.
func (k Kind) String() string {
	switch k {
	case KindDecode:
		return "decode"
	case KindInference:
		return "inference"
	case KindEncode:
		return "encode"
	default:
		return "unknown"
	}
}

// Error is a classified transform failure. Every pipeline error is caught
// and wrapped so the gateway always returns a structured response; nothing
// propagates as a raw fault.
type Error struct {
	Kind Kind
	Err  error
}

// Error implements the error interface, keeping the underlying message
// visible for diagnosis.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}
