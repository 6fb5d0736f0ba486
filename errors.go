package imagetorque

import "github.com/source-alchemists/imagetorque/internal/ierr"

// Kind categorises what went wrong with an imagetorque operation.
type Kind = ierr.Kind

const (
	InvalidArgument   = ierr.InvalidArgument
	ShapeMismatch     = ierr.ShapeMismatch
	UnsupportedFormat = ierr.UnsupportedFormat
	InvalidData       = ierr.InvalidData
	IoFailure         = ierr.IoFailure
	Disposed          = ierr.Disposed
)

// Error is the sum type every imagetorque failure surfaces as.
type Error = ierr.Error

// IsKind reports whether err is an *Error of the given kind, anywhere in
// its causal chain.
func IsKind(err error, kind Kind) bool {
	return ierr.Is(err, kind)
}
