package filesense

// FileType is the outcome of classifying one input. It is one of
// [Directory], [Symlink], [Ruled] or [Inferred].
type FileType interface {
	// Info describes the content type the outcome resolves to
	Info() TypeInfo

	// Score is the confidence of the outcome
	Score() float32

	fileType()
}

// OverwriteReason explains why a model prediction was replaced
type OverwriteReason int

const (
	// None means the model prediction was kept
	None OverwriteReason = iota

	// LowConfidence means the prediction scored below the threshold
	LowConfidence

	// OverwriteMap means the prediction is remapped by a fixed policy
	OverwriteMap
)

// String returns the wire form of the reason
func (r OverwriteReason) String() string {
	switch r {
	case LowConfidence:
		return "low-confidence"
	case OverwriteMap:
		return "overwrite-map"
	default:
		return "none"
	}
}

// Directory is reported for directories; no content is inspected.
type Directory struct{}

func (Directory) Info() TypeInfo { return LabelDirectory.Info() }
func (Directory) Score() float32 { return 1.0 }
func (Directory) fileType()      {}

// Symlink is reported for symbolic links that are not followed.
type Symlink struct{}

func (Symlink) Info() TypeInfo { return LabelSymlink.Info() }
func (Symlink) Score() float32 { return 1.0 }
func (Symlink) fileType()      {}

// Ruled is a content type determined by a deterministic rule.
type Ruled struct {
	ContentType ContentType
}

func (r Ruled) Info() TypeInfo { return r.ContentType.Info() }
func (Ruled) Score() float32   { return 1.0 }
func (Ruled) fileType()        {}

// Overwrite records the content type that replaced a model prediction.
type Overwrite struct {
	ContentType ContentType
	Reason      OverwriteReason
}

// Inferred is a content type predicted by the model.
type Inferred struct {
	// InferredType is the raw model prediction
	InferredType ContentType

	// Confidence is the model score for InferredType
	Confidence float32

	// Overwrite is set when the prediction was replaced
	Overwrite *Overwrite
}

// ContentType returns the content type the prediction resolves to.
func (i Inferred) ContentType() ContentType {
	if i.Overwrite != nil {
		return i.Overwrite.ContentType
	}
	return i.InferredType
}

// Reason returns the overwrite reason, None when the prediction was kept.
func (i Inferred) Reason() OverwriteReason {
	if i.Overwrite == nil {
		return None
	}
	return i.Overwrite.Reason
}

func (i Inferred) Info() TypeInfo { return i.ContentType().Info() }
func (i Inferred) Score() float32 { return i.Confidence }
func (Inferred) fileType()        {}
