// Package record renders classification outcomes and failures as the flat
// JSON records handed across the C boundary.
//
// A success record always carries six fields:
//
//	{"status":"ok","output":"png","score":1,"overwrite_reason":"none","dl":"undefined","type":"file"}
//
// and a failure record two:
//
//	{"status":"error","message":"identify /missing: file does not exist"}
//
// The message is meant for display only.
package record

import (
	"encoding/json"
	"fmt"

	"github.com/gobeaver/filesense"
)

// Status values
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Entry kinds reported in the type field
const (
	TypeDirectory = "directory"
	TypeSymlink   = "symlink"
	TypeFile      = "file"
)

// Prediction is the success record
type Prediction struct {
	Status          string  `json:"status"`
	Output          string  `json:"output"`
	Score           float32 `json:"score"`
	OverwriteReason string  `json:"overwrite_reason"`
	DL              string  `json:"dl"`
	Type            string  `json:"type"`
}

// Failure is the error record
type Failure struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// FromFileType maps a classification outcome to its success record
func FromFileType(ft filesense.FileType) Prediction {
	p := Prediction{
		Status:          StatusOK,
		Output:          ft.Info().Label,
		Score:           ft.Score(),
		OverwriteReason: filesense.None.String(),
		DL:              string(filesense.LabelUndefined),
		Type:            TypeFile,
	}

	switch v := ft.(type) {
	case filesense.Directory:
		p.Type = TypeDirectory
	case filesense.Symlink:
		p.Type = TypeSymlink
	case filesense.Ruled:
	case filesense.Inferred:
		if v.Overwrite != nil {
			p.OverwriteReason = v.Overwrite.Reason.String()
			p.DL = string(v.InferredType)
		}
	default:
		panic(fmt.Sprintf("record: unhandled file type %T", ft))
	}
	return p
}

// FromError maps an engine failure to its error record
func FromError(err error) Failure {
	return Failure{
		Status:  StatusError,
		Message: err.Error(),
	}
}

// Encode renders the success record for ft. The record has a fixed shape, so
// a marshal failure is a programming error and panics.
func Encode(ft filesense.FileType) string {
	return mustMarshal(FromFileType(ft))
}

// EncodeError renders the error record for err
func EncodeError(err error) string {
	return mustMarshal(FromError(err))
}

func mustMarshal(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("record: marshal %T: %v", v, err))
	}
	return string(b)
}
