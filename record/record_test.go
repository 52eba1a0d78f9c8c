package record

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/gobeaver/filesense"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		ft   filesense.FileType
		want string
	}{
		{
			name: "directory",
			ft:   filesense.Directory{},
			want: `{"status":"ok","output":"directory","score":1,"overwrite_reason":"none","dl":"undefined","type":"directory"}`,
		},
		{
			name: "symlink",
			ft:   filesense.Symlink{},
			want: `{"status":"ok","output":"symlink","score":1,"overwrite_reason":"none","dl":"undefined","type":"symlink"}`,
		},
		{
			name: "ruled",
			ft:   filesense.Ruled{ContentType: "png"},
			want: `{"status":"ok","output":"png","score":1,"overwrite_reason":"none","dl":"undefined","type":"file"}`,
		},
		{
			name: "inferred without overwrite",
			ft:   filesense.Inferred{InferredType: "python", Confidence: 0.75},
			want: `{"status":"ok","output":"python","score":0.75,"overwrite_reason":"none","dl":"undefined","type":"file"}`,
		},
		{
			name: "inferred low confidence",
			ft: filesense.Inferred{
				InferredType: "python",
				Confidence:   0.25,
				Overwrite:    &filesense.Overwrite{ContentType: filesense.LabelTxt, Reason: filesense.LowConfidence},
			},
			want: `{"status":"ok","output":"txt","score":0.25,"overwrite_reason":"low-confidence","dl":"python","type":"file"}`,
		},
		{
			name: "inferred overwrite map",
			ft: filesense.Inferred{
				InferredType: filesense.LabelRandomBytes,
				Confidence:   0.5,
				Overwrite:    &filesense.Overwrite{ContentType: filesense.LabelUnknown, Reason: filesense.OverwriteMap},
			},
			want: `{"status":"ok","output":"unknown","score":0.5,"overwrite_reason":"overwrite-map","dl":"randombytes","type":"file"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Encode(tt.ft); got != tt.want {
				t.Errorf("Encode() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestEncodeError(t *testing.T) {
	err := &filesense.PathError{Op: "identify", Path: "/missing", Err: filesense.ErrNotExist}

	got := EncodeError(err)
	want := `{"status":"error","message":"identify /missing: file does not exist"}`
	if got != want {
		t.Errorf("EncodeError() = %s, want %s", got, want)
	}
}

func TestEncodedRecordsAreFlat(t *testing.T) {
	for _, text := range []string{
		Encode(filesense.Ruled{ContentType: "pdf"}),
		EncodeError(errors.New(`quote " and newline` + "\n")),
	} {
		var fields map[string]any
		if err := json.Unmarshal([]byte(text), &fields); err != nil {
			t.Fatalf("record %s is not JSON: %v", text, err)
		}
		status, _ := fields["status"].(string)
		if status != StatusOK && status != StatusError {
			t.Errorf("status = %q", fields["status"])
		}
		for name, value := range fields {
			switch value.(type) {
			case map[string]any, []any:
				t.Errorf("field %s is nested", name)
			}
		}
	}
}

func TestEncodeErrorEscapesNul(t *testing.T) {
	got := EncodeError(errors.New("bad\x00name"))
	for i := 0; i < len(got); i++ {
		if got[i] == 0 {
			t.Fatalf("EncodeError() = %q contains a raw nul byte", got)
		}
	}
}

type unknownFileType struct{ filesense.Directory }

func TestFromFileTypeUnknownVariant(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("FromFileType() did not panic on an unknown variant")
		}
	}()
	FromFileType(unknownFileType{})
}
