package filesense

import (
	"errors"
	"io/fs"
	"testing"
)

func TestPathErrorMapping(t *testing.T) {
	s := newTestSession(t)

	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"not exist", fs.ErrNotExist, IsNotExist},
		{"permission", fs.ErrPermission, IsPermission},
		{"other", errors.New("disk on fire"), func(err error) bool {
			return !IsNotExist(err) && !IsPermission(err)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.pathError("/some/file", &fs.PathError{Op: "open", Path: "/some/file", Err: tt.err})
			if !tt.check(err) {
				t.Errorf("pathError() = %v", err)
			}
			var pathErr *PathError
			if !errors.As(err, &pathErr) || pathErr.Op != "identify" {
				t.Errorf("pathError() = %#v, want *PathError with op identify", err)
			}
		})
	}
}
