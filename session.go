package filesense

import (
	"errors"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
)

// Session classifies files and buffers. A Session is not safe for
// concurrent use; callers must serialize calls on one Session.
type Session struct {
	cfg        Config
	thresholds thresholds
	model      Model
	logger     zerolog.Logger
	closed     bool
}

// NewSession creates a classification session
func NewSession(options ...Option) (*Session, error) {
	opts := processOptions(options...)

	th, err := opts.Config.validate()
	if err != nil {
		return nil, err
	}

	return &Session{
		cfg:        opts.Config,
		thresholds: th,
		model:      opts.Model,
		logger:     opts.Logger,
	}, nil
}

// Config returns the session configuration
func (s *Session) Config() Config {
	return s.cfg
}

// Close releases the session. Further calls return ErrClosed.
func (s *Session) Close() error {
	if s.closed {
		return ErrClosed
	}
	s.closed = true
	s.model = nil
	return nil
}

// IdentifyFile classifies the file system entry at path. Directories and
// symlinks are reported without reading content.
func (s *Session) IdentifyFile(path string) (FileType, error) {
	if s.closed {
		return nil, ErrClosed
	}

	info, err := os.Lstat(path)
	if err != nil {
		return nil, s.pathError(path, err)
	}

	if info.Mode()&fs.ModeSymlink != 0 {
		if !s.cfg.FollowSymlinks {
			s.logger.Debug().Str("path", path).Msg("symlink")
			return Symlink{}, nil
		}
		if info, err = os.Stat(path); err != nil {
			return nil, s.pathError(path, err)
		}
	}

	if info.IsDir() {
		s.logger.Debug().Str("path", path).Msg("directory")
		return Directory{}, nil
	}
	if !info.Mode().IsRegular() {
		return nil, &PathError{Op: "identify", Path: path, Err: ErrNotRegular}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, s.pathError(path, err)
	}
	defer f.Close()

	size := info.Size()
	if size == 0 {
		return s.report(path, Fingerprint(nil), Ruled{ContentType: LabelEmpty}), nil
	}

	beg, end, err := readWindows(f, size, s.cfg.BlockSize)
	if err != nil {
		return nil, &PathError{Op: "identify", Path: path, Err: err}
	}
	features := newFeatures(beg, end, size, size <= int64(s.cfg.BlockSize))

	return s.report(path, windowFingerprint(beg, end, size), s.classify(beg, features)), nil
}

// IdentifyContent classifies an in-memory buffer. The buffer is not
// retained after the call returns.
func (s *Session) IdentifyContent(data []byte) (FileType, error) {
	if s.closed {
		return nil, ErrClosed
	}

	ft := s.classifyBytes(data)
	s.logger.Debug().
		Int("size", len(data)).
		Str("fingerprint", Fingerprint(data)).
		Str("label", ft.Info().Label).
		Float32("score", ft.Score()).
		Str("overwrite_reason", reasonOf(ft).String()).
		Msg("content classified")
	return ft, nil
}

func (s *Session) classifyBytes(data []byte) FileType {
	if len(data) == 0 {
		return Ruled{ContentType: LabelEmpty}
	}
	head := data
	if len(head) > s.cfg.BlockSize {
		head = head[:s.cfg.BlockSize]
	}
	return s.classify(head, ExtractFeatures(data, s.cfg.BlockSize))
}

// classify runs the small-content rule, the magic rules and then the model.
// Content that is mostly whitespace is judged on what remains after
// stripping.
func (s *Session) classify(head []byte, features Features) FileType {
	if features.Size < int64(s.cfg.MinFileSize) {
		return Ruled{ContentType: detectSmall(head)}
	}
	if label, ok := DetectRule(head); ok {
		return Ruled{ContentType: label}
	}
	if rest := features.stripped(); len(rest) < s.cfg.MinFileSize {
		return Ruled{ContentType: detectSmall(rest)}
	}
	return s.thresholds.resolve(s.model.Predict(features))
}

func (s *Session) report(path, fingerprint string, ft FileType) FileType {
	s.logger.Debug().
		Str("path", path).
		Str("fingerprint", fingerprint).
		Str("label", ft.Info().Label).
		Float32("score", ft.Score()).
		Str("overwrite_reason", reasonOf(ft).String()).
		Msg("file classified")
	return ft
}

func (s *Session) pathError(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		err = ErrNotExist
	case errors.Is(err, fs.ErrPermission):
		err = ErrPermission
	}
	return &PathError{Op: "identify", Path: path, Err: err}
}

func reasonOf(ft FileType) OverwriteReason {
	if inf, ok := ft.(Inferred); ok {
		return inf.Reason()
	}
	return None
}
