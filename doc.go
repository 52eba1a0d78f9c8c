// Package filesense identifies the content type of files and byte buffers.
//
// A [Session] classifies one input at a time and reports a [FileType], which
// is one of four outcomes:
//
//   - [Directory] and [Symlink] for file system entries whose content is not read
//   - [Ruled] for content recognised by a deterministic rule (magic numbers,
//     empty or very short content)
//   - [Inferred] for content classified by a [Model]
//
// # Basic Usage
//
//	s, err := filesense.NewSession()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Close()
//
//	ft, err := s.IdentifyFile("./report.pdf")
//	if filesense.IsNotExist(err) {
//	    // File does not exist
//	}
//	fmt.Println(ft.Info().Label, ft.Score())
//
//	ft, err = s.IdentifyContent([]byte("#!/bin/sh\necho hello\n"))
//
// # Prediction Modes
//
// Model predictions below the confidence threshold of the session's
// [PredictionMode] are replaced by a generic type ("txt" for text, "unknown"
// otherwise) and marked [LowConfidence]. Some model labels are always
// replaced by a fixed mapping and marked [OverwriteMap]. The original
// prediction stays available in [Inferred.InferredType].
//
//	s, err := filesense.NewSession(
//	    filesense.WithPredictionMode(filesense.MediumConfidence),
//	    filesense.WithFollowSymlinks(true),
//	)
//
// # Configuration
//
// [GetConfig] loads a [Config] from environment variables with the
// BEAVER_FILESENSE_ prefix; pass it with [WithConfig]:
//
//	cfg, err := filesense.GetConfig()
//	s, err := filesense.NewSession(filesense.WithConfig(*cfg))
//
// # C Library
//
// The cmd/libfilesense command builds a C shared library exposing sessions
// and JSON records (see the record package).
package filesense
