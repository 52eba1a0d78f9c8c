package filesense

import (
	"sort"
	"strings"
)

// ContentType is the label of a content type known to the engine
type ContentType string

// Special labels that are not produced from file content
const (
	LabelDirectory   ContentType = "directory"
	LabelSymlink     ContentType = "symlink"
	LabelEmpty       ContentType = "empty"
	LabelUnknown     ContentType = "unknown"
	LabelTxt         ContentType = "txt"
	LabelRandomBytes ContentType = "randombytes"
	LabelRandomTxt   ContentType = "randomtxt"
	LabelUndefined   ContentType = "undefined"
)

// TypeInfo describes a content type
type TypeInfo struct {
	Label       string
	MIME        string
	Group       string
	Description string
	Extensions  []string
	IsText      bool
}

// Info returns the catalogue entry for the content type. Labels missing from
// the catalogue resolve to the entry for "unknown" with the label preserved.
func (c ContentType) Info() TypeInfo {
	if info, ok := catalogue[c]; ok {
		return info
	}
	info := catalogue[LabelUnknown]
	info.Label = string(c)
	return info
}

// IsText reports whether the content type is textual
func (c ContentType) IsText() bool {
	return c.Info().IsText
}

// String returns the label
func (c ContentType) String() string {
	return string(c)
}

func typeInfo(label, mime, group, description string, isText bool, exts ...string) TypeInfo {
	return TypeInfo{
		Label:       label,
		MIME:        mime,
		Group:       group,
		Description: description,
		Extensions:  exts,
		IsText:      isText,
	}
}

// catalogue maps every label the engine can produce to its description
var catalogue = map[ContentType]TypeInfo{
	// Special
	LabelDirectory:   typeInfo("directory", "inode/directory", "inode", "A directory", false),
	LabelSymlink:     typeInfo("symlink", "inode/symlink", "inode", "Symbolic link", false),
	LabelEmpty:       typeInfo("empty", "inode/x-empty", "inode", "Empty file", false),
	LabelUnknown:     typeInfo("unknown", "application/octet-stream", "unknown", "Unknown binary data", false),
	LabelUndefined:   typeInfo("undefined", "application/undefined", "undefined", "Undefined", false),
	LabelRandomBytes: typeInfo("randombytes", "application/octet-stream", "unknown", "Random bytes", false),
	LabelRandomTxt:   typeInfo("randomtxt", "text/plain", "text", "Random text", true),

	// Images
	"jpeg": typeInfo("jpeg", "image/jpeg", "image", "JPEG image data", false, "jpg", "jpeg"),
	"png":  typeInfo("png", "image/png", "image", "PNG image data", false, "png"),
	"gif":  typeInfo("gif", "image/gif", "image", "GIF image data", false, "gif"),
	"webp": typeInfo("webp", "image/webp", "image", "WebP media file", false, "webp"),
	"bmp":  typeInfo("bmp", "image/bmp", "image", "BMP image data", false, "bmp"),
	"tiff": typeInfo("tiff", "image/tiff", "image", "TIFF image data", false, "tiff", "tif"),
	"ico":  typeInfo("ico", "image/vnd.microsoft.icon", "image", "MS Windows icon resource", false, "ico"),
	"heic": typeInfo("heic", "image/heic", "image", "HEIF image data", false, "heic", "heif"),
	"avif": typeInfo("avif", "image/avif", "image", "AVIF image data", false, "avif"),

	// Documents
	"pdf":  typeInfo("pdf", "application/pdf", "document", "PDF document", false, "pdf"),
	"docx": typeInfo("docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", "document", "Microsoft Word 2007+ document", false, "docx", "docm"),
	"xlsx": typeInfo("xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "document", "Microsoft Excel 2007+ document", false, "xlsx", "xlsm"),
	"pptx": typeInfo("pptx", "application/vnd.openxmlformats-officedocument.presentationml.presentation", "document", "Microsoft PowerPoint 2007+ document", false, "pptx", "pptm"),

	// Archives
	"zip":      typeInfo("zip", "application/zip", "archive", "Zip archive data", false, "zip"),
	"gzip":     typeInfo("gzip", "application/gzip", "archive", "gzip compressed data", false, "gz", "gzip"),
	"tar":      typeInfo("tar", "application/x-tar", "archive", "POSIX tar archive", false, "tar"),
	"rar":      typeInfo("rar", "application/x-rar", "archive", "RAR archive data", false, "rar"),
	"sevenzip": typeInfo("sevenzip", "application/x-7z-compressed", "archive", "7-zip archive data", false, "7z"),
	"bzip":     typeInfo("bzip", "application/x-bzip2", "archive", "bzip2 compressed data", false, "bz2", "tbz2"),
	"xz":       typeInfo("xz", "application/x-xz", "archive", "XZ compressed data", false, "xz"),

	// Audio
	"mp3":  typeInfo("mp3", "audio/mpeg", "audio", "MP3 media file", false, "mp3"),
	"flac": typeInfo("flac", "audio/flac", "audio", "FLAC audio bitstream data", false, "flac"),
	"ogg":  typeInfo("ogg", "audio/ogg", "audio", "Ogg data", false, "ogg"),
	"wav":  typeInfo("wav", "audio/x-wav", "audio", "Waveform Audio file (WAV)", false, "wav"),
	"aac":  typeInfo("aac", "audio/aac", "audio", "AAC audio", false, "aac"),
	"midi": typeInfo("midi", "audio/midi", "audio", "Midi", false, "mid", "midi"),
	"m4a":  typeInfo("m4a", "audio/mp4", "audio", "MPEG-4 audio", false, "m4a"),

	// Video
	"webm": typeInfo("webm", "video/webm", "video", "WebM media file", false, "webm"),
	"mp4":  typeInfo("mp4", "video/mp4", "video", "MP4 media file", false, "mp4", "m4v"),
	"mov":  typeInfo("mov", "video/quicktime", "video", "QuickTime video", false, "mov"),
	"avi":  typeInfo("avi", "video/x-msvideo", "video", "Audio Video Interleave", false, "avi"),
	"flv":  typeInfo("flv", "video/x-flv", "video", "Flash Video", false, "flv"),
	"3gp":  typeInfo("3gp", "video/3gpp", "video", "3GPP multimedia file", false, "3gp"),

	// Executables
	"pebin":  typeInfo("pebin", "application/x-dosexec", "executable", "PE Windows executable", false, "exe", "dll", "sys"),
	"macho":  typeInfo("macho", "application/x-mach-o", "executable", "Mach-O executable", false),
	"elf":    typeInfo("elf", "application/x-executable-elf", "executable", "ELF executable", false, "elf", "so"),
	"woff":   typeInfo("woff", "font/woff", "font", "Web Open Font Format", false, "woff"),
	"woff2":  typeInfo("woff2", "font/woff2", "font", "Web Open Font Format 2", false, "woff2"),
	"otf":    typeInfo("otf", "font/otf", "font", "OpenType font", false, "otf"),
	"ttf":    typeInfo("ttf", "font/sfnt", "font", "TrueType Font data", false, "ttf", "ttc"),
	"sqlite": typeInfo("sqlite", "application/x-sqlite3", "application", "SQLite", false, "sqlite", "db"),

	// Text
	"txt":        typeInfo("txt", "text/plain", "text", "Generic text document", true, "txt"),
	"markdown":   typeInfo("markdown", "text/markdown", "text", "Markdown document", true, "md", "markdown"),
	"json":       typeInfo("json", "application/json", "code", "JSON document", true, "json"),
	"xml":        typeInfo("xml", "text/xml", "code", "XML document", true, "xml"),
	"html":       typeInfo("html", "text/html", "code", "HTML document", true, "html", "htm"),
	"csv":        typeInfo("csv", "text/csv", "code", "CSV document", true, "csv"),
	"yaml":       typeInfo("yaml", "application/x-yaml", "code", "YAML source", true, "yml", "yaml"),
	"toml":       typeInfo("toml", "application/toml", "text", "Tom's obvious, minimal language", true, "toml"),
	"ini":        typeInfo("ini", "text/plain", "text", "INI configuration file", true, "ini"),
	"shell":      typeInfo("shell", "text/x-shellscript", "code", "Shell script", true, "sh"),
	"python":     typeInfo("python", "text/x-python", "code", "Python source", true, "py", "pyi"),
	"go":         typeInfo("go", "text/x-golang", "code", "Golang source", true, "go"),
	"javascript": typeInfo("javascript", "application/javascript", "code", "JavaScript source", true, "js", "mjs", "cjs"),
	"c":          typeInfo("c", "text/x-c", "code", "C source", true, "c", "h"),
	"rust":       typeInfo("rust", "application/x-rust", "code", "Rust source", true, "rs"),
	"java":       typeInfo("java", "text/x-java", "code", "Java source", true, "java"),
	"sql":        typeInfo("sql", "application/x-sql", "code", "SQL source", true, "sql"),
	"css":        typeInfo("css", "text/css", "code", "CSS source", true, "css"),
}

// Lookup returns the content type for a label, and whether it is known
func Lookup(label string) (ContentType, bool) {
	ct := ContentType(strings.ToLower(strings.TrimSpace(label)))
	_, ok := catalogue[ct]
	return ct, ok
}

// Labels returns all known labels in lexical order
func Labels() []string {
	labels := make([]string, 0, len(catalogue))
	for ct := range catalogue {
		labels = append(labels, string(ct))
	}
	sort.Strings(labels)
	return labels
}

// ContentTypeForExtension returns the first content type declaring the given
// extension. The extension may be given with or without a leading dot.
func ContentTypeForExtension(ext string) (ContentType, bool) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "" {
		return "", false
	}
	for _, label := range Labels() {
		ct := ContentType(label)
		for _, e := range catalogue[ct].Extensions {
			if e == ext {
				return ct, true
			}
		}
	}
	return "", false
}
