package query

// mimeByExt maps lowercased file extensions (no dot) to MIME types. Only
// extensions in this table produce extension tags; anything else that merely
// looks like an extension stays free text, so short ordinary words are never
// swallowed by the recognizer.
var mimeByExt = map[string]string{
	// images
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
	"bmp":  "image/bmp",
	"svg":  "image/svg+xml",
	"heic": "image/heic",
	"tiff": "image/tiff",

	// video
	"mp4":  "video/mp4",
	"mov":  "video/quicktime",
	"avi":  "video/x-msvideo",
	"mkv":  "video/x-matroska",
	"webm": "video/webm",
	"m4v":  "video/x-m4v",

	// audio
	"mp3":  "audio/mpeg",
	"wav":  "audio/wav",
	"ogg":  "audio/ogg",
	"flac": "audio/flac",
	"m4a":  "audio/mp4",
	"opus": "audio/opus",

	// documents
	"pdf":  "application/pdf",
	"doc":  "application/msword",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"xls":  "application/vnd.ms-excel",
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"ppt":  "application/vnd.ms-powerpoint",
	"pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"txt":  "text/plain",
	"md":   "text/markdown",
	"rtf":  "application/rtf",
	"csv":  "text/csv",
	"epub": "application/epub+zip",

	// archives
	"zip": "application/zip",
	"rar": "application/vnd.rar",
	"7z":  "application/x-7z-compressed",
	"tar": "application/x-tar",
	"gz":  "application/gzip",

	// code and markup
	"go":   "text/x-go",
	"js":   "text/javascript",
	"ts":   "text/typescript",
	"py":   "text/x-python",
	"java": "text/x-java-source",
	"cpp":  "text/x-c++",
	"rs":   "text/x-rust",
	"rb":   "text/x-ruby",
	"php":  "application/x-httpd-php",
	"html": "text/html",
	"css":  "text/css",
	"json": "application/json",
	"xml":  "application/xml",
	"yaml": "application/yaml",
	"yml":  "application/yaml",
	"sql":  "application/sql",
	"sh":   "application/x-sh",
}

// MIMEForExtension resolves a lowercased extension (no dot) to its MIME type.
func MIMEForExtension(ext string) (string, bool) {
	mime, ok := mimeByExt[ext]
	return mime, ok
}
