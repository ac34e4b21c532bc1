package model

// ZipEntry is one file to write into icons.zip
type ZipEntry struct {
	// Path inside the produced zip, e.g. "outlined/settings.svg" or "arrow-down.svg"
	Path    string
	Content []byte
}
