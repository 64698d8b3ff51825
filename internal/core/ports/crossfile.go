package ports

// CrossFileStore reads cross-file templates and manages generated descriptors.
//
//go:generate go run go.uber.org/mock/mockgen -source=crossfile.go -destination=mocks/mock_crossfile.go -package=mocks
type CrossFileStore interface {
	ReadTemplate(path string) (string, error)
	Write(path, content string) error
	// Remove deletes a generated descriptor; a missing file is not an error.
	Remove(path string) error
}
