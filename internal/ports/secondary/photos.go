package secondary

// PhotoStore defines the secondary port for photo file ingestion. The rest
// of the application treats the returned path as an opaque string.
type PhotoStore interface {
	// Import durably copies the image at src into managed storage and
	// returns its stable local path.
	Import(src string) (string, error)

	// Remove deletes a previously imported photo. Removing a path that no
	// longer exists is not an error.
	Remove(path string) error
}
