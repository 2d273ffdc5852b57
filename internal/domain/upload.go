package domain

// UploadedFile is a file received over HTTP and stored on local disk
// until its extraction finishes.
type UploadedFile struct {
	Path string // location on disk
	Name string // client-supplied file name
}
