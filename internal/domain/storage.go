package domain

// UploadResponse is the content-addressing result of a storage upload. URL is what
// gets submitted to the protocol; CID is only set by backends that expose one.
type UploadResponse struct {
	URL string
	CID string
}

const (
	StorageLens   = "lens-storage"
	StoragePinata = "pinata"
	StorageStorj  = "storj"
	StorageLocal  = "local"
)
