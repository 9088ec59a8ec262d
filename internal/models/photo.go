package models

// Photo is the metadata record for an uploaded image. The hash is the SHA-1
// of the file content, so byte-identical uploads map to the same record.
type Photo struct {
	Hash              string `json:"hash"`
	OriginalExtension string `json:"original_extension"`
	Width             int    `json:"width"`
	Height            int    `json:"height"`
}
