package models

// FileMeta is the derived view of one uploaded file after text extraction.
// Built once per upload batch and replaced wholesale on the next batch.
type FileMeta struct {
	Name      string `json:"name"`
	Kind      string `json:"kind"` // display label, e.g. "PDF"
	Icon      string `json:"icon"`
	WordCount int    `json:"wordCount"`
	Pages     int    `json:"pages,omitempty"` // PDFs only, 0 otherwise
	SizeKB    int64  `json:"sizeKb"`
}
