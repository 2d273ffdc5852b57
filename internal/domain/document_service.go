package domain

type ElementType string

const (
	ElementText   ElementType = "text"
	ElementTables ElementType = "tables"
)

const MimeTypePDF = "application/pdf"

type AssetRef struct {
	ID string
}

type JobHandle struct {
	PollingURL string
}

type ResultRef struct {
	AssetID     string
	DownloadURI string
}
