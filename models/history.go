package models

import "time"

// History is one uploaded spreadsheet event. StoredName is the generated
// on-disk file name; it is empty for records created through the
// metadata-only save endpoint.
type History struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	FileName   string    `json:"fileName"`
	StoredName string    `json:"-"`
	UploadDate time.Time `json:"uploadDate"`
	Rows       int       `json:"rows"`
	FileSize   int64     `json:"fileSize"`
	XAxis      string    `json:"xAxis"`
	YAxis      string    `json:"yAxis"`
	ChartType  ChartType `json:"chartType"`
}

// HasStoredFile reports whether an uploaded binary backs the record.
func (h History) HasStoredFile() bool {
	return h.StoredName != ""
}

// TableName returns the name of the database table
// associated with the History model.
func (h History) TableName() string {
	return "histories"
}
