package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Analysis is a saved visualization choice tied to a History record.
type Analysis struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"userId"`
	HistoryID HistoryRef `json:"historyId"`
	Name      string     `json:"name"`
	XAxis     string     `json:"xAxis"`
	YAxis     string     `json:"yAxis"`
	ChartType ChartType  `json:"chartType"`
	CreatedAt time.Time  `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Analysis model.
func (a Analysis) TableName() string {
	return "analyses"
}

// HistoryRef is a reference from an Analysis to a History record.
//
// A bare reference serializes as the numeric id. Once populated with the
// History projection it serializes as {"id", "fileName", "uploadDate"}, which
// is the shape list responses expose.
type HistoryRef struct {
	ID         int64
	FileName   string
	UploadDate *time.Time
}

// Populated reports whether the History projection is filled in.
func (r HistoryRef) Populated() bool {
	return r.UploadDate != nil
}

type historyRefObject struct {
	ID         int64      `json:"id"`
	FileName   string     `json:"fileName"`
	UploadDate *time.Time `json:"uploadDate,omitempty"`
}

// MarshalJSON implements [json.Marshaler].
func (r HistoryRef) MarshalJSON() ([]byte, error) {
	if !r.Populated() {
		return json.Marshal(r.ID)
	}

	return json.Marshal(historyRefObject{ID: r.ID, FileName: r.FileName, UploadDate: r.UploadDate})
}

// UnmarshalJSON implements [json.Unmarshaler]. It accepts a number, a numeric
// string or the populated object form. null leaves the reference empty.
func (r *HistoryRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*r = HistoryRef{}
		return nil
	}

	switch b[0] {
	case '{':
		var obj historyRefObject
		if err := json.Unmarshal(b, &obj); err != nil {
			return err
		}
		*r = HistoryRef{ID: obj.ID, FileName: obj.FileName, UploadDate: obj.UploadDate}
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*r = HistoryRef{}
			return nil
		}
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid history reference %q: %w", s, err)
		}
		*r = HistoryRef{ID: id}
		return nil
	default:
		var id int64
		if err := json.Unmarshal(b, &id); err != nil {
			return fmt.Errorf("invalid history reference: %w", err)
		}
		*r = HistoryRef{ID: id}
		return nil
	}
}
