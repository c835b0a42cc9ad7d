package models

import "time"

// ClientSession is the CLI's persisted login: which server it talks to, the
// bearer token it obtained and who that token belongs to.
type ClientSession struct {
	ServerURL string
	Token     string
	User      User
	SavedAt   time.Time
}

// StoredFile describes one file in the upload directory.
type StoredFile struct {
	Name    string
	Size    int64
	ModTime time.Time
}
