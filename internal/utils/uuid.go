package utils

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UUIDGenerator produces time-ordered identifiers.
type UUIDGenerator struct {
	now func() time.Time
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{now: time.Now}
}

// Generate returns a UUIDv7, falling back to a random UUIDv4.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// StoredName returns a collision-free on-disk name for an uploaded file:
// "<unix-millis>-<uuid><ext>", keeping the lower-cased extension of
// originalName.
func (g *UUIDGenerator) StoredName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return strconv.FormatInt(g.now().UnixMilli(), 10) + "-" + g.Generate() + ext
}
